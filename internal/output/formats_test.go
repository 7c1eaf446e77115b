package output

import "testing"

func TestNewResultWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
	}{
		{name: "Console", format: FormatConsole},
		{name: "JSON", format: FormatJSON},
		{name: "CSV", format: FormatCSV},
		{name: "Markdown", format: FormatMarkdown},
		{name: "Unknown defaults to Console", format: "xml"},
		{name: "Empty defaults to Console", format: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewResultWriter(tt.format, RenderOptions{})
			if writer == nil {
				t.Fatal("NewResultWriter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := writer.(*JSONResultWriter); !ok {
					t.Errorf("Expected *JSONResultWriter for format %q", tt.format)
				}
			case FormatCSV:
				if _, ok := writer.(*CSVResultWriter); !ok {
					t.Errorf("Expected *CSVResultWriter for format %q", tt.format)
				}
			case FormatMarkdown:
				if _, ok := writer.(*MarkdownResultWriter); !ok {
					t.Errorf("Expected *MarkdownResultWriter for format %q", tt.format)
				}
			default:
				if _, ok := writer.(*ConsoleResultWriter); !ok {
					t.Errorf("Expected *ConsoleResultWriter for format %q", tt.format)
				}
			}
		})
	}
}

func TestNewResultWriter_ConsoleCarriesMaxWidth(t *testing.T) {
	writer := NewResultWriter(FormatConsole, RenderOptions{MaxWidth: 120})

	console, ok := writer.(*ConsoleResultWriter)
	if !ok {
		t.Fatalf("expected *ConsoleResultWriter, got %T", writer)
	}
	if console.MaxWidth != 120 {
		t.Errorf("MaxWidth = %d, expected 120", console.MaxWidth)
	}
}

package output

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/MatthewFay/git-query/internal/store"
)

func TestCSVWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	writer := &CSVResultWriter{}

	if err := writer.Write(&buf, sampleResult(), "SELECT * FROM commits"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, expected header plus 2 rows", len(records))
	}
	header := records[0]
	if header[0] != "id" || header[1] != "author" || header[2] != "message" {
		t.Errorf("header = %v", header)
	}
	if records[1][0] != "abc1234" || records[1][1] != "alice" {
		t.Errorf("first row = %v", records[1])
	}
	if records[2][1] != "NULL" {
		t.Errorf("NULL cell = %q, expected the NULL placeholder", records[2][1])
	}
}

func TestCSVWrite_NoColumnsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	writer := &CSVResultWriter{}

	if err := writer.Write(&buf, &store.Result{}, "DROP TABLE scratch"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestCSVWrite_QuotesEmbeddedNewlines(t *testing.T) {
	var buf bytes.Buffer
	writer := &CSVResultWriter{}
	res := &store.Result{
		Columns: []string{"message"},
		Rows:    [][]any{{"subject\r\n\r\nbody, with comma"}},
	}

	if err := writer.Write(&buf, res, "SELECT message FROM commits"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, expected 2", len(records))
	}
	if records[1][0] != "subject\n\nbody, with comma" {
		t.Errorf("cell = %q", records[1][0])
	}
}

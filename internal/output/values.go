package output

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders one driver value as display text. NULLs and blobs
// get placeholders; Windows line endings are normalized so multi-line
// cells keep their box alignment.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return "Blob"
	case string:
		return strings.ReplaceAll(x, "\r\n", "\n")
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

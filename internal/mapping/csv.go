package mapping

import (
	"bytes"
	"strings"
)

const delimiter = ';'

// EncodeCSV writes rows as a semicolon-delimited document with a header row.
// Non-empty fields are always quoted and empty fields are left bare, which
// encoding/csv cannot express.
func EncodeCSV(rows []Row) []byte {
	var buf bytes.Buffer
	writeRecord(&buf, Columns)
	for _, r := range rows {
		writeRecord(&buf, r.Record())
	}
	return buf.Bytes()
}

func writeRecord(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(delimiter)
		}
		if f == "" {
			continue
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

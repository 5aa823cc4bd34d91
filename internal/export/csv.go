// Package export encodes selection rows as a spreadsheet-safe CSV
// download. The encoding is hand-rolled rather than encoding/csv because
// the contract requires the title and alternative columns to be quoted
// unconditionally, while encoding/csv only quotes when forced to.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/tally"
)

// utf8BOM keeps accented titles intact when the file is opened in common
// spreadsheet tools.
const utf8BOM = "\xEF\xBB\xBF"

const header = "timestamp,ip_address,category_title,selected_alternative"

// Encode renders the already-filtered, already-ordered selection list. The
// output is deterministic: the same input sequence yields identical bytes.
// An empty input yields the BOM plus the header line only.
func Encode(selections []ballot.Selection) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	buf.WriteString(header)
	buf.WriteByte('\n')

	for _, sel := range selections {
		buf.WriteString(sel.CreatedAt.Format(time.RFC3339))
		buf.WriteByte(',')
		buf.WriteString(sel.IPAddress)
		buf.WriteByte(',')
		writeQuoted(&buf, sel.CategoryTitle)
		buf.WriteByte(',')
		writeQuoted(&buf, sel.SelectedAlternative)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Filename follows the download naming pattern
// votos_<event>_<filterLabel>_<ISO date>.csv.
func Filename(event string, w tally.Window, date time.Time) string {
	return fmt.Sprintf("votos_%s_%s_%s.csv", event, w.Label(), date.Format("2006-01-02"))
}

func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	buf.WriteString(strings.ReplaceAll(s, `"`, `""`))
	buf.WriteByte('"')
}

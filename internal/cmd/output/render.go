package output

import (
	"io"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
)

// Render writes records to w in format. Tabular formats print tbl, built
// lazily so JSON and YAML output skip the row conversion.
func Render(w io.Writer, format Format, records any, tbl func(wide bool) table.Data) error {
	formatter := NewFormatter(format)
	if format.IsTabular() && tbl != nil {
		return formatter.Format(w, tbl(format == FormatWide))
	}
	return formatter.Format(w, records)
}

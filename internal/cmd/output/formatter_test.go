package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

var comics = []records.Comic{
	{ID: 1, Title: "Watchmen", Creator: "Moore", Price: decimal.RequireFromString("19.99")},
	{ID: 2, Title: "Saga", Creator: "Vaughan", Price: decimal.NewFromInt(12)},
}

func comicsTable(wide bool) table.Data {
	return table.ComicsToTableData(comics, wide)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"markdown", FormatMarkdown, false},
		{"", "", false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, comics, comicsTable))

	out := strings.ToUpper(buf.String())
	assert.Contains(t, out, "WATCHMEN")
	assert.Contains(t, out, "19.99")
	assert.NotContains(t, out, "ON HAND")
}

func TestRenderWide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatWide, comics, comicsTable))
	assert.Contains(t, strings.ToUpper(buf.String()), "ON HAND")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, comics, comicsTable))

	out := buf.String()
	assert.Contains(t, out, `"title": "Watchmen"`)
	assert.Contains(t, out, `"price": "19.99"`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, comics, comicsTable))

	out := buf.String()
	assert.Contains(t, out, "title: Watchmen")
	assert.Contains(t, out, "creator: Vaughan")
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, comics, comicsTable))

	out := buf.String()
	assert.Contains(t, out, "Watchmen")
	assert.Contains(t, out, "|")
	assert.Contains(t, out, "---")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"count": 2}))
	assert.Contains(t, buf.String(), `"count": 2`)
}

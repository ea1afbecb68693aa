package cmdutil

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("title", "", "")
	cmd.Flags().Int("year", 0, "")
	return cmd
}

func TestChangedFlags(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--year", "0"}))

	title, err := StringFlag(cmd, "title")
	require.NoError(t, err)
	assert.Nil(t, title)

	year, err := IntFlag(cmd, "year")
	require.NoError(t, err)
	require.NotNil(t, year)
	assert.Equal(t, 0, *year)
}

func TestNotifySkipsStructuredFormats(t *testing.T) {
	tests := []struct {
		format output.Format
		want   string
	}{
		{output.FormatTable, "Saved"},
		{output.FormatJSON, ""},
		{output.FormatYAML, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			cmd := newCmd()
			var buf bytes.Buffer
			cmd.SetOut(&buf)

			require.NoError(t, Notify(cmd, &appcontext.Mock{Format: tt.format}, alerts.NewSuccess("Saved")))
			if tt.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.want)
			}
		})
	}
}

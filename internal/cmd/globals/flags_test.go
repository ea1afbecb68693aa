package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
	AddListFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--search", "saga", "--match", "S*", "-l", "2"}))

	flags := ParseList(cmd)
	assert.Equal(t, "saga", flags.Search)
	assert.Equal(t, "S*", flags.Match)
	assert.Equal(t, 2, flags.Limit)
}

func TestParseListPanicsWithoutFlags(t *testing.T) {
	assert.Panics(t, func() { ParseList(&cobra.Command{Use: "bare"}) })
}

func TestLimit(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, Limit(items, 2))
	assert.Equal(t, items, Limit(items, 0))
	assert.Equal(t, items, Limit(items, 10))
}

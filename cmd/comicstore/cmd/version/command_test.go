package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
)

func TestVersion(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "comicstore version dev")
	assert.Contains(t, out, "commit: unknown")
	assert.Contains(t, out, "built by: test")
	assert.Contains(t, out, "platform: ")
}

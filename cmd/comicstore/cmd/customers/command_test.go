package customers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

func execute(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCustomerLifecycle(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatTable)

	out, err := execute(t, app, "add", "--name", "Ann", "--contact", "ann@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer 1 added")

	_, err = execute(t, app, "add", "--name", "Bob")
	require.NoError(t, err)

	out, err = execute(t, app, "list", "--search", "ANN")
	require.NoError(t, err)
	assert.Contains(t, out, "ann@example.com")
	assert.NotContains(t, out, "Bob")

	out, err = execute(t, app, "update", "bob", "--contact", "555-0100")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer 2 updated")

	bob, err := s.Directory().FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", bob.Contact)

	out, err = execute(t, app, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer 1 deleted")
	assert.Equal(t, 1, s.Directory().Len())
}

func TestCustomerErrors(t *testing.T) {
	app, _ := appcontext.NewTestMock(t, output.FormatTable)

	_, err := execute(t, app, "add", "--name", "  ")
	assert.True(t, errors.IsValidationError(err))

	_, err = execute(t, app, "show", "nobody")
	assert.True(t, errors.IsNotFound(err))

	_, err = execute(t, app, "update", "nobody", "--name", "x")
	assert.True(t, errors.IsNotFound(err))
}

func TestShowYAML(t *testing.T) {
	app, s := appcontext.NewTestMock(t, output.FormatYAML)
	_, err := s.Directory().Add("Ann", "ann@example.com")
	require.NoError(t, err)

	out, err := execute(t, app, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Ann")
	assert.Contains(t, out, "contact: ann@example.com")
}

package directory

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/flatfile"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/ptr"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

const customersPath = "data/customers.txt"

func newTestDirectory(t *testing.T, content string) (*Directory, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, customersPath, []byte(content), 0o644))
	}
	d, err := New(flatfile.New(fs), customersPath, repository.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return d, fs
}

func TestAdd(t *testing.T) {
	d, fs := newTestDirectory(t, "1,Ann Nocenti,ann@example.com\n")

	c, err := d.Add(" Gail Simone ", "gail@example.com")
	require.NoError(t, err)
	assert.Equal(t, records.Customer{ID: 2, Name: "Gail Simone", Contact: "gail@example.com"}, c)

	raw, err := afero.ReadFile(fs, customersPath)
	require.NoError(t, err)
	assert.Equal(t, "1,Ann Nocenti,ann@example.com\n2,Gail Simone,gail@example.com\n", string(raw))

	for _, name := range []string{"", "   ", "Smith, John"} {
		_, err := d.Add(name, "x")
		assert.True(t, errors.IsValidationError(err), name)
	}
	assert.Equal(t, 2, d.Len())
}

func TestUpdate(t *testing.T) {
	d, _ := newTestDirectory(t, "1,Ann,ann@example.com\n")

	c, err := d.Update(1, CustomerPatch{Contact: ptr.To("555-0100")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", c.Name)
	assert.Equal(t, "555-0100", c.Contact)

	_, err = d.Update(1, CustomerPatch{Name: ptr.To("")})
	assert.True(t, errors.IsValidationError(err))

	_, err = d.Update(1, CustomerPatch{})
	assert.True(t, errors.IsValidationError(err))

	_, err = d.Update(5, CustomerPatch{Name: ptr.To("Bo")})
	assert.True(t, errors.IsNotFound(err))
}

func TestFindAndDelete(t *testing.T) {
	d, _ := newTestDirectory(t, "1,Ann,a@x\n2,Bo,b@x\n")

	c, err := d.FindByName("ANN")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)

	_, err = d.FindByName("Cy")
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, d.Delete(1))
	_, err = d.FindByID(1)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 3, d.NextID())
	assert.Len(t, d.List(), 1)
}

//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"venuebook/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("valid package starts active", func(t *testing.T) {
		p, err := catalog.NewPackage("  Standard Course  ", " three courses ", 5500, true)

		require.NoError(t, err)
		assert.Equal(t, "Standard Course", p.Name())
		assert.Equal(t, "three courses", p.Description())
		assert.True(t, p.PerPerson())
		assert.True(t, p.IsActive())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := catalog.NewPackage("  ", "", 100, false)
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := catalog.NewPackage(strings.Repeat("x", catalog.MaxNameLength+1), "", 100, false)
		assert.ErrorIs(t, err, catalog.ErrNameTooLong)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := catalog.NewPackage("Course", "", -1, false)
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})
}

func TestPackageTotalCents(t *testing.T) {
	perPerson, err := catalog.NewPackage("Per head", "", 5000, true)
	require.NoError(t, err)
	flat, err := catalog.NewPackage("Flat fee", "", 5000, false)
	require.NoError(t, err)

	assert.Equal(t, int64(20000), perPerson.TotalCents(4))
	assert.Equal(t, int64(5000), flat.TotalCents(4))
}

func TestPackageLifecycle(t *testing.T) {
	p, err := catalog.NewPackage("Course", "", 100, false)
	require.NoError(t, err)

	p.Deactivate()
	assert.False(t, p.IsActive())
	p.Activate()
	assert.True(t, p.IsActive())

	assert.ErrorIs(t, p.Reprice(-5), catalog.ErrNegativePrice)
	require.NoError(t, p.Reprice(250))
	assert.Equal(t, int64(250), p.PriceCents())
}

func TestNewMenuItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		m, err := catalog.NewMenuItem(" Oysters ", 1200, false)

		require.NoError(t, err)
		assert.Equal(t, "Oysters", m.Name())
		assert.Equal(t, int64(1200), m.PriceCents())
		assert.True(t, m.IsActive())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := catalog.NewMenuItem("", 100, false)
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := catalog.NewMenuItem("Oysters", -100, false)
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})
}

func TestMenuItemMutations(t *testing.T) {
	m, err := catalog.NewMenuItem("Oysters", 1200, false)
	require.NoError(t, err)

	require.NoError(t, m.Rename("Grilled Oysters"))
	assert.Equal(t, "Grilled Oysters", m.Name())

	m.Deactivate()
	assert.False(t, m.IsActive())
	m.Activate()
	assert.True(t, m.IsActive())
}

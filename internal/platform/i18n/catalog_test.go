package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalogLanguages(t *testing.T) {
	catalog := NewStaticCatalog()
	langs := catalog.Languages()
	require.NotEmpty(t, langs)

	seen := make(map[string]bool)
	for _, l := range langs {
		assert.NotEmpty(t, l.Code)
		assert.NotEmpty(t, l.Name, "display name for %s", l.Code)
		assert.NotEmpty(t, l.NativeName, "native name for %s", l.Code)
		assert.False(t, seen[l.Code], "duplicate code %s", l.Code)
		seen[l.Code] = true
	}

	assert.Equal(t, "en", langs[0].Code)
	assert.Equal(t, "English", langs[0].Name)
	assert.True(t, seen["tr"])
}

func TestLanguagesReturnsCopy(t *testing.T) {
	catalog := NewStaticCatalog()
	first := catalog.Languages()
	first[0].Name = "mutated"
	assert.Equal(t, "English", catalog.Languages()[0].Name)
}

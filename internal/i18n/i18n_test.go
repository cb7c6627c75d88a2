package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "Analysis Summary", catalog.Lookup("summary"))
	assert.Equal(t, "Files", catalog.Lookup("files"))
}

func TestLoadSpanish(t *testing.T) {
	catalog, err := Load("es")
	require.NoError(t, err)

	assert.Equal(t, "Resumen del análisis", catalog.Lookup("summary"))
	assert.Equal(t, "Archivos", catalog.Lookup("files"))
}

func TestLoadArabic(t *testing.T) {
	catalog, err := Load("ar")
	require.NoError(t, err)

	assert.Equal(t, "الملفات", catalog.Lookup("files"))
}

func TestLoadUnknownFallsBack(t *testing.T) {
	catalog, err := Load("xx")
	require.NoError(t, err)

	assert.Equal(t, "Analysis Summary", catalog.Lookup("summary"))
}

func TestLookupMissingKeyReturnsKey(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", catalog.Lookup("no_such_key"))
}

func TestAllLocalesShareKeys(t *testing.T) {
	base, err := loadTable(DefaultLanguage)
	require.NoError(t, err)

	for _, lang := range SupportedLanguages {
		table, err := loadTable(lang)
		require.NoError(t, err, lang)
		for key := range base {
			_, ok := table.Get(key)
			assert.True(t, ok, "locale %s missing key %s", lang, key)
		}
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("es"))
	assert.True(t, Supported("ar"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported(""))
}

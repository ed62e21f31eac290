package i18n

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLang(t *testing.T, l string) {
	t.Helper()
	prev := GetLang()
	SetLang(l)
	t.Cleanup(func() { SetLang(prev) })
}

func TestDetectLang(t *testing.T) {
	noEnv := func(string) string { return "" }
	locales := func(l ...string) func() ([]string, error) {
		return func() ([]string, error) { return l, nil }
	}

	assert.Equal(t, "es", detectLang(func(string) string { return " es " }, locales("pt-BR")))
	assert.Equal(t, "pt", detectLang(noEnv, locales("pt-BR", "en-US")))
	assert.Equal(t, "ru", detectLang(noEnv, locales("ru-RU")))
	assert.Equal(t, "en", detectLang(noEnv, locales("de-DE")))
	assert.Equal(t, "en", detectLang(noEnv, locales()))
	assert.Equal(t, "en", detectLang(noEnv, func() ([]string, error) { return nil, errors.New("no locale") }))
}

func TestT(t *testing.T) {
	withLang(t, "pt")
	assert.Equal(t, "Volta", T("Lap"))
	assert.Equal(t, "untranslated", T("untranslated"))

	withLang(t, "en")
	assert.Equal(t, "Lap", T("Lap"))
}

func TestHelp(t *testing.T) {
	fsys := fstest.MapFS{
		HelpPath: {Data: []byte("en: |\n  Space starts.\nes: |\n  Espacio inicia.\n")},
	}

	withLang(t, "es")
	text, err := Help(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Espacio inicia.\n", text)

	withLang(t, "ru")
	text, err = Help(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Space starts.\n", text)
}

func TestHelpErrors(t *testing.T) {
	_, err := Help(fstest.MapFS{})
	assert.ErrorContains(t, err, "read help")

	_, err = Help(fstest.MapFS{HelpPath: {Data: []byte("- not a map")}})
	assert.ErrorContains(t, err, "unmarshal help")

	withLang(t, "pt")
	_, err = Help(fstest.MapFS{HelpPath: {Data: []byte("ru: text")}})
	assert.Error(t, err)
}

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestPlainText_ReadsUTF8AndStripsCarriageReturns(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte("Article 1\r\nbody\r\n"))

	text, err := PlainText{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Article 1\nbody\n", text)
}

func TestPlainText_RejectsInvalidUTF8(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte{0x41, 0xE9, 0x42}) // "AéB" in latin-1

	_, err := PlainText{}.Extract(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestLatin1Text_DecodesLegacyEncoding(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte{0x41, 0xE9, 0x42})

	text, err := Latin1Text{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "AéB", text)
}

func TestFallback_KeepsLongPrimaryResult(t *testing.T) {
	long := strings.Repeat("Article 1\nprovision text here\n", 30)
	require.GreaterOrEqual(t, len(long), minPrimaryLength)
	path := writeFile(t, "doc.txt", []byte(long))

	text, err := NewDefault().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, long, text)
}

func TestFallback_UsesSecondaryWhenPrimaryFails(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte{0x41, 0xE9, 0x42})

	text, err := NewDefault().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "AéB", text)
}

func TestFallback_ShortPrimaryKeptWhenSecondaryIsNoLonger(t *testing.T) {
	// Valid UTF-8 below the quality threshold: the latin-1 reading has
	// the same length, so the primary result stands.
	path := writeFile(t, "doc.txt", []byte("short text"))

	text, err := NewDefault().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "short text", text)
}

func TestFallback_ErrorsWhenBothExtractorsFail(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")

	_, err := NewDefault().Extract(missing)
	assert.Error(t, err)
}

func TestFallback_Name(t *testing.T) {
	assert.Equal(t, "plaintext+latin1", NewDefault().Name())
}

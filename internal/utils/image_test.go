package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestReadImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blood.dat")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	img, err := ReadImageFile(path)

	require.NoError(t, err)
	assert.Equal(t, "blood.dat", img.Name)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(pngHeader), img.Content)
}

func TestReadImageFile_Errors(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("just text"), 0o600))

	_, err := ReadImageFile(text)
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = ReadImageFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/validators"
)

var (
	ErrNotAnImage    = errors.New("file is not an image")
	ErrImageTooLarge = fmt.Errorf("image is larger than %d MB", validators.MaxImageSize/(1024*1024))
)

// ImageFile is an image prepared for upload: its base name, the sniffed
// MIME type and the base64 body.
type ImageFile struct {
	Name     string
	MIMEType string
	Content  string
}

// ReadImageFile loads the image at path. The MIME type comes from the
// content, not from the extension.
func ReadImageFile(path string) (ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ImageFile{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	if info.Size() > validators.MaxImageSize {
		return ImageFile{}, ErrImageTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImageFile{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return ImageFile{}, fmt.Errorf("%w: %s is %s", ErrNotAnImage, filepath.Base(path), mime)
	}

	return ImageFile{
		Name:     filepath.Base(path),
		MIMEType: mime,
		Content:  base64.StdEncoding.EncodeToString(data),
	}, nil
}

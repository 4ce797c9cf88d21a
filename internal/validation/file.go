package validation

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/tinselworks/noel/internal/apperr"
)

// imageMimeTypes and imageExtensions whitelist what the gallery accepts.
var (
	imageMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	imageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	}
)

// MaxImageSize bounds gallery uploads to 5MB.
const MaxImageSize = 5 << 20

// Image validates a gallery upload by size, detected content type and
// extension. Content type comes from the file's magic numbers, so a forged
// Content-Type header is not enough to pass.
func Image(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return apperr.Validationf("image", "image too large: maximum size is %d MB", MaxImageSize/(1<<20))
	}

	file, err := header.Open()
	if err != nil {
		return apperr.Validation("image", "failed to read uploaded file")
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads at most 512 bytes.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return apperr.Validation("image", "failed to read uploaded file")
	}

	detected := http.DetectContentType(buffer[:n])
	if !imageMimeTypes[detected] {
		return apperr.Validationf("image", "invalid image type (detected: %s)", detected)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return apperr.Validationf("image", "invalid image extension: %s", ext)
	}

	return nil
}

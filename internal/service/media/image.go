// Package media validates image uploads before they reach object storage.
package media

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// Allowed image types and their file extensions.
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Image is a validated upload held in memory.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Reader returns a reader over the image bytes.
func (i Image) Reader() io.Reader {
	return bytes.NewReader(i.Data)
}

// ObjectPath returns a fresh object name under dir.
func (i Image) ObjectPath(dir string) string {
	return fmt.Sprintf("%s/%s.%s", dir, uuid.New(), i.Ext)
}

// ReadImage reads at most maxBytes from r and checks the content type by
// sniffing the data. field names the input in validation errors.
func ReadImage(r io.Reader, maxBytes int64, field string) (Image, error) {
	if r == nil {
		return Image{}, domain.NewValidationError(field, "required")
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("media.ReadImage: %w", err)
	}
	if len(data) == 0 {
		return Image{}, domain.NewValidationError(field, "required")
	}
	if int64(len(data)) > maxBytes {
		return Image{}, domain.NewValidationError(field, fmt.Sprintf("max %d bytes", maxBytes))
	}

	ct := http.DetectContentType(data)
	ext, ok := extensions[ct]
	if !ok {
		return Image{}, domain.NewValidationError(field, "unsupported type "+ct)
	}
	return Image{Data: data, ContentType: ct, Ext: ext}, nil
}

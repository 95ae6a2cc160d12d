package invoice

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
)

// logoPixels is the edge of the square the logo is resampled to before it
// is placed, a little over 4x its printed size.
const logoPixels = 360

// loadLogo reads the brand logo, crops it to a centred square and returns
// it PNG encoded.
func loadLogo(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.NewAssetNotFoundError(path, err)
	}

	img, err := decodeImage(raw, path)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to decode logo", err)
	}

	square := imaging.Fill(img, logoPixels, logoPixels, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, square); err != nil {
		return nil, apperror.NewInternalError("Failed to encode logo", err)
	}
	return buf.Bytes(), nil
}

// decodeImage sniffs the content type and falls back to the file extension
func decodeImage(raw []byte, filename string) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(raw))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(raw))
	case ".png":
		return png.Decode(bytes.NewReader(raw))
	case ".webp":
		return webp.Decode(bytes.NewReader(raw))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

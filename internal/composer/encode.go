package composer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"roomviz/internal/domain"
)

const jpegQuality = 90

// Image is a user-selected image in its original encoding.
type Image struct {
	Name string
	Data []byte
}

// EncodeImage re-encodes img as a JPEG data URL. Bytes the standard decoders
// cannot read are passed through when they still sniff as an image.
func EncodeImage(img Image) (string, error) {
	if len(img.Data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", domain.ErrInvalidImage, img.label())
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		mime := http.DetectContentType(img.Data)
		if !strings.HasPrefix(mime, "image/") {
			return "", fmt.Errorf("%w: %s: %v", domain.ErrInvalidImage, img.label(), err)
		}
		return dataURL(mime, img.Data), nil
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, decoded, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode %s: %w", img.label(), err)
	}
	return dataURL("image/jpeg", buf.Bytes()), nil
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (img Image) label() string {
	if img.Name == "" {
		return "image"
	}
	return img.Name
}

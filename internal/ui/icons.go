package ui

// Item icons arrive as png, jpeg, or webp depending on the CDN, so all
// three decoders are registered.
import (
	"bytes"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// DecodeIcon decodes raw icon bytes and resizes the result to a square of
// the given pixel size. It returns nil when the payload is empty or not a
// decodable image; callers render a fallback glyph instead.
func DecodeIcon(data []byte, size int) image.Image {
	if len(data) == 0 || size <= 0 {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}

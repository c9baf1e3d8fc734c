package loaders

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrUnsupportedFormat is returned for output paths with an unknown image extension
var ErrUnsupportedFormat = errors.New("unsupported image format")

// jpegQuality is the quality used for .jpg output
const jpegQuality = 95

// EncoderFor returns the image encoder matching the file extension of path
func EncoderFor(path string) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// SaveImage writes img to path, choosing PNG, JPEG or BMP by extension
func SaveImage(path string, img image.Image) error {
	encoder, err := EncoderFor(path)
	if err != nil {
		return err
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// LoadImage reads an image previously written by SaveImage
func LoadImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return img, nil
}

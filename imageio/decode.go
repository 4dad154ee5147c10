package imageio

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/leafilms/docgen/canvas"
)

// MaxEdge is the longest edge, in pixels, an embedded image keeps. Larger
// images are downscaled before embedding.
const MaxEdge = 2400

// Image is a decoded image ready to be embedded in a document.
type Image struct {
	Source string
	Format Format
	Width  int
	Height int
	Embed  canvas.Image
}

// DecodeError reports an image that exists but could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the image at path. A missing file is returned as the
// underlying fs error; anything wrong with the bytes is a *DecodeError.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// Decode converts data into an embeddable image. JPEG files within MaxEdge
// are passed through untouched; everything else is re-encoded as 8-bit PNG.
func Decode(source string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Path: source, Err: ErrEmpty}
	}

	format := Sniff(data)
	var (
		img *Image
		err error
	)
	switch format {
	case FormatUnknown:
		err = ErrUnsupportedFormat
	case FormatPSD:
		err = ErrLayeredFormat
	case FormatSVG:
		img, err = decodeSVG(data)
	case FormatJPEG:
		img, err = decodeJPEG(data)
	default:
		img, err = decodeRaster(data)
	}
	if err != nil {
		return nil, &DecodeError{Path: source, Err: err}
	}

	img.Source = source
	img.Format = format
	img.Embed.Name = contentName(img.Embed.Data)
	return img, nil
}

func decodeJPEG(data []byte) (*Image, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	src, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if max(cfg.Width, cfg.Height) <= MaxEdge {
		return &Image{
			Width:  cfg.Width,
			Height: cfg.Height,
			Embed:  canvas.Image{Type: "JPG", Data: data},
		}, nil
	}

	scaled := downscale(src)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return &Image{
		Width:  scaled.Bounds().Dx(),
		Height: scaled.Bounds().Dy(),
		Embed:  canvas.Image{Type: "JPG", Data: buf.Bytes()},
	}, nil
}

func decodeRaster(data []byte) (*Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodePNG(downscale(src))
}

func encodePNG(img image.Image) (*Image, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", b.Dx(), b.Dy())
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Embed:  canvas.Image{Type: "PNG", Data: buf.Bytes()},
	}, nil
}

// downscale returns an 8-bit NRGBA copy of src whose longest edge is at most
// MaxEdge.
func downscale(src image.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if longest := max(w, h); longest > MaxEdge {
		ratio := float64(MaxEdge) / float64(longest)
		w = max(1, int(float64(w)*ratio+0.5))
		h = max(1, int(float64(h)*ratio+0.5))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func contentName(data []byte) string {
	sum := sha1.Sum(data)
	return "img-" + hex.EncodeToString(sum[:])
}

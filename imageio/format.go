package imageio

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// Format is an image container recognised from its leading bytes.
type Format string

const (
	FormatUnknown Format = ""
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
	FormatGIF     Format = "gif"
	FormatWebP    Format = "webp"
	FormatBMP     Format = "bmp"
	FormatTIFF    Format = "tiff"
	FormatSVG     Format = "svg"
	FormatPSD     Format = "psd"
)

var (
	// ErrEmpty is returned for zero-byte image files.
	ErrEmpty = errors.New("image is empty")
	// ErrUnsupportedFormat is returned when the bytes match no known format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrLayeredFormat is returned for layered editor files such as PSD, which
	// are recognised but cannot be embedded.
	ErrLayeredFormat = errors.New("layered image format is not supported, export it as JPG or PNG")
)

const sniffLen = 512

// Sniff identifies the container format of data.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return FormatJPEG
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return FormatGIF
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP
	case bytes.HasPrefix(data, []byte("BM")):
		return FormatBMP
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return FormatTIFF
	case bytes.HasPrefix(data, []byte("8BPS")):
		return FormatPSD
	case isSVG(data):
		return FormatSVG
	}
	return FormatUnknown
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > sniffLen*2 {
		head = head[:sniffLen*2]
	}
	head = bytes.TrimLeft(head, "\xef\xbb\xbf \t\r\n")
	if !bytes.HasPrefix(head, []byte("<")) {
		return false
	}
	return bytes.Contains(head, []byte("<svg"))
}

// Detect reads the first bytes of the file at path and reports its format.
func Detect(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen*2)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return FormatUnknown, err
	}
	return Sniff(buf[:n]), nil
}

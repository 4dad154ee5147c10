package imageio

import (
	"errors"
	"io/fs"
	"os"

	"github.com/flanksource/commons/logger"
)

// Resolve returns the first candidate that exists and decodes, or nil when
// none does. Missing files are skipped silently; files that exist but cannot
// be used are logged and skipped.
func Resolve(candidates ...string) *Image {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		img, err := Load(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			continue
		}
		logger.Debugf("using %s (%s %dx%d)", path, img.Format, img.Width, img.Height)
		return img
	}
	return nil
}

// IsMissing reports whether err means the file does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

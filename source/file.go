package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"gopkg.in/yaml.v3"

	"github.com/leafilms/docgen/model"
)

var sheetExtensions = []string{".yaml", ".yml", ".json"}

// FileFetcher serves sheets exported to <Dir>/<sheetID>.yaml, .yml or .json.
type FileFetcher struct {
	Dir string
}

func (f FileFetcher) Fetch(ctx context.Context, sheetID string) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range sheetExtensions {
		path := filepath.Join(f.Dir, sheetID+ext)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoData, err)
		}

		var sheet Sheet
		if err := yaml.Unmarshal(data, &sheet); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrNoData, path, err)
		}
		logger.Debugf("loaded sheet %s from %s", sheetID, path)
		return &sheet, nil
	}
	return nil, fmt.Errorf("%w: no sheet %q in %s", ErrNoData, sheetID, f.Dir)
}

// LoadProject reads project content from a YAML or JSON file.
func LoadProject(path string) (*model.ProjectContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project content: %w", err)
	}
	var content model.ProjectContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &content, nil
}

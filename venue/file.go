package venue

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileProvider loads a venue table from a JSON or YAML file shaped as
//
//	{"<team>": {"city": "...", "lat": 0.0, "lon": 0.0}, ...}
//
// When the file is missing, empty, unparsable or invalid and Fallback is
// set, the fallback table is returned and a warning is logged. Without a
// Fallback, the error is returned.
type FileProvider struct {
	Path     string
	Fallback Provider
	Logger   *zap.Logger
}

// Venues implements Provider.
func (p *FileProvider) Venues(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := p.load()
	if err == nil {
		return t, nil
	}
	if p.Fallback == nil {
		return nil, err
	}

	p.logger().Warn("venue file unusable, using fallback table",
		zap.String("path", p.Path), zap.Error(err))

	return p.Fallback.Venues(ctx)
}

func (p *FileProvider) load() (Table, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read venues %s: %w", p.Path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("venues %s: %w", p.Path, ErrEmptyTable)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse venues %s: %w", p.Path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("venues %s: %w", p.Path, err)
	}

	return t, nil
}

func (p *FileProvider) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}

	return p.Logger
}

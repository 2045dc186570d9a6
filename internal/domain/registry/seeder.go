package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// catalogPattern matches catalogue files at any depth
const catalogPattern = "**/*.{yaml,yml,toml}"

// catalogFile is the on-disk shape of a catalogue file
type catalogFile struct {
	Apps []types.Descriptor `yaml:"apps" toml:"apps"`
}

// Seeder loads catalogue files from a directory
type Seeder struct {
	dir       string
	log       *zap.Logger
	sanitizer *bluemonday.Policy
}

// NewSeeder creates a new catalogue seeder
func NewSeeder(dir string, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{
		dir:       dir,
		log:       log,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Seed reads every catalogue file under the directory. A missing directory
// yields no descriptors. Files that fail to parse are logged and skipped.
func (s *Seeder) Seed() ([]types.Descriptor, error) {
	if s.dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		s.log.Warn("Catalog directory not found", zap.String("dir", s.dir))
		return nil, nil
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(s.dir, catalogPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog directory: %w", err)
	}

	var (
		out            []types.Descriptor
		loaded, failed int
	)
	for _, path := range matches {
		apps, err := s.loadFile(path)
		if err != nil {
			s.log.Warn("Failed to load catalog file", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		out = append(out, apps...)
		loaded++
		s.log.Debug("Loaded catalog file", zap.String("path", path), zap.Int("apps", len(apps)))
	}

	s.log.Info("Catalog seeding complete",
		zap.Int("files_loaded", loaded),
		zap.Int("files_failed", failed),
		zap.Int("apps", len(out)))
	return out, nil
}

func (s *Seeder) loadFile(path string) ([]types.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	}

	for i := range file.Apps {
		s.sanitize(&file.Apps[i])
		if err := validate(file.Apps[i]); err != nil {
			return nil, err
		}
	}
	return file.Apps, nil
}

// sanitize strips markup from free-text fields
func (s *Seeder) sanitize(d *types.Descriptor) {
	d.Name = strings.TrimSpace(s.sanitizer.Sanitize(d.Name))
	d.Description = strings.TrimSpace(s.sanitizer.Sanitize(d.Description))
	d.Category = strings.TrimSpace(s.sanitizer.Sanitize(d.Category))
	if d.Kind == "" && d.ExternalURL != "" {
		d.Kind = types.KindExternal
	}
}

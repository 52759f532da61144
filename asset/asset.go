package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-stroll/animation"
)

// Well-known asset paths, relative to any asset root
const (
	CharacterPath = "models/character.yaml"
	LogosPath     = "models/logos.yaml"
)

// ClipPath returns the asset path for a named clip
func ClipPath(name string) string {
	return "animations/" + name + ".yaml"
}

// ErrNotFound is returned when no asset root holds the requested path
var ErrNotFound = errors.New("asset not found")

//go:embed data
var embedded embed.FS

// Model describes the character figure
type Model struct {
	Name   string  `yaml:"name"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// Logo is a floating decorative label
type Logo struct {
	Name     string     `yaml:"name"`
	Label    string     `yaml:"label"`
	Link     string     `yaml:"link"`
	Position [3]float64 `yaml:"position"`
	Phase    float64    `yaml:"phase"`
	Color    string     `yaml:"color"`
}

type logoFile struct {
	Logos []Logo `yaml:"logos"`
}

// Loader reads assets from a directory, falling back to the built-in set
type Loader struct {
	roots []fs.FS
	log   *zap.Logger
}

// NewLoader creates a loader; dir may be empty to use only embedded assets
func NewLoader(dir string, logger *zap.Logger) (*Loader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	builtin, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded assets: %w", err)
	}

	l := &Loader{log: logger}
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("asset dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("asset dir %s: not a directory", dir)
		}
		l.roots = append(l.roots, os.DirFS(dir))
	}
	l.roots = append(l.roots, builtin)
	return l, nil
}

// NewLoaderFS creates a loader over explicit roots searched in order
func NewLoaderFS(logger *zap.Logger, roots ...fs.FS) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{roots: roots, log: logger}
}

// ReadFile returns the first root's copy of path
func (l *Loader) ReadFile(path string) ([]byte, error) {
	for _, root := range l.roots {
		data, err := fs.ReadFile(root, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
}

// Character loads the character model
func (l *Loader) Character() (*Model, error) {
	var m Model
	if err := l.decode(CharacterPath, &m); err != nil {
		return nil, err
	}
	if m.Height <= 0 {
		return nil, fmt.Errorf("%s: height %v must be positive", CharacterPath, m.Height)
	}
	return &m, nil
}

// Clip loads and validates a named animation clip
func (l *Loader) Clip(name string) (*animation.Clip, error) {
	var c animation.Clip
	path := ClipPath(name)
	if err := l.decode(path, &c); err != nil {
		return nil, err
	}
	if c.Name == "" {
		c.Name = name
	}
	if c.Name != name {
		return nil, fmt.Errorf("%s: clip named %q", path, c.Name)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// Logos loads the decorative logo set
func (l *Loader) Logos() ([]Logo, error) {
	var f logoFile
	if err := l.decode(LogosPath, &f); err != nil {
		return nil, err
	}
	for i, lg := range f.Logos {
		if lg.Label == "" {
			return nil, fmt.Errorf("%s: logo %d has no label", LogosPath, i)
		}
	}
	return f.Logos, nil
}

func (l *Loader) decode(path string, out any) error {
	data, err := l.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	l.log.Debug("asset decoded", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

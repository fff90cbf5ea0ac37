package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file written next to generated datasets.
const ManifestName = "manifest.yaml"

// Manifest describes a set of generated dataset files.
type Manifest struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Seed        uint64    `yaml:"seed"`
	Size        int       `yaml:"size"`
	MinLen      int       `yaml:"min_len"`
	MaxLen      int       `yaml:"max_len"`
	SwapRatio   float64   `yaml:"swap_ratio"`
	Alphabet    string    `yaml:"alphabet"`
	Files       []File    `yaml:"files"`
}

// File is one dataset listed in a manifest.
type File struct {
	Shape Shape  `yaml:"shape"`
	Path  string `yaml:"path"`
	Keys  int    `yaml:"keys"`
}

// SaveManifest writes m as YAML to dir/manifest.yaml.
func SaveManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ManifestName), data, 0644)
}

// LoadManifest reads dir/manifest.yaml.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// Lookup returns the manifest entry for shape.
func (m *Manifest) Lookup(shape Shape) (File, bool) {
	for _, f := range m.Files {
		if f.Shape == shape {
			return f, true
		}
	}
	return File{}, false
}

// GenerateAll writes one file per shape into dir and a manifest describing
// them. It returns the manifest.
func GenerateAll(dir string, g *Generator, size int, seed uint64) (*Manifest, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dataset size must be positive, got %d", size)
	}
	m := &Manifest{
		GeneratedAt: time.Now().UTC(),
		Seed:        seed,
		Size:        size,
		MinLen:      g.MinLen,
		MaxLen:      g.MaxLen,
		SwapRatio:   g.SwapRatio,
		Alphabet:    Alphabet,
	}
	for _, shape := range Shapes {
		keys, err := g.Generate(shape, size)
		if err != nil {
			return nil, err
		}
		name := shape.FileName()
		if err := WriteLines(filepath.Join(dir, name), keys); err != nil {
			return nil, err
		}
		m.Files = append(m.Files, File{Shape: shape, Path: name, Keys: len(keys)})
	}
	if err := SaveManifest(dir, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Package project reads the optional nimble.toml harness manifest.
package project

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestFileName is looked up in the analyzed directory.
const ManifestFileName = "nimble.toml"

// Manifest configures a directory of Nimble test programs.
type Manifest struct {
	Name           string `toml:"name"`
	SourceDir      string `toml:"source_dir"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	FirstPhaseOnly bool   `toml:"first_phase_only"`
	Cache          bool   `toml:"cache"`
}

// Default returns the manifest used when no nimble.toml exists.
func Default() *Manifest {
	return &Manifest{
		SourceDir:      ".",
		MaxDiagnostics: 100,
		Cache:          true,
	}
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	m := Default()
	if _, err := toml.DecodeFile(path, m); err != nil {
		return nil, err
	}
	if m.MaxDiagnostics <= 0 {
		m.MaxDiagnostics = Default().MaxDiagnostics
	}
	return m, nil
}

// LoadDir loads dir/nimble.toml when present, the defaults otherwise.
func LoadDir(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(path)
}

package config

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed combos/*.yaml
var combosFS embed.FS

// EmbeddedCombos returns the combo tables compiled into the binary.
func EmbeddedCombos() fs.FS {
	sub, err := fs.Sub(combosFS, "combos")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// CombosFS returns the combo tables in dir when it is set and readable,
// falling back to the embedded tables otherwise. A set but unusable dir is
// logged.
func CombosFS(dir string) fs.FS {
	if dir == "" {
		return EmbeddedCombos()
	}
	if IsComboDir(dir) {
		return os.DirFS(dir)
	}
	log.Printf("[combos] %s is not a readable directory, using embedded tables", dir)
	return EmbeddedCombos()
}

// IsComboDir reports whether dir exists and is a directory.
func IsComboDir(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// LoadComboSpec parses and validates a single combo table. A missing name
// defaults to the file stem and a missing num_stages to the listed stage
// count.
func LoadComboSpec(fsys fs.FS, file string) (*ComboSpec, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("combos: load %s: %w", file, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec ComboSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("combos: unmarshal %s: %w", file, err)
	}

	if spec.Name == "" {
		spec.Name = comboStem(file)
	}
	if spec.NumStages == 0 {
		spec.NumStages = uint32(len(spec.Stages))
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("combos: %s: %w", file, err)
	}
	return &spec, nil
}

// LoadAllCombos loads every .yaml/.yml file at the root of fsys, returning the
// specs keyed by name plus a sorted name list.
func LoadAllCombos(fsys fs.FS) (map[string]*ComboSpec, []string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("combos: read dir: %w", err)
	}

	specs := make(map[string]*ComboSpec, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsComboFile(entry.Name()) {
			continue
		}
		spec, err := LoadComboSpec(fsys, entry.Name())
		if err != nil {
			return nil, nil, err
		}
		if _, dup := specs[spec.Name]; dup {
			return nil, nil, fmt.Errorf("combos: duplicate combo name %q in %s", spec.Name, entry.Name())
		}
		specs[spec.Name] = spec
		names = append(names, spec.Name)
	}
	if len(specs) == 0 {
		return nil, nil, fmt.Errorf("combos: no combo files found")
	}

	sort.Strings(names)
	return specs, names, nil
}

// IsComboFile reports whether a path names a combo table file.
func IsComboFile(file string) bool {
	ext := strings.ToLower(path.Ext(file))
	return ext == ".yaml" || ext == ".yml"
}

func comboStem(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

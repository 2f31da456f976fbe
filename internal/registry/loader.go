package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML registry file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file %s: %w", path, err)
	}

	return nil
}

// Merge combines files in order. An entry in a later file replaces the
// entry of the same name in an earlier one, keeping its position.
func Merge(files ...*File) *File {
	out := &File{Version: "1"}

	for _, f := range files {
		if f == nil {
			continue
		}

		out.Types = mergeTable(out.Types, f.Types)
		out.Modules = mergeTable(out.Modules, f.Modules)
		out.Globals = mergeTable(out.Globals, f.Globals)
	}

	return out
}

func mergeTable(base, overlay Table) Table {
	out := append(Table(nil), base...)

	for _, e := range overlay {
		replaced := false

		for i := range out {
			if out[i].Name == e.Name {
				out[i] = e
				replaced = true

				break
			}
		}

		if !replaced {
			out = append(out, e)
		}
	}

	return out
}

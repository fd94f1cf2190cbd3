package dictionary

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout of a seed file.
type SeedFile struct {
	Entries []Entry `yaml:"entries"`
}

// ReadYAMLFile reads entries from a YAML seed file.
func ReadYAMLFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var seed SeedFile
	if err := yaml.NewDecoder(file).Decode(&seed); err != nil {
		if err == io.EOF {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("yaml.Decode(%s) > %w", path, err)
	}
	if seed.Entries == nil {
		return []Entry{}, nil
	}
	return seed.Entries, nil
}

// WriteYAML writes entries in the seed file layout.
func WriteYAML(w io.Writer, entries []Entry) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(SeedFile{Entries: entries}); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}

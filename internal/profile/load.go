package profile

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"go.yaml.in/yaml/v3"
)

// Load reads a single profile from a YAML or JSON file.
func Load(path string) (*Profile, error) {
	raw, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := Decode(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile %q: %w", path, err)
	}

	return &p, nil
}

// LoadAll reads a list of profiles. The file holds either a top-level list or
// a mapping with a `profiles` key.
func LoadAll(path string) ([]*Profile, error) {
	raw, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	if doc, ok := raw.(map[string]any); ok {
		raw = doc["profiles"]
	}

	var profiles []*Profile
	if err := Decode(raw, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles %q: %w", path, err)
	}

	return profiles, nil
}

// Decode converts a generic document into the target using mapstructure tags.
func Decode(raw any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}

func readDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return raw, nil
}

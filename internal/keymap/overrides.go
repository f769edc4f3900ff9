// Package keymap resolves symbolic key identifiers to native virtual keys.
package keymap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverrides reads extra physical-code mappings from a YAML file keyed by
// physical code:
//
//	IntlBackslash:
//	  vk: 0xE2
//	NumpadEqual:
//	  vk: 0x92
//	  extended: true
//
// A missing file yields no overrides.
func LoadOverrides(path string) (map[string]Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	overrides := map[string]Mapping{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse keymap overrides %s: %w", path, err)
	}
	for code, m := range overrides {
		if code == "" {
			return nil, fmt.Errorf("keymap overrides %s: empty physical code", path)
		}
		if m.VK == 0 {
			return nil, fmt.Errorf("keymap overrides %s: %s has no vk", path, code)
		}
	}
	return overrides, nil
}

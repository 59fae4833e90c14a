package policy

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/releasedrop/internal/common"
	yaml "gopkg.in/yaml.v3"
)

// ParseTables decodes a YAML policy document and validates it:
//
//	access:
//	  friend456: [v3, v6]
//	size_limits:
//	  v3: 2147483648
//	  v6: 2147483648
func ParseTables(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("%w: %v", common.ErrInvalidPolicy, err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// LoadTables reads a policy file. An empty path yields DefaultTables.
func LoadTables(path string) (Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read policy file: %w", err)
	}
	return ParseTables(data)
}

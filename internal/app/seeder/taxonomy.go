package seeder

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/familypa-backend/internal/domain"
)

//go:embed taxonomy.yaml
var defaultTaxonomy []byte

// Node is one category of a taxonomy document.
type Node struct {
	Name          string `yaml:"name"`
	DefaultStatus string `yaml:"default_status"`
	Children      []Node `yaml:"children"`
}

// DefaultTaxonomy returns the built-in system-wide taxonomy.
func DefaultTaxonomy() ([]Node, error) {
	return ParseTaxonomy(defaultTaxonomy)
}

// LoadTaxonomy reads a taxonomy document from path.
func LoadTaxonomy(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	return ParseTaxonomy(data)
}

// ParseTaxonomy decodes and validates a YAML taxonomy. Names must be
// non-empty, free of the path separator, unique among siblings, and default
// statuses must be known task statuses.
func ParseTaxonomy(data []byte) ([]Node, error) {
	var nodes []Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("parse taxonomy: no categories")
	}
	if err := validateNodes(nodes, ""); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	return nodes, nil
}

func validateNodes(nodes []Node, parent string) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		name := strings.TrimSpace(n.Name)
		path := domain.BuildCategoryPath(parent, name)
		if name == "" {
			return fmt.Errorf("empty category name under %q", parent)
		}
		if strings.Contains(name, ">") {
			return fmt.Errorf("category name %q contains '>'", name)
		}
		if seen[strings.ToLower(name)] {
			return fmt.Errorf("duplicate category %q", path)
		}
		seen[strings.ToLower(name)] = true

		if n.DefaultStatus != "" && !domain.TaskStatus(n.DefaultStatus).IsValid() {
			return fmt.Errorf("category %q: invalid default_status %q", path, n.DefaultStatus)
		}
		if err := validateNodes(n.Children, path); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of categories in the taxonomy.
func Count(nodes []Node) int {
	n := len(nodes)
	for _, node := range nodes {
		n += Count(node.Children)
	}
	return n
}

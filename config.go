package wee

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadBindings reads bindings from a YAML (.yaml, .yml) or TOML (.toml) file.
//
// Each top-level key names an argument. A string value becomes a Key and a
// list becomes Rules, so sources can be prioritized:
//
//	user:
//	  - HTTP_X_USER
//	  - cookie.user
//	lang: HTTP_ACCEPT_LANGUAGE
func LoadBindings(path string) (Bindings, error) {
	b, err := os.ReadFile(path) //nolint:gosec // caller-provided path
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(b)
	case ".toml":
		return ParseTOML(b)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseYAML parses bindings from a YAML document.
func ParseYAML(data []byte) (Bindings, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	bindings := Bindings{}
	if len(doc.Content) == 0 {
		return bindings, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return bindings, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: bindings must be a mapping", ErrInvalidRule)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		name := key.Value
		if _, ok := bindings[name]; ok {
			return nil, fmt.Errorf("%w: line %d: duplicate binding %q", ErrInvalidRule, key.Line, name)
		}
		rule, err := yamlRule(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		bindings[name] = rule
	}
	return bindings, nil
}

func yamlRule(n *yaml.Node) (Rule, error) {
	//exhaustive:ignore
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			break
		}
		return Key(n.Value), nil
	case yaml.SequenceNode:
		rules := make(Rules, 0, len(n.Content))
		for _, c := range n.Content {
			r, err := yamlRule(c)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		return rules, nil
	case yaml.AliasNode:
		return yamlRule(n.Alias)
	}
	return nil, fmt.Errorf("%w: line %d: unsupported %s", ErrInvalidRule, n.Line, n.ShortTag())
}

// ParseTOML parses bindings from a TOML document.
func ParseTOML(data []byte) (Bindings, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	bindings := make(Bindings, len(raw))
	for name, v := range raw {
		rule, err := valueRule(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		bindings[name] = rule
	}
	return bindings, nil
}

func valueRule(v any) (Rule, error) {
	switch v := v.(type) {
	case string:
		return Key(v), nil
	case []any:
		rules := make(Rules, 0, len(v))
		for _, e := range v {
			r, err := valueRule(e)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		return rules, nil
	default:
		return nil, fmt.Errorf("%w: unsupported %T", ErrInvalidRule, v)
	}
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barokit/baro/internal/errors"
)

// configHeader precedes freshly written config files.
const configHeader = `# baro configuration.
# Defaults seed the command line flags; patterns are managed by 'baro pattern'.
`

// Save writes cfg to path as YAML with a comment header, creating the parent
// directory when needed. This replaces the whole file; UpsertPattern and
// DeletePattern edit an existing file in place instead, so user comments
// survive.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInternal,
			"Could not encode the config",
			"This is a bug in baro; please report it.")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Could not create config directory "+dir,
				"Check the directory permissions.")
		}
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Could not write "+path,
			"Check the file permissions.")
	}
	return nil
}

// UpsertPattern stores a named pattern in the config file at path, creating
// the file when it does not exist yet. Existing files are edited as a YAML
// node tree, which preserves their structure and comments. Returns whether
// an entry with that name was replaced.
func UpsertPattern(path, name, regex string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) || (err == nil && len(bytes.TrimSpace(data)) == 0) {
		cfg := DefaultConfig()
		cfg.AddPattern(name, regex)
		return false, Save(path, cfg)
	}
	if err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Could not read "+path,
			"Check the file permissions.")
	}

	root, doc, err := parseDocument(data, path)
	if err != nil {
		return false, err
	}

	patterns := findMapValue(doc, "patterns")
	if patterns == nil {
		patterns = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		doc.Content = append(doc.Content,
			scalarNode("patterns"),
			patterns)
	} else if patterns.Kind != yaml.SequenceNode {
		// A bare "patterns:" key parses as null; turn it into a sequence.
		*patterns = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	}

	replaced := false
	for _, entry := range patterns.Content {
		nameNode := findMapValue(entry, "name")
		if nameNode == nil || nameNode.Value != name {
			continue
		}
		if regexNode := findMapValue(entry, "regex"); regexNode != nil {
			regexNode.SetString(regex)
		} else {
			entry.Content = append(entry.Content, scalarNode("regex"), scalarNode(regex))
		}
		replaced = true
		break
	}

	if !replaced {
		patterns.Content = append(patterns.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				scalarNode("name"), scalarNode(name),
				scalarNode("regex"), scalarNode(regex),
			},
		})
	}

	return replaced, writeDocument(path, root)
}

// DeletePattern removes the named pattern from the config file at path,
// preserving the rest of the file. Returns whether the pattern was stored.
func DeletePattern(path, name string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Could not read "+path,
			"Check the file permissions.")
	}

	root, doc, err := parseDocument(data, path)
	if err != nil {
		return false, err
	}

	patterns := findMapValue(doc, "patterns")
	if patterns == nil || patterns.Kind != yaml.SequenceNode {
		return false, nil
	}

	for i, entry := range patterns.Content {
		nameNode := findMapValue(entry, "name")
		if nameNode == nil || nameNode.Value != name {
			continue
		}
		patterns.Content = append(patterns.Content[:i], patterns.Content[i+1:]...)
		return true, writeDocument(path, root)
	}
	return false, nil
}

// parseDocument unmarshals a config file into a node tree and returns the
// root together with the top-level mapping.
func parseDocument(data []byte, path string) (*yaml.Node, *yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file is not valid YAML",
			"Fix or remove "+path+".")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 ||
		root.Content[0].Kind != yaml.MappingNode {
		return nil, nil, errors.New(errors.ErrConfig,
			"Config file does not hold a YAML mapping",
			"Fix or remove "+path+".")
	}
	return &root, root.Content[0], nil
}

// writeDocument encodes the node tree back to path.
func writeDocument(path string, root *yaml.Node) error {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return errors.WrapWithCode(err, errors.ErrInternal,
			"Could not encode the config",
			"This is a bug in baro; please report it.")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInternal,
			"Could not encode the config",
			"This is a bug in baro; please report it.")
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Could not write "+path,
			"Check the file permissions.")
	}
	return nil
}

// findMapValue returns the value node for key in a mapping node, or nil.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode && node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func scalarNode(value string) *yaml.Node {
	n := &yaml.Node{}
	n.SetString(value)
	return n
}

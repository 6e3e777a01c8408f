// internal/adapters/recipe/parse.go
package recipe

import (
	"strings"

	"gopkg.in/yaml.v3"

	"biorules/internal/core/domain"
	"biorules/internal/platform/errors"
)

const nullTag = "!!null"

// Parser extracts package identity and the test spec from a rendered recipe.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements ports.MetadataParser. Imports take precedence over
// commands when a test section declares both.
func (p *Parser) Parse(rendered string) (domain.Metadata, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(rendered), &doc); err != nil {
		return domain.Metadata{}, errors.Detail(errors.ErrMalformedDocument, "%v", err)
	}
	if len(doc.Content) == 0 {
		return domain.Metadata{}, errors.ErrEmptyDocument
	}

	root := resolve(doc.Content[0])
	if isNull(root) || (root.Kind == yaml.MappingNode && len(root.Content) == 0) {
		return domain.Metadata{}, errors.ErrEmptyDocument
	}
	if root.Kind != yaml.MappingNode {
		return domain.Metadata{}, errors.Detail(errors.ErrMalformedDocument, "document is a %s, not a mapping", kindName(root))
	}

	pkg, err := parsePackage(lookup(root, "package"))
	if err != nil {
		return domain.Metadata{}, err
	}

	spec, err := parseTest(lookup(root, "test"))
	if err != nil {
		return domain.Metadata{}, err
	}

	return domain.Metadata{Package: pkg, Test: spec}, nil
}

func parsePackage(node *yaml.Node) (domain.PackageInfo, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return domain.PackageInfo{}, errors.ErrNoPackageName
	}

	name := lookup(node, "name")
	if name == nil || isNull(name) {
		return domain.PackageInfo{}, errors.ErrNoPackageName
	}
	if name.Kind != yaml.ScalarNode {
		return domain.PackageInfo{}, errors.Detail(errors.ErrMalformedDocument, "package.name is a %s (line %d)", kindName(name), name.Line)
	}
	if strings.TrimSpace(name.Value) == "" {
		return domain.PackageInfo{}, errors.ErrNoPackageName
	}

	info := domain.PackageInfo{Name: strings.TrimSpace(name.Value)}

	// version keeps the scalar text as written, so 1.10 is not read as 1.1
	if v := lookup(node, "version"); v != nil && !isNull(v) {
		if v.Kind != yaml.ScalarNode {
			return domain.PackageInfo{}, errors.Detail(errors.ErrMalformedDocument, "package.version is a %s (line %d)", kindName(v), v.Line)
		}
		info.Version = domain.StringPtr(strings.TrimSpace(v.Value))
	}
	return info, nil
}

func parseTest(node *yaml.Node) (domain.TestSpec, error) {
	if node == nil || isNull(node) {
		return domain.TestSpec{}, errors.ErrNoTestSection
	}
	if node.Kind != yaml.MappingNode {
		return domain.TestSpec{}, errors.Detail(errors.ErrMalformedDocument, "test is a %s (line %d)", kindName(node), node.Line)
	}

	if imports := lookup(node, "imports"); imports != nil {
		items, err := scalarList("test.imports", imports)
		if err != nil {
			return domain.TestSpec{}, err
		}
		return domain.ImportsSpec(items), nil
	}

	if commands := lookup(node, "commands"); commands != nil {
		items, err := scalarList("test.commands", commands)
		if err != nil {
			return domain.TestSpec{}, err
		}
		return domain.CommandsSpec(items), nil
	}

	return domain.TestSpec{}, errors.ErrNoTestSpec
}

// scalarList reads a sequence of scalars. A null value is an empty list and
// null items are skipped.
func scalarList(field string, node *yaml.Node) ([]string, error) {
	items := []string{}
	if isNull(node) {
		return items, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.Detail(errors.ErrMalformedDocument, "%s is a %s, not a list (line %d)", field, kindName(node), node.Line)
	}
	for _, item := range node.Content {
		item = resolve(item)
		if isNull(item) {
			continue
		}
		if item.Kind != yaml.ScalarNode {
			return nil, errors.Detail(errors.ErrMalformedDocument, "%s item is a %s (line %d)", field, kindName(item), item.Line)
		}
		items = append(items, item.Value)
	}
	return items, nil
}

// lookup returns the value node for key in a mapping, or nil.
func lookup(node *yaml.Node, key string) *yaml.Node {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolve(node.Content[i+1])
		}
	}
	return nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == nullTag
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "node"
	}
}

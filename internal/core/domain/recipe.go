// internal/core/domain/recipe.go
package domain

// Recipe is one unit of work: a recipe directory and the metadata document
// located inside it.
type Recipe struct {
	// ID is the recipe directory name
	ID string

	// MetaPath is the path to meta.yaml, possibly nested below ID
	MetaPath string
}

// PackageInfo identifies a package. Version is nil when the recipe does not
// declare one.
type PackageInfo struct {
	Name    string
	Version *string
}

// Spec returns the install specifier: "name" or "name=version".
func (p PackageInfo) Spec() string {
	if p.Version == nil || *p.Version == "" {
		return p.Name
	}
	return p.Name + "=" + *p.Version
}

// HasVersion reports whether a version was declared.
func (p PackageInfo) HasVersion() bool {
	return p.Version != nil
}

// TestSpec holds exactly one of Commands or Imports, selected by Kind.
type TestSpec struct {
	Kind     TestSpecKind
	Commands []string
	Imports  []string
}

// CommandsSpec builds a Commands variant.
func CommandsSpec(commands []string) TestSpec {
	return TestSpec{Kind: TestSpecCommands, Commands: commands}
}

// ImportsSpec builds an Imports variant.
func ImportsSpec(imports []string) TestSpec {
	return TestSpec{Kind: TestSpecImports, Imports: imports}
}

// Metadata is what the parser extracts from a rendered recipe.
type Metadata struct {
	Package PackageInfo
	Test    TestSpec
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

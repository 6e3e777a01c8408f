// internal/adapters/recipe/parse_test.go
package recipe

import (
	"testing"

	"biorules/internal/core/domain"
	"biorules/internal/platform/errors"
	"biorules/internal/testutil"
)

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", errors.ErrEmptyDocument},
		{"comments only", "# generated\n", errors.ErrEmptyDocument},
		{"null document", "~\n", errors.ErrEmptyDocument},
		{"empty mapping", "{}\n", errors.ErrEmptyDocument},
		{"missing name", testutil.MetaNoName, errors.ErrNoPackageName},
		{"null name", "package:\n  name:\ntest:\n  imports: [a]\n", errors.ErrNoPackageName},
		{"no package", "test:\n  imports: [a]\n", errors.ErrNoPackageName},
		{"missing test", testutil.MetaNoTest, errors.ErrNoTestSection},
		{"null test", testutil.MetaNullTest, errors.ErrNoTestSection},
		{"neither commands nor imports", testutil.MetaEmptyTest, errors.ErrNoTestSpec},
		{"invalid yaml", "package:\n  name: [unclosed\n", errors.ErrMalformedDocument},
		{"scalar document", "just text\n", errors.ErrMalformedDocument},
		{"commands not a list", "package:\n  name: foo\ntest:\n  commands: foo --help\n", errors.ErrMalformedDocument},
		{"nested list item", "package:\n  name: foo\ntest:\n  commands:\n    - [foo, bar]\n", errors.ErrMalformedDocument},
		{"test is a list", "package:\n  name: foo\ntest:\n  - foo\n", errors.ErrMalformedDocument},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.doc)
			testutil.AssertError(t, err, "parse")
			testutil.AssertTrue(t, errors.Is(err, tt.want), "sentinel: "+err.Error())
		})
	}
}

func TestParser_Success(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantKind    domain.TestSpecKind
		wantVersion *string
		wantItems   []string
	}{
		{
			name:        "commands",
			doc:         "package:\n  name: foo\n  version: 1.0\ntest:\n  commands:\n    - foo --help\n    - foo -v\n",
			wantKind:    domain.TestSpecCommands,
			wantVersion: domain.StringPtr("1.0"),
			wantItems:   []string{"foo --help", "foo -v"},
		},
		{
			name:        "version text kept verbatim",
			doc:         "package:\n  name: foo\n  version: 1.10\ntest:\n  imports: [foo]\n",
			wantKind:    domain.TestSpecImports,
			wantVersion: domain.StringPtr("1.10"),
			wantItems:   []string{"foo"},
		},
		{
			name:      "no version",
			doc:       testutil.MetaNoVersion,
			wantKind:  domain.TestSpecImports,
			wantItems: []string{"bar"},
		},
		{
			name:        "imports win over commands",
			doc:         testutil.MetaBothSpecs,
			wantKind:    domain.TestSpecImports,
			wantVersion: domain.StringPtr("1.0"),
			wantItems:   []string{"foo"},
		},
		{
			name:        "null commands is an empty list",
			doc:         "package:\n  name: foo\n  version: '2'\ntest:\n  commands:\n",
			wantKind:    domain.TestSpecCommands,
			wantVersion: domain.StringPtr("2"),
			wantItems:   []string{},
		},
		{
			name:        "null items skipped",
			doc:         "package:\n  name: foo\n  version: '2'\ntest:\n  commands:\n    -\n    - foo\n",
			wantKind:    domain.TestSpecCommands,
			wantVersion: domain.StringPtr("2"),
			wantItems:   []string{"foo"},
		},
		{
			name:        "aliases resolved",
			doc:         "x: &cmds\n  - foo -h\npackage:\n  name: foo\n  version: '3'\ntest:\n  commands: *cmds\n",
			wantKind:    domain.TestSpecCommands,
			wantVersion: domain.StringPtr("3"),
			wantItems:   []string{"foo -h"},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := p.Parse(tt.doc)
			testutil.AssertNoError(t, err, "parse")
			testutil.AssertEqual(t, md.Test.Kind, tt.wantKind, "kind")

			if tt.wantVersion == nil {
				testutil.AssertFalse(t, md.Package.HasVersion(), "no version")
			} else {
				testutil.AssertTrue(t, md.Package.HasVersion(), "has version")
				testutil.AssertEqual(t, *md.Package.Version, *tt.wantVersion, "version")
			}

			items := md.Test.Commands
			if tt.wantKind == domain.TestSpecImports {
				items = md.Test.Imports
			}
			testutil.AssertStrings(t, items, tt.wantItems, "items")
		})
	}
}

// cmd/biorules/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"biorules/internal/testutil"
)

func recipesTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "recipes")
	testutil.WriteFile(t, root, "pyfoo/meta.yaml", testutil.MetaImports)
	testutil.WriteFile(t, root, "noname/meta.yaml", testutil.MetaNoName)
	testutil.WriteFile(t, root, "notest/meta.yaml", testutil.MetaNoTest)
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return root
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_ImportsOnlyChunk(t *testing.T) {
	root := recipesTree(t)
	out := filepath.Join(t.TempDir(), "out")

	code, stdout, stderr := runCLI(t, "0", "1",
		"--recipes-dir", root, "--output-dir", out, "--ui", "quiet", "--log-level", "error", "--output.stream")
	testutil.AssertEqual(t, code, 0, "exit code, stderr: "+stderr)
	testutil.AssertContains(t, stdout, "Processing chunk 0: 0 to 4 of 4 directories", "progress line")

	importable := testutil.ReadFile(t, filepath.Join(out, "bioconda.importable.0.yml"))
	testutil.AssertContains(t, importable, "name: pyfoo", "importable name")
	testutil.AssertContains(t, importable, "recipe_dir: pyfoo", "importable dir")

	rules := testutil.ReadFile(t, filepath.Join(out, "bioconda.rules.0.yml"))
	testutil.AssertContains(t, rules, "rules: []", "no rules")

	errs := testutil.ReadFile(t, filepath.Join(out, "errors.0.txt"))
	testutil.AssertContains(t, errs, "No package name for package noname", "no name")
	testutil.AssertContains(t, errs, "No test section found for package notest", "no test")

	missing := testutil.ReadFile(t, filepath.Join(out, "missing_meta_yaml.0.txt"))
	testutil.AssertEqual(t, missing, "empty", "missing meta")

	stream := testutil.ReadFile(t, filepath.Join(out, "bioconda.outcomes.0.jsonl"))
	testutil.AssertEqual(t, bytes.Count([]byte(stream), []byte("\n")), 3, "one record per recipe with meta.yaml")
}

func TestExecute_JSONFormat(t *testing.T) {
	root := recipesTree(t)
	out := filepath.Join(t.TempDir(), "out")

	code, _, stderr := runCLI(t, "0", "1",
		"--recipes-dir", root, "--output-dir", out, "--ui", "quiet", "-f", "json", "--output.prefix", "bio")
	testutil.AssertEqual(t, code, 0, "exit code, stderr: "+stderr)

	importable := testutil.ReadFile(t, filepath.Join(out, "bio.importable.0.json"))
	testutil.AssertContains(t, importable, `"name": "pyfoo"`, "json importable")
}

func TestExecute_EmptyChunkWritesNothing(t *testing.T) {
	root := recipesTree(t)
	out := filepath.Join(t.TempDir(), "out")

	code, stdout, _ := runCLI(t, "5", "2", "--recipes-dir", root, "--output-dir", out, "--ui", "quiet")
	testutil.AssertEqual(t, code, 0, "exit code")
	testutil.AssertEqual(t, stdout, "", "no progress line")

	_, err := os.Stat(out)
	testutil.AssertTrue(t, os.IsNotExist(err), "output dir not created")
}

func TestExecute_ExitCodes(t *testing.T) {
	root := recipesTree(t)
	blocker := testutil.WriteFile(t, t.TempDir(), "file", "x")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing recipes dir", []string{"0", "1", "--recipes-dir", filepath.Join(root, "absent"), "--ui", "quiet"}, 2},
		{"missing arguments", []string{"0"}, 2},
		{"zero total chunks", []string{"0", "0", "--recipes-dir", root}, 2},
		{"bad format", []string{"0", "1", "--recipes-dir", root, "-f", "xml"}, 2},
		{"unwritable output", []string{"0", "1", "--recipes-dir", root, "--ui", "quiet", "--output-dir", filepath.Join(blocker, "out")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			testutil.AssertEqual(t, code, tt.want, "exit code")
			testutil.AssertContains(t, stderr, "Error:", "error printed")
		})
	}
}

func TestExecute_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	testutil.AssertEqual(t, code, 0, "exit code")
	testutil.AssertContains(t, stdout, "biorules dev", "version line")
}

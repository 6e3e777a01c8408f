// internal/platform/config/help.go
package config

import (
	"fmt"
	"runtime"
)

// Usage is the one-line synopsis of the command.
const Usage = "biorules CHUNK TOTAL_CHUNKS"

// Short is the one-line description of the command.
const Short = "Derive process detection rules from bioconda recipes"

// Long is the extended help shown by --help.
const Long = `biorules reads the bioconda recipe directories of one chunk, renders each
meta.yaml, and classifies every package by its test section:

  executable   test commands that run inside an ephemeral pixi environment
               and resolve to a binary name become detection rules
  importable   packages tested only through imports
  unresolved   packages whose commands could not be turned into rules

The recipe directories are sorted and split into TOTAL_CHUNKS contiguous
ranges; CHUNK selects the 0-based range processed by this run.

OUTPUT:
  <prefix>.rules.<chunk>.yml        detection rules
  <prefix>.importable.<chunk>.yml   import-tested packages
  <prefix>.unresolved.<chunk>.yml   packages without rules
  errors.<chunk>.yml                every issue with its severity
  errors.<chunk>.txt                error messages, one per line
  warnings.<chunk>.txt              warning messages, one per line
  missing_meta_yaml.<chunk>.txt     recipes without a meta.yaml

CONFIGURATION:
  Values are layered, later layers winning:
    built-in defaults < --config file < BIORULES_* environment < flags

  Environment names are the flag names upper-cased with "." and "-"
  replaced by "_":

  BIORULES_WORKERS=8                 Recipes processed concurrently
  BIORULES_TIMEOUT=30s               Per-command time limit
  BIORULES_PIXI_CHANNELS=conda-forge,bioconda
  BIORULES_OUTPUT_FORMAT=json        Document format
  BIORULES_LOG_LEVEL=debug           Log level`

// Example is shown under the EXAMPLES heading of --help.
const Example = `  Process the first of ten chunks:
    biorules 0 10 --recipes-dir bioconda-recipes/recipes

  Four workers, JSON documents, per-package limit:
    biorules 3 10 -w 4 -f json --package-timeout 2m

  CI logs:
    biorules 0 1 --ui raw`

// VersionString formats the build information printed by --version.
func VersionString(version, commit, date string) string {
	return fmt.Sprintf("biorules %s\n  Commit:  %s\n  Built:   %s\n  Go:      %s\n",
		version, commit, date, getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}

// internal/core/domain/enums.go
package domain

// Severity grades an Issue.
type Severity string

const (
	// SeverityError marks a terminal problem for the package
	SeverityError Severity = "error"

	// SeverityWarning marks a recoverable condition; processing continued
	SeverityWarning Severity = "warning"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning:
		return true
	default:
		return false
	}
}

// String returns the wire form of the severity.
func (s Severity) String() string {
	return string(s)
}

// TestSpecKind tells which variant a TestSpec holds.
type TestSpecKind string

const (
	// TestSpecNone means the recipe declares neither commands nor imports
	TestSpecNone TestSpecKind = ""

	// TestSpecCommands means the recipe is verified by running shell commands
	TestSpecCommands TestSpecKind = "commands"

	// TestSpecImports means the recipe is verified by importing modules
	TestSpecImports TestSpecKind = "imports"
)

// String returns the variant name.
func (k TestSpecKind) String() string {
	if k == TestSpecNone {
		return "none"
	}
	return string(k)
}

// CommandOutcome is the result of running one candidate test command.
type CommandOutcome string

const (
	CommandPass    CommandOutcome = "pass"
	CommandFail    CommandOutcome = "fail"
	CommandTimeout CommandOutcome = "timeout"
)

// IsValid reports whether o is a known command outcome.
func (o CommandOutcome) IsValid() bool {
	switch o {
	case CommandPass, CommandFail, CommandTimeout:
		return true
	default:
		return false
	}
}

// OutcomeKind is the terminal bucket a processed recipe lands in.
type OutcomeKind string

const (
	// OutcomeExecutable means at least one detection rule was derived
	OutcomeExecutable OutcomeKind = "executable"

	// OutcomeImportable means the package is tested through imports
	OutcomeImportable OutcomeKind = "importable"

	// OutcomeAmbiguous means no rule could be derived from the test commands
	OutcomeAmbiguous OutcomeKind = "ambiguous"

	// OutcomeError means processing stopped on a structural or provisioning error
	OutcomeError OutcomeKind = "error"
)

// IsValid reports whether k is a known outcome kind.
func (k OutcomeKind) IsValid() bool {
	switch k {
	case OutcomeExecutable, OutcomeImportable, OutcomeAmbiguous, OutcomeError:
		return true
	default:
		return false
	}
}

// String returns the bucket name.
func (k OutcomeKind) String() string {
	return string(k)
}

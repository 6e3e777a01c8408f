// internal/core/domain/outcome.go
package domain

// Issue is an error or warning recorded while processing a package.
type Issue struct {
	Package  string   `yaml:"package" json:"package"`
	Message  string   `yaml:"message" json:"message"`
	Severity Severity `yaml:"severity" json:"severity"`
}

// NewError creates an error-severity Issue.
func NewError(pkg, message string) Issue {
	return Issue{Package: pkg, Message: message, Severity: SeverityError}
}

// NewWarning creates a warning-severity Issue.
func NewWarning(pkg, message string) Issue {
	return Issue{Package: pkg, Message: message, Severity: SeverityWarning}
}

// Outcome is the single terminal result of processing one recipe. Which
// fields are meaningful depends on Kind:
//
//	executable: Package, Rules
//	importable: Package, Imports
//	ambiguous:  Package, TestCommands, SuccessfulCommands
//	error:      the error-severity entry in Issues
//
// Issues may also carry warnings for any kind.
type Outcome struct {
	Kind               OutcomeKind
	Recipe             string
	Package            PackageInfo
	Rules              []DetectionRule
	Imports            []string
	TestCommands       []string
	SuccessfulCommands []string
	Issues             []Issue
}

// ExecutableOutcome records the rules derived for a package.
func ExecutableOutcome(recipe string, pkg PackageInfo, rules []DetectionRule, issues []Issue) Outcome {
	return Outcome{Kind: OutcomeExecutable, Recipe: recipe, Package: pkg, Rules: rules, Issues: issues}
}

// ImportableOutcome records a package verified through imports.
func ImportableOutcome(recipe string, pkg PackageInfo, imports []string, issues []Issue) Outcome {
	return Outcome{Kind: OutcomeImportable, Recipe: recipe, Package: pkg, Imports: imports, Issues: issues}
}

// AmbiguousOutcome records a package whose commands produced no rule.
func AmbiguousOutcome(recipe string, pkg PackageInfo, commands, successful []string, issues []Issue) Outcome {
	if successful == nil {
		successful = []string{}
	}
	return Outcome{
		Kind:               OutcomeAmbiguous,
		Recipe:             recipe,
		Package:            pkg,
		TestCommands:       commands,
		SuccessfulCommands: successful,
		Issues:             issues,
	}
}

// ErrorOutcome records a terminal failure. Warnings gathered before the
// failure are kept ahead of the error entry.
func ErrorOutcome(recipe, pkg, message string, warnings []Issue) Outcome {
	issues := append(append([]Issue{}, warnings...), NewError(pkg, message))
	return Outcome{Kind: OutcomeError, Recipe: recipe, Package: PackageInfo{Name: pkg}, Issues: issues}
}

// Err returns the error-severity entry, if any.
func (o Outcome) Err() (Issue, bool) {
	for _, i := range o.Issues {
		if i.Severity == SeverityError {
			return i, true
		}
	}
	return Issue{}, false
}

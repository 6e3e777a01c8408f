// internal/core/domain/enums_test.go
package domain

import (
	"testing"

	"biorules/internal/testutil"
)

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		severity Severity
		valid    bool
	}{
		{SeverityError, true},
		{SeverityWarning, true},
		{Severity("info"), false},
		{Severity(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			testutil.AssertEqual(t, tt.severity.IsValid(), tt.valid, "severity validity")
		})
	}
}

func TestTestSpecKind_String(t *testing.T) {
	testutil.AssertEqual(t, TestSpecNone.String(), "none", "none kind")
	testutil.AssertEqual(t, TestSpecCommands.String(), "commands", "commands kind")
	testutil.AssertEqual(t, TestSpecImports.String(), "imports", "imports kind")
}

func TestCommandOutcome_IsValid(t *testing.T) {
	for _, o := range []CommandOutcome{CommandPass, CommandFail, CommandTimeout} {
		testutil.AssertTrue(t, o.IsValid(), string(o))
	}
	testutil.AssertFalse(t, CommandOutcome("skipped").IsValid(), "unknown outcome")
}

func TestOutcomeKind_IsValid(t *testing.T) {
	for _, k := range []OutcomeKind{OutcomeExecutable, OutcomeImportable, OutcomeAmbiguous, OutcomeError} {
		testutil.AssertTrue(t, k.IsValid(), k.String())
	}
	testutil.AssertFalse(t, OutcomeKind("unresolved").IsValid(), "unknown kind")
}

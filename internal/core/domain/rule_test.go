package domain

import (
	"testing"

	"biorules/internal/testutil"
)

func TestNewDetectionRule_Naming(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		command  string
		wantRule string
	}{
		{"command equals package", "foo", "foo", "foo process"},
		{"command differs from package", "samtools", "bgzip", "samtools bgzip process"},
		{"script named after package", "foo", "foo.py", "foo foo.py process"},
		{"case matters for equality", "Foo", "foo", "Foo foo process"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewDetectionRule(tt.pkg, tt.command)
			testutil.AssertEqual(t, rule.RuleName, tt.wantRule, "rule name")
			testutil.AssertEqual(t, rule.DisplayName, tt.command, "display name")
		})
	}
}

func TestNewDetectionRule_PlainCondition(t *testing.T) {
	rule := NewDetectionRule("foo", "foo")

	testutil.AssertFalse(t, rule.Condition.IsCompound(), "plain executable should not be compound")
	testutil.AssertEqual(t, rule.Condition.ProcessNameIs, "foo", "process_name_is")
}

func TestNewDetectionRule_PythonScript(t *testing.T) {
	for _, cmd := range []string{"foo.py", "run_foo.pyz", "scripts/foo.py"} {
		t.Run(cmd, func(t *testing.T) {
			rule := NewDetectionRule("foo", cmd)
			c := rule.Condition

			testutil.AssertTrue(t, c.IsCompound(), "python script must use compound condition")
			testutil.AssertEqual(t, c.ProcessNameIs, "", "no plain process name")
			if len(c.And) != 3 {
				t.Fatalf("expected 3 sub-conditions, got %d", len(c.And))
			}
			testutil.AssertEqual(t, c.And[0].ProcessNameContains, "python", "interpreter match")
			testutil.AssertEqual(t, c.And[1].MinArgs, 1, "min args")
			testutil.AssertEqual(t, c.And[2].FirstArgIs, cmd, "first arg")
		})
	}
}

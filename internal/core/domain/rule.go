// internal/core/domain/rule.go
package domain

import "strings"

// Condition is a predicate over observable process attributes. Exactly one
// field is set; the yaml keys match the rules file read by the process
// monitor.
type Condition struct {
	ProcessNameIs       string      `yaml:"process_name_is,omitempty" json:"process_name_is,omitempty"`
	ProcessNameContains string      `yaml:"process_name_contains,omitempty" json:"process_name_contains,omitempty"`
	MinArgs             int         `yaml:"min_args,omitempty" json:"min_args,omitempty"`
	FirstArgIs          string      `yaml:"first_arg_is,omitempty" json:"first_arg_is,omitempty"`
	And                 []Condition `yaml:"and,omitempty" json:"and,omitempty"`
}

func ProcessNameIs(name string) Condition       { return Condition{ProcessNameIs: name} }
func ProcessNameContains(part string) Condition { return Condition{ProcessNameContains: part} }
func MinArgs(n int) Condition                   { return Condition{MinArgs: n} }
func FirstArgIs(arg string) Condition           { return Condition{FirstArgIs: arg} }
func And(conds ...Condition) Condition          { return Condition{And: conds} }

// IsCompound reports whether c is an And condition.
func (c Condition) IsCompound() bool {
	return len(c.And) > 0
}

// DetectionRule tells the monitor how to recognise a running package.
type DetectionRule struct {
	RuleName    string    `yaml:"rule_name" json:"rule_name"`
	DisplayName string    `yaml:"display_name" json:"display_name"`
	Condition   Condition `yaml:"condition" json:"condition"`
}

// NewDetectionRule builds the rule for a command resolved from pkg's tests.
// Python scripts run as "python script.py", so the process name is the
// interpreter and the script is the first argument.
func NewDetectionRule(pkg, command string) DetectionRule {
	name := pkg + " " + command + " process"
	if command == pkg {
		name = command + " process"
	}

	cond := ProcessNameIs(command)
	if strings.Contains(command, ".py") {
		cond = And(
			ProcessNameContains("python"),
			MinArgs(1),
			FirstArgIs(command),
		)
	}

	return DetectionRule{
		RuleName:    name,
		DisplayName: command,
		Condition:   cond,
	}
}

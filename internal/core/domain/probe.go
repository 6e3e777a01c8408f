// internal/core/domain/probe.go
package domain

// CommandResult is the observed outcome of one candidate test command.
type CommandResult struct {
	Command string
	Outcome CommandOutcome
}

// ProbeResult keeps one entry per candidate command, in test-spec order.
type ProbeResult struct {
	Results []CommandResult
}

// Successful returns the commands that passed, in their original order.
func (p ProbeResult) Successful() []string {
	out := make([]string, 0, len(p.Results))
	for _, r := range p.Results {
		if r.Outcome == CommandPass {
			out = append(out, r.Command)
		}
	}
	return out
}

// TimedOut returns the commands that exceeded their deadline.
func (p ProbeResult) TimedOut() []string {
	var out []string
	for _, r := range p.Results {
		if r.Outcome == CommandTimeout {
			out = append(out, r.Command)
		}
	}
	return out
}

// internal/core/usecases/resolver.go
package usecases

import (
	"strings"

	"biorules/internal/core/domain"
	"biorules/internal/platform/shellx"
)

// noiseTokens are words test harnesses add around the program under test.
var noiseTokens = map[string]struct{}{
	"grep":      {},
	"/dev/null": {},
}

// metaLeaders are first characters of shell syntax rather than program names.
const metaLeaders = "{}<>&|;'\"$="

// Tokenize splits a test command into shell words.
func Tokenize(command string) []string {
	return shellx.Fields(command)
}

// FilterTokens drops flags, shell syntax and harness noise, keeping order.
func FilterTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || tok[0] == '-' || strings.IndexByte(metaLeaders, tok[0]) >= 0 {
			continue
		}
		if _, noise := noiseTokens[tok]; noise {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// ResolveCommand picks the word of command that names the invoked program.
// When several candidates remain, the first one containing the package name
// (case-insensitively) wins, otherwise the first candidate. ok is false when
// nothing is left after filtering.
func ResolveCommand(pkg, command string) (resolved string, ok bool) {
	tokens := FilterTokens(Tokenize(command))
	if len(tokens) == 0 {
		return "", false
	}
	if len(tokens) > 1 {
		needle := strings.ToLower(pkg)
		for _, tok := range tokens {
			if strings.Contains(strings.ToLower(tok), needle) {
				return tok, true
			}
		}
	}
	return tokens[0], true
}

// ResolveRules derives one rule per distinct resolved command, in order of
// first appearance. An empty result means the package is ambiguous.
func ResolveRules(pkg string, successful []string) []domain.DetectionRule {
	seen := make(map[string]struct{}, len(successful))
	rules := []domain.DetectionRule{}
	for _, cmd := range successful {
		resolved, ok := ResolveCommand(pkg, cmd)
		if !ok {
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		rules = append(rules, domain.NewDetectionRule(pkg, resolved))
	}
	return rules
}

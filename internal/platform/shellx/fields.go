// Package shellx splits shell command lines into words using a real shell
// parser, so quoting, pipes and redirections are handled the way a shell
// would handle them.
package shellx

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Fields returns the argument words of every simple command in cmd, in
// source order, with quoting removed. Redirections and assignments are not
// arguments and are dropped. Words that are not plain literals (parameter
// expansions, command substitutions) are returned as written.
//
// If cmd does not parse as a shell program, Fields falls back to splitting
// on whitespace.
func Fields(cmd string) []string {
	words, err := parseWords(cmd)
	if err != nil {
		return strings.Fields(cmd)
	}
	return words
}

// Valid reports whether cmd parses as a shell program.
func Valid(cmd string) bool {
	_, err := syntax.NewParser().Parse(strings.NewReader(cmd), "")
	return err == nil
}

func parseWords(cmd string) ([]string, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(cmd), "")
	if err != nil {
		return nil, err
	}

	printer := syntax.NewPrinter()
	words := []string{}
	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.CmdSubst, *syntax.ProcSubst:
			// words inside a substitution belong to another command line
			return false
		case *syntax.CallExpr:
			for _, w := range n.Args {
				words = append(words, wordText(printer, w))
			}
		}
		return true
	})
	return words, nil
}

func wordText(p *syntax.Printer, w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		if !appendLiteral(&sb, part) {
			var raw strings.Builder
			if err := p.Print(&raw, w); err != nil {
				return w.Lit()
			}
			return raw.String()
		}
	}
	return sb.String()
}

func appendLiteral(sb *strings.Builder, part syntax.WordPart) bool {
	switch p := part.(type) {
	case *syntax.Lit:
		sb.WriteString(unescape(p.Value, false))
	case *syntax.SglQuoted:
		if p.Dollar {
			return false
		}
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		if p.Dollar {
			return false
		}
		for _, inner := range p.Parts {
			lit, ok := inner.(*syntax.Lit)
			if !ok {
				return false
			}
			sb.WriteString(unescape(lit.Value, true))
		}
	default:
		return false
	}
	return true
}

// unescape drops shell backslash escapes. Inside double quotes only \$ \`
// \" \\ and escaped newlines are escapes.
func unescape(s string, quoted bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		next := s[i+1]
		if quoted && !strings.ContainsRune("$`\"\\\n", rune(next)) {
			sb.WriteByte(c)
			continue
		}
		i++
		if next == '\n' {
			continue
		}
		sb.WriteByte(next)
	}
	return sb.String()
}

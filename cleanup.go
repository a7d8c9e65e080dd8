package omml

import (
	"regexp"
	"strings"
)

var (
	spaceBeforeSub  = regexp.MustCompile(`\s+_`)
	spaceBeforeSup  = regexp.MustCompile(`\s+\^`)
	partialSpacing  = regexp.MustCompile(`(\\partial)([a-zA-Z])`)
	bareFracArg     = regexp.MustCompile(`\\frac([a-zA-Z0-9])\{`)
	doubledBraces   = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	singleCharBrace = regexp.MustCompile(`\{([a-zA-Z0-9])\}`)
)

// compound commands whose internal bracing must not be touched
var structuralCommands = []string{`\binom`, `\left`, `\right`, `\begin`}

func hasStructuralCommand(latex string) bool {
	for _, cmd := range structuralCommands {
		if strings.Contains(latex, cmd) {
			return true
		}
	}

	return false
}

// clean is the local cleanup pass applied when a sub-expression is first
// assembled. Fragments containing compound structural commands only get the
// brace-safe fixes; everything else additionally loses redundant
// single-character braces and doubled braces.
func clean(latex string) string {
	if !hasStructuralCommand(latex) {
		latex = stripSingleCharBraces(latex)
		latex = doubledBraces.ReplaceAllString(latex, "{${1}}")
	}

	latex = spaceBeforeSub.ReplaceAllString(latex, "_")
	latex = spaceBeforeSup.ReplaceAllString(latex, "^")
	latex = partialSpacing.ReplaceAllString(latex, "${1} ${2}")
	latex = bareFracArg.ReplaceAllString(latex, `\frac{${1}}{`)
	return latex
}

// stripSingleCharBraces removes braces around a single alphanumeric
// character when the group is redundant: {a}+{b} becomes a+b. Braces that
// delimit an argument stay, that is groups immediately after a backslash
// command name, after another argument group, or after _ and ^.
func stripSingleCharBraces(latex string) string {
	matches := singleCharBrace.FindAllStringSubmatchIndex(latex, -1)
	if matches == nil {
		return latex
	}

	var out strings.Builder
	last := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		if start < last {
			continue
		}

		if isArgumentGroup(latex, start) {
			continue
		}

		out.WriteString(latex[last:start])
		out.WriteString(latex[m[2]:m[3]])
		last = end
	}

	out.WriteString(latex[last:])
	return out.String()
}

// isArgumentGroup reports whether the brace opening at pos delimits a
// command or script argument rather than a redundant group.
func isArgumentGroup(latex string, pos int) bool {
	if pos == 0 {
		return false
	}

	switch latex[pos-1] {
	case '_', '^', '}', ']':
		return true
	}

	// scan back over the potential command name
	i := pos
	for i > 0 && isASCIILetter(latex[i-1]) {
		i--
	}

	return i != pos && i > 0 && latex[i-1] == '\\'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

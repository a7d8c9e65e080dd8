package omml

import (
	"regexp"
	"strings"
)

// The text-run rules run in a fixed order; later rules assume earlier ones
// already ran. Rules 3 and 4 operate on raw text, rules 6-8 operate on text
// that already went through symbol substitution.

// rule 3: a backslash command run together with a following alphanumeric
var runTogether = regexp.MustCompile(`(\\[a-zA-Z]+)([a-zA-Z0-9])`)

// rule 4: differential forms, double patterns before single ones
var (
	doubleDifferential      = regexp.MustCompile(`([a-z])ⅆ([a-z])ⅆ`)
	singleDifferential      = regexp.MustCompile(`([a-z])ⅆ`)
	doublePlainDifferential = regexp.MustCompile(`([a-z])d([a-z])d\b`)
	greekPlainDifferential  = regexp.MustCompile(`([a-z])d([αβγδεζηθικλμνξοπρστυφχψω])`)
)

// rules 6-7: insert a space between a relation/arrow/greek command and an
// immediately following letter. A lowercase follower is never matched: at
// this point it can only be the tail of a longer command name (\in inside
// \infty), lowercase letters after these commands were already separated by
// rule 3 or by the symbol table's trailing spaces.
var (
	relationSpacing = regexp.MustCompile(`(\\neq|\\in|\\rightarrow|\\leftarrow|\\implies|\\leq|\\geq)([A-Z])`)
	commandSpacing  = regexp.MustCompile(`(\\(?:neq|eq|leq|geq|in|notin|subset|subseteq|rightarrow|leftarrow|implies|Rightarrow|forall|exists|pm|mp|times|div|cdot|approx|equiv|sim|alpha|beta|gamma|delta|epsilon|theta|lambda|mu|pi|sigma|tau|phi|psi|omega|Gamma|Delta|Sigma|Omega))([A-Z])`)
	greekSpacing    = regexp.MustCompile(`(\\gamma|\\alpha|\\beta|\\delta|\\theta|\\sigma)([a-z])`)
)

// functionPatterns is built once from functionNames: word-boundary matches
// followed by whitespace, an opening parenthesis or end of text.
var functionPatterns = func() []struct {
	re   *regexp.Regexp
	repl string
} {
	patterns := make([]struct {
		re   *regexp.Regexp
		repl string
	}, 0, len(functionNames))

	for _, fn := range functionNames {
		patterns = append(patterns, struct {
			re   *regexp.Regexp
			repl string
		}{
			re:   regexp.MustCompile(`\b` + fn.Text + `(\s|\(|$)`),
			repl: fn.replacement() + "${1}",
		})
	}

	return patterns
}()

// convertRun turns a leaf text run into LaTeX.
func convertRun(node *Node) string {
	if scr, _ := node.Parameter("scr"); scr == "double-struck" {
		if latex, ok := blackboard[node.Data]; ok {
			return latex
		}

		return Format("mathbb", node.Data)
	}

	text := strings.ReplaceAll(node.Data, "−", "-")

	text = runTogether.ReplaceAllString(text, "${1} ${2}")

	text = doubleDifferential.ReplaceAllString(text, `${1} \, d${2} \, d`)
	text = singleDifferential.ReplaceAllString(text, `${1} \, d`)
	text = doublePlainDifferential.ReplaceAllString(text, `${1} \, d${2} \, d`)
	text = greekPlainDifferential.ReplaceAllString(text, `${1} \, d${2}`)

	text = substituteSymbols(text)

	text = relationSpacing.ReplaceAllString(text, "${1} ${2}")
	text = commandSpacing.ReplaceAllString(text, "${1} ${2}")
	text = greekSpacing.ReplaceAllString(text, "${1} ${2}")

	return convertFunctionNames(text)
}

// convertFunctionNames replaces known function words with their LaTeX
// macros. A run that already starts with a backslash is left alone.
func convertFunctionNames(text string) string {
	if strings.HasPrefix(text, `\`) {
		return text
	}

	for _, p := range functionPatterns {
		text = p.re.ReplaceAllString(text, p.repl)
	}

	return text
}

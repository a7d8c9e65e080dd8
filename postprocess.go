package omml

import (
	"regexp"
	"strings"
)

var (
	bareBinomArgs  = regexp.MustCompile(`\\binom([a-zA-Z])([a-zA-Z])`)
	expRepeat      = regexp.MustCompile(`e\^\{[^}]+\}[a-z]+`)
	parenGroup     = regexp.MustCompile(`\\left\(([^)]+)\\right\)`)
	partialBare    = regexp.MustCompile(`\\partial([a-zA-Z])`)
	upsilonBare    = regexp.MustCompile(`\\upsilon([a-zA-Z])`)
	gammaBare      = regexp.MustCompile(`\\gamma([a-zA-Z])`)
	rightarrowWord = regexp.MustCompile(`\\rightarrow([A-Z][a-z])`)
	limRepeat      = regexp.MustCompile(`(\\lim[^}]*})\s*\\lim\s`)
	quantifierBare = regexp.MustCompile(`(\\exists|\\forall)([a-zA-Z])`)
	wrappedBinom   = regexp.MustCompile(`\\left\(\\binom\{([^}]+)\}\{([^}]+)\}\\right\)`)
	cdotBare       = regexp.MustCompile(`\\cdot([A-Za-z])`)
	relationDigit  = regexp.MustCompile(`(\\approx|\\equiv|\\sim)(\d)`)
)

// postProcess is the global normalizer, applied exactly once to a fully
// assembled top-level expression. The fixes are ordered and not commutative;
// each one repairs an artifact the bottom-up assembly cannot see because it
// spans fragments from different subtrees. Every fix is a fixed point of
// itself: running the pass on its own output changes nothing.
func postProcess(latex string) string {
	latex = bareBinomArgs.ReplaceAllString(latex, `\binom{${1}}{${2}}`)
	latex = dedupeExpRepeat(latex)
	latex = dedupeParenRepeat(latex)
	latex = partialBare.ReplaceAllString(latex, `\partial ${1}`)
	latex = upsilonBare.ReplaceAllString(latex, `\upsilon ${1}`)
	latex = gammaBare.ReplaceAllString(latex, `\gamma ${1}`)
	latex = rightarrowWord.ReplaceAllString(latex, `\rightarrow ${1}`)
	latex = strings.ReplaceAll(latex, "⋅", `\cdot`)
	latex = limRepeat.ReplaceAllString(latex, "${1} ")
	latex = quantifierBare.ReplaceAllString(latex, "${1} ${2}")
	latex = wrappedBinom.ReplaceAllString(latex, `\binom{${1}}{${2}}`)
	latex = cdotBare.ReplaceAllString(latex, `\cdot ${1}`)
	latex = relationDigit.ReplaceAllString(latex, "${1} ${2}")
	return latex
}

// dedupeExpRepeat removes the second copy of an exponential-times-letters
// sub-expression that appears twice in sequence, keeping whatever sits
// between the copies: "X junk X" becomes "X junk".
func dedupeExpRepeat(latex string) string {
	var out strings.Builder
	rest := latex

	for {
		loc := expRepeat.FindStringIndex(rest)
		if loc == nil {
			out.WriteString(rest)
			return out.String()
		}

		match := rest[loc[0]:loc[1]]

		dup := strings.Index(rest[loc[1]:], match)
		if dup < 0 {
			out.WriteString(rest[:loc[1]])
			rest = rest[loc[1]:]
			continue
		}

		out.WriteString(rest[:loc[1]])
		out.WriteString(rest[loc[1] : loc[1]+dup])
		rest = rest[loc[1]+dup+len(match):]
	}
}

// dedupeParenRepeat removes a duplicated prefix that reappears right after
// its parenthesized expression: "ab\left(x\right)ab" becomes
// "ab\left(x\right)". The longest prefix that is mirrored after the closing
// delimiter wins.
func dedupeParenRepeat(latex string) string {
	var out strings.Builder
	rest := latex

	for {
		loc := parenGroup.FindStringIndex(rest)
		if loc == nil {
			out.WriteString(rest)
			return out.String()
		}

		start := loc[0]
		run := start
		for run > 0 && isASCIILetter(rest[run-1]) {
			run--
		}

		removed := false
		for k := start - run; k > 0; k-- {
			prefix := rest[start-k : start]
			if strings.HasPrefix(rest[loc[1]:], prefix) {
				out.WriteString(rest[:loc[1]])
				rest = rest[loc[1]+k:]
				removed = true
				break
			}
		}

		if !removed {
			out.WriteString(rest[:loc[1]])
			rest = rest[loc[1]:]
		}
	}
}

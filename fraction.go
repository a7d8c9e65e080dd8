package omml

import "strings"

// convertFraction emits \frac or \binom. The common small-fraction case
// (1/2, 2/3, ...) always wins over binomial detection. A single-letter pair
// reads as a binomial when it is literally n over k, or when the fraction
// sits directly inside a delimiter group, the usual way Word authors write
// coefficients. Either way the arguments are always braced.
func convertFraction(node *Node) string {
	num := strings.TrimSpace(convert(node.Child(NumeratorKind)))
	den := strings.TrimSpace(convert(node.Child(DenominatorKind)))

	if (num == "1" || num == "2" || num == "3") && (den == "2" || den == "3" || den == "4") {
		return clean(Format("frac", num, den))
	}

	if isSingleLetter(num) && isSingleLetter(den) {
		if (num == "n" && den == "k") || insideDelimiter(node) {
			return clean(Format("binom", num, den))
		}
	}

	return clean(Format("frac", num, den))
}

func isSingleLetter(s string) bool {
	return len(s) == 1 && isASCIILetter(s[0])
}

// insideDelimiter reports whether the node's enclosing argument container
// belongs to a delimiter group.
func insideDelimiter(node *Node) bool {
	parent := node.Parent
	if parent != nil && parent.Kind == ElementKind {
		parent = parent.Parent
	}

	return parent != nil && parent.Kind == DelimiterKind
}

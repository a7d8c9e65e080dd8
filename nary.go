package omml

import "strings"

// convertNary handles sum, product, integral and friends. The operator
// character defaults to the integral sign when the markup does not name
// one. Missing limits and operand are omitted outright, no empty braces.
func convertNary(node *Node) string {
	op := "∫"
	if chr, ok := node.Parameter("chr"); ok && chr != "" {
		op = chr
	}

	out := substituteSymbols(op)

	if sub := node.Child(SubKind); sub != nil {
		out += "_{" + convert(sub) + "}"
	}

	if sup := node.Child(SupKind); sup != nil {
		out += "^{" + convert(sup) + "}"
	}

	if expr := node.Child(ElementKind); expr != nil {
		// the operator's own trailing space must not double the separator
		out = strings.TrimRight(out, " ") + " " + convert(expr)
	}

	return out
}

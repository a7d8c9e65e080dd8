package omml

// convertAccent emits \hat{base}, \tilde{base} and so on, chosen by the
// accent codepoint from the markup. Unrecognized codepoints default to hat.
func convertAccent(node *Node) string {
	base := convert(node.Child(ElementKind))

	chr, ok := node.Parameter("chr")
	if !ok {
		return clean(Format("hat", base))
	}

	name, ok := accents[chr]
	if !ok {
		name = "hat"
	}

	return clean(`\` + name + "{" + base + "}")
}

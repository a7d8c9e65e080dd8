package omml

import "strings"

// convertSuperscript combines a base with its superscript. Malformed nested
// integral superscripts can arrive with the bracketed base duplicated in
// place; when the base holds more than two integral commands the extra tail
// is cut and the bracket closed again. This is a repair for one observed
// defect, not a general transformation.
func convertSuperscript(node *Node) string {
	base := convert(node.Child(ElementKind))
	sup := convert(node.Child(SupKind))

	if strings.HasPrefix(base, `\left[`) && strings.Count(base, `\int`) > 2 {
		parts := strings.SplitN(base, `\int`, 4)
		if len(parts) == 4 {
			base = strings.Join(parts[:3], `\int`) + `\right]`
		}
	}

	return clean(base + "^{" + sup + "}")
}

func convertSubscript(node *Node) string {
	base := convert(node.Child(ElementKind))
	sub := convert(node.Child(SubKind))

	return clean(base + "_{" + sub + "}")
}

func convertSubSuperscript(node *Node) string {
	base := convert(node.Child(ElementKind))
	sub := convert(node.Child(SubKind))
	sup := convert(node.Child(SupKind))

	return clean(base + "_{" + sub + "}^{" + sup + "}")
}

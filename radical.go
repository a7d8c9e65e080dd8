package omml

import "strings"

func convertRadical(node *Node) string {
	expr := convert(node.Child(ElementKind))

	if hide, _ := node.Parameter("degHide"); hide == "1" {
		return Format("sqrt", expr)
	}

	if deg := node.Child(DegreeKind); deg != nil {
		if text := convert(deg); strings.TrimSpace(text) != "" {
			return `\sqrt[` + text + "]{" + expr + "}"
		}
	}

	return Format("sqrt", expr)
}

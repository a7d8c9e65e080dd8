package omml

import "unicode/utf8"

// PlainText collects the literal run text of a subtree, without any
// conversion. Used for reporting which source expression a conversion came
// from.
func PlainText(node *Node) (out string) {
	if node == nil {
		return ""
	}

	if node.Kind == RunKind {
		return node.Data
	}

	for _, child := range node.Children {
		out += PlainText(child)
	}

	return
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

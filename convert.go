package omml

// Convert turns one OMML expression tree into a LaTeX fragment. It is a
// pure function of the tree and the static tables: independent trees may be
// converted concurrently. Conversion never fails; unrecognized structure
// degrades to the concatenation of its converted children.
//
// When node is a complete expression (MathKind) the local cleanup pass and
// the global post-processing pass run once over the assembled result, fixing
// artifacts that only appear after fragments from different subtrees meet.
func Convert(node *Node) string {
	if node == nil {
		return ""
	}

	if node.Kind == MathKind {
		latex := convertChildren(node)
		latex = clean(latex)
		return postProcess(latex)
	}

	return convert(node)
}

// convert dispatches a node to its structural converter. The default arm is
// the degraded path: convert every child in order and join the fragments.
func convert(node *Node) string {
	if node == nil {
		return ""
	}

	switch node.Kind {
	case MathKind:
		return Convert(node)
	case RunKind:
		return convertRun(node)
	case FractionKind:
		return convertFraction(node)
	case SuperscriptKind:
		return convertSuperscript(node)
	case SubscriptKind:
		return convertSubscript(node)
	case SubSuperscriptKind:
		return convertSubSuperscript(node)
	case NaryKind:
		return convertNary(node)
	case RadicalKind:
		return convertRadical(node)
	case DelimiterKind:
		return convertDelimiter(node)
	case MatrixKind:
		return convertMatrix(node, "matrix")
	case EqArrayKind:
		return convertEqArray(node)
	case FunctionKind:
		return convertFunction(node)
	case LimitLowerKind, LimitUpperKind:
		return convertLimit(node)
	case AccentKind:
		return convertAccent(node)
	default:
		return convertChildren(node)
	}
}

// convertChildren joins the converted children with no separator.
func convertChildren(node *Node) string {
	var out string
	for _, child := range node.Children {
		out += convert(child)
	}

	return out
}

package omml

import "strings"

// convertFunction handles function application. Limit-style functions never
// parenthesize their argument; a limit-bearing argument is not repeated.
func convertFunction(node *Node) string {
	fname := node.Child(FunctionNameKind)
	arg := node.Child(ElementKind)

	if fname != nil && fname.Find(LimitLowerKind) != nil {
		name := convert(fname)
		expr := convert(arg)

		// the argument may already carry the limit itself
		if expr != "" && !strings.Contains(expr, `\lim`) {
			return name + " " + expr
		}

		return name
	}

	name := convert(fname)
	expr := convert(arg)

	if name != "" && !strings.HasPrefix(name, `\`) {
		name = convertFunctionNames(name)
	}

	if name != "" && strings.Contains(strings.ToLower(name), "lim") {
		if expr != "" {
			return name + " " + expr
		}

		return name
	}

	switch {
	case name != "" && expr != "":
		return name + "(" + expr + ")"
	case name != "":
		return name
	default:
		return expr
	}
}

// convertLimit renders limLow and limUpp as base_{limit}.
func convertLimit(node *Node) string {
	base := convert(node.Child(ElementKind))
	limit := convert(node.Child(LimitKind))

	if base == "lim" {
		base = `\lim`
	} else if !strings.HasPrefix(base, `\`) {
		base = convertFunctionNames(base)
	}

	return base + "_{" + limit + "}"
}

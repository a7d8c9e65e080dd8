package omml

import "strings"

// matrixEnvironments selects the matrix environment by the opening
// delimiter. Anything else renders as a plain matrix without delimiters.
var matrixEnvironments = map[string]string{
	"(": "pmatrix",
	"[": "bmatrix",
	"{": "Bmatrix",
	"|": "vmatrix",
}

// convertDelimiter wraps its content in scaled delimiters, unless the
// content turns out to be a matrix or an equation array, which carry their
// own environments.
func convertDelimiter(node *Node) string {
	open, close := "(", ")"
	if v, ok := node.Parameter("begChr"); ok {
		open = v
	}
	if v, ok := node.Parameter("endChr"); ok {
		close = v
	}

	var elements []*Node
	for _, child := range node.Children {
		if child.Kind == ElementKind {
			elements = append(elements, child)
		}
	}

	if len(elements) == 0 {
		return ""
	}

	first := elements[0]
	for _, grandchild := range first.Children {
		switch grandchild.Kind {
		case MatrixKind:
			env := matrixEnvironments[open]
			if env == "" {
				env = "pmatrix"
			}

			return convertMatrix(grandchild, env)
		case EqArrayKind:
			content := convertEqArray(grandchild)
			if open == "{" && close == "" {
				return `\begin{cases} ` + content + ` \end{cases}`
			}

			return content
		}
	}

	inner := convert(first)

	switch {
	case open == "(" && close == ")":
		return `\left(` + inner + `\right)`
	case open == "[" && close == "]":
		return `\left[` + inner + `\right]`
	case open == "{" && close == "}":
		return `\left\{` + inner + `\right\}`
	case open == "|" && close == "|":
		return `\left|` + inner + `\right|`
	default:
		return open + inner + close
	}
}

// convertMatrix builds the grid: cells joined by &, rows by \\. Empty cells
// and empty rows are dropped.
func convertMatrix(node *Node, env string) string {
	var rows []string

	for _, row := range node.Children {
		if row.Kind != MatrixRowKind {
			continue
		}

		var cells []string
		for _, cell := range row.Children {
			if cell.Kind != ElementKind {
				continue
			}

			if content := convert(cell); content != "" {
				cells = append(cells, content)
			}
		}

		if len(cells) > 0 {
			rows = append(rows, strings.Join(cells, " & "))
		}
	}

	if len(rows) == 0 {
		return ""
	}

	return `\begin{` + env + `} ` + strings.Join(rows, ` \\ `) + ` \end{` + env + `}`
}

// convertEqArray formats equation-array rows for a cases environment. Each
// row splits on its first comma into a value and a condition; parity
// conditions read as text, anything else stays math.
func convertEqArray(node *Node) string {
	var rows []string

	for _, child := range node.Children {
		if child.Kind != ElementKind {
			continue
		}

		part := strings.TrimSpace(convert(child))
		if part == "" {
			continue
		}

		value, condition, found := strings.Cut(part, ",")
		if !found {
			rows = append(rows, part)
			continue
		}

		value = strings.TrimSpace(value)
		condition = strings.TrimSpace(condition)
		condition = strings.TrimSpace(strings.TrimPrefix(condition, "&"))

		switch {
		case condition == "":
			rows = append(rows, value)
		case strings.Contains(condition, "odd") || strings.Contains(condition, "even"):
			rows = append(rows, value+`, & \text{`+condition+`}`)
		default:
			rows = append(rows, value+", & "+condition)
		}
	}

	return strings.Join(rows, ` \\ `)
}

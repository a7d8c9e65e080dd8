package omml

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// inlineLimit is the length heuristic separating inline from display math:
// short conversions read fine in running text, long ones get their own line.
const inlineLimit = 30

// Wrap embeds a converted fragment in math delimiters chosen by length.
func Wrap(latex string) string {
	if utf8.RuneCountInString(latex) < inlineLimit {
		return "$" + latex + "$"
	}

	return "$$" + latex + "$$"
}

// WriteDocument renders a standalone LaTeX article with one numbered
// equation per conversion. The preamble declares the math packages the
// converter's output depends on.
func WriteDocument(w io.Writer, equations []Equation) error {
	if _, err := fmt.Fprint(w, "\\documentclass{article}\n\\usepackage{amsmath}\n\\usepackage{amssymb}\n\\usepackage{amsfonts}\n\\begin{document}\n\n"); err != nil {
		return err
	}

	for _, eq := range equations {
		if _, err := fmt.Fprintf(w, "%% Equation %d\n\\begin{equation}\n  %s\n\\end{equation}\n\n", eq.Index, eq.LaTeX); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\\end{document}\n")
	return err
}

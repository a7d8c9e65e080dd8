package omml

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// documentPath is where the OPC package keeps the main document part.
const documentPath = "word/document.xml"

// Equation is one converted expression extracted from a document: its
// position, the plain source text of its runs, and the LaTeX conversion.
type Equation struct {
	Index int
	Text  string
	LaTeX string
}

// ExtractEquations opens a .docx archive, decodes every m:oMath expression
// in the main document part and converts each one.
func ExtractEquations(path string) ([]Equation, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != documentPath {
			continue
		}

		part, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %s: %w", documentPath, path, err)
		}
		defer part.Close()

		return ReadEquations(part)
	}

	return nil, fmt.Errorf("%s: no %s part", path, documentPath)
}

// ReadEquations decodes and converts every m:oMath expression in a
// wordprocessing XML document.
func ReadEquations(r io.Reader) ([]Equation, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read document xml: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("read document xml: no root element")
	}

	var equations []Equation
	for i, el := range mathElements(root) {
		node := DecodeElement(el)
		equations = append(equations, Equation{
			Index: i + 1,
			Text:  PlainText(node),
			LaTeX: Convert(node),
		})
	}

	return equations, nil
}

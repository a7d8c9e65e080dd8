package omml

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/unicode/norm"
)

// tagKinds maps OMML local tag names to node kinds. Tags outside the table
// decode to UnknownKind and convert through the default child-concatenation
// arm.
var tagKinds = map[string]Kind{
	"oMath":     MathKind,
	"oMathPara": MathParaKind,
	"r":         RunKind,
	"e":         ElementKind,
	"f":         FractionKind,
	"num":       NumeratorKind,
	"den":       DenominatorKind,
	"sSup":      SuperscriptKind,
	"sSub":      SubscriptKind,
	"sSubSup":   SubSuperscriptKind,
	"sup":       SupKind,
	"sub":       SubKind,
	"nary":      NaryKind,
	"rad":       RadicalKind,
	"deg":       DegreeKind,
	"d":         DelimiterKind,
	"m":         MatrixKind,
	"mr":        MatrixRowKind,
	"eqArr":     EqArrayKind,
	"func":      FunctionKind,
	"fName":     FunctionNameKind,
	"limLow":    LimitLowerKind,
	"limUpp":    LimitUpperKind,
	"lim":       LimitKind,
	"acc":       AccentKind,
}

// properties are the markup attributes the converter reads. They live in
// *Pr property elements as <m:chr m:val="..."/> and are absorbed into
// Node.Parameters so the tree carries values, not markup shape.
var properties = map[string]bool{
	"chr":     true,
	"begChr":  true,
	"endChr":  true,
	"degHide": true,
	"scr":     true,
}

// Decode reads one OMML fragment and returns its expression tree. The
// reader must contain a single root element, usually m:oMath.
func Decode(r io.Reader) (*Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read omml: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("read omml: document has no root element")
	}

	return DecodeElement(root), nil
}

// DecodeElement turns an OMML element subtree into a Node tree. Decoding is
// total: unknown tags become UnknownKind nodes, missing properties are
// simply absent.
func DecodeElement(el *etree.Element) *Node {
	return decodeElement(el, nil)
}

func decodeElement(el *etree.Element, parent *Node) *Node {
	node := &Node{Kind: tagKinds[el.Tag], Parent: parent}

	if node.Kind == RunKind {
		node.Data = norm.NFC.String(collectText(el))
		absorbProperties(el, node)
		return node
	}

	for _, child := range el.ChildElements() {
		if strings.HasSuffix(child.Tag, "Pr") {
			absorbProperties(child, node)
			continue
		}

		node.Children = append(node.Children, decodeElement(child, node))
	}

	return node
}

// absorbProperties walks a property subtree and copies the recognized
// m:val attributes into the node's parameters.
func absorbProperties(el *etree.Element, node *Node) {
	for _, child := range el.ChildElements() {
		if properties[child.Tag] {
			// a property element without m:val keeps the converter default
			if val, ok := attributeValue(child); ok {
				if node.Parameters == nil {
					node.Parameters = map[string]string{}
				}

				node.Parameters[child.Tag] = val
			}

			continue
		}

		absorbProperties(child, node)
	}
}

// attributeValue returns the m:val attribute regardless of its namespace
// prefix.
func attributeValue(el *etree.Element) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Key == "val" {
			return attr.Value, true
		}
	}

	return "", false
}

// collectText joins the text of every m:t descendant, in document order.
func collectText(el *etree.Element) string {
	var out strings.Builder

	for _, child := range el.ChildElements() {
		if child.Tag == "t" {
			out.WriteString(child.Text())
			continue
		}

		out.WriteString(collectText(child))
	}

	return out.String()
}

// mathElements collects every m:oMath element in document order.
func mathElements(el *etree.Element) []*etree.Element {
	var out []*etree.Element

	if el.Tag == "oMath" {
		return []*etree.Element{el}
	}

	for _, child := range el.ChildElements() {
		out = append(out, mathElements(child)...)
	}

	return out
}

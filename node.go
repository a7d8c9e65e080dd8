package omml

// Kind identifies the OMML structure a Node represents. The set is closed:
// tags the decoder does not recognize become UnknownKind and are converted
// by concatenating their children.
type Kind int

const (
	UnknownKind Kind = iota
	MathKind           // oMath, one complete expression
	MathParaKind       // oMathPara, a paragraph of expressions
	RunKind            // r, a leaf text run
	ElementKind        // e, a generic argument container
	FractionKind       // f
	NumeratorKind      // num
	DenominatorKind    // den
	SuperscriptKind    // sSup
	SubscriptKind      // sSub
	SubSuperscriptKind // sSubSup
	SupKind            // sup, superscript argument
	SubKind            // sub, subscript argument
	NaryKind           // nary
	RadicalKind        // rad
	DegreeKind         // deg
	DelimiterKind      // d
	MatrixKind         // m
	MatrixRowKind      // mr
	EqArrayKind        // eqArr
	FunctionKind       // func
	FunctionNameKind   // fName
	LimitLowerKind     // limLow
	LimitUpperKind     // limUpp
	LimitKind          // lim
	AccentKind         // acc
)

// Node is one element of an OMML expression tree. Structural nodes carry
// Children; run leaves carry Data. Properties read from the markup (operator
// characters, delimiter characters, the hidden-degree flag, script style)
// are stored in Parameters. Parent is set by the decoder and never changes
// during conversion; the converter treats the whole tree as read-only.
type Node struct {
	Kind       Kind
	Parameters map[string]string
	Data       string
	Children   []*Node
	Parent     *Node
}

// Parameter returns the named parameter and whether it is present. Presence
// matters: an empty delimiter character is different from an absent one.
func (n *Node) Parameter(name string) (string, bool) {
	if n.Parameters == nil {
		return "", false
	}

	v, ok := n.Parameters[name]
	return v, ok
}

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}

	return nil
}

// Find returns the first node of the given kind in the subtree rooted at n,
// searching depth-first, or nil.
func (n *Node) Find(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}

		if found := child.Find(kind); found != nil {
			return found
		}
	}

	return nil
}

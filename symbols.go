package omml

import "strings"

// SymbolEntry maps a source Unicode sequence to LaTeX command text. Spaced
// entries render with a trailing space so that a following letter does not
// merge into the command name.
type SymbolEntry struct {
	Text    string // source text as it appears in a run
	Command string // replacement LaTeX text
	Spaced  bool   // append a trailing space after Command
}

// symbols is the static substitution table shared by all conversions. It is
// never mutated after initialization. Commands that end with a letter carry
// the Spaced flag; the few that are always followed by braces or are spaced
// already do not.
var symbols = []SymbolEntry{
	// comparison and relations
	{Text: "≠", Command: `\neq`, Spaced: true},
	{Text: "≤", Command: `\leq`, Spaced: true},
	{Text: "≥", Command: `\geq`, Spaced: true},
	{Text: "≈", Command: `\approx`, Spaced: true},
	{Text: "≡", Command: `\equiv`, Spaced: true},
	{Text: "∼", Command: `\sim`, Spaced: true},

	// set operations
	{Text: "∈", Command: `\in`, Spaced: true},
	{Text: "∉", Command: `\notin`, Spaced: true},
	{Text: "⊂", Command: `\subset`, Spaced: true},
	{Text: "⊆", Command: `\subseteq`, Spaced: true},
	{Text: "∪", Command: `\cup`, Spaced: true},
	{Text: "∩", Command: `\cap`, Spaced: true},
	{Text: "∅", Command: `\emptyset`, Spaced: true},

	// logic
	{Text: "∧", Command: `\land`, Spaced: true},
	{Text: "∨", Command: `\lor`, Spaced: true},
	{Text: "¬", Command: `\neg`, Spaced: true},
	{Text: "∀", Command: `\forall`, Spaced: true},
	{Text: "∃", Command: `\exists`, Spaced: true},

	// arrows
	{Text: "→", Command: `\rightarrow`, Spaced: true},
	{Text: "←", Command: `\leftarrow`, Spaced: true},
	{Text: "↔", Command: `\leftrightarrow`, Spaced: true},
	{Text: "⇒", Command: `\Rightarrow`, Spaced: true},
	{Text: "⟹", Command: `\implies`, Spaced: true},
	{Text: "⟸", Command: `\impliedby`, Spaced: true},

	// greek letters
	{Text: "α", Command: `\alpha`, Spaced: true},
	{Text: "β", Command: `\beta`, Spaced: true},
	{Text: "γ", Command: `\gamma`, Spaced: true},
	{Text: "δ", Command: `\delta`, Spaced: true},
	{Text: "ε", Command: `\epsilon`, Spaced: true},
	{Text: "θ", Command: `\theta`, Spaced: true},
	{Text: "λ", Command: `\lambda`, Spaced: true},
	{Text: "μ", Command: `\mu`, Spaced: true},
	{Text: "π", Command: `\pi`, Spaced: true},
	{Text: "σ", Command: `\sigma`, Spaced: true},
	{Text: "τ", Command: `\tau`, Spaced: true},
	{Text: "φ", Command: `\phi`, Spaced: true},
	{Text: "ψ", Command: `\psi`, Spaced: true},
	{Text: "ω", Command: `\omega`, Spaced: true},
	{Text: "υ", Command: `\upsilon`, Spaced: true},
	{Text: "Γ", Command: `\Gamma`, Spaced: true},
	{Text: "Δ", Command: `\Delta`, Spaced: true},
	{Text: "Σ", Command: `\Sigma`, Spaced: true},
	{Text: "Ω", Command: `\Omega`, Spaced: true},
	{Text: "ϒ", Command: `\Upsilon`, Spaced: true},

	// other symbols ending with a letter
	{Text: "∂", Command: `\partial`, Spaced: true},
	{Text: "∇", Command: `\nabla`, Spaced: true},
	{Text: "∞", Command: `\infty`, Spaced: true},
	{Text: "∠", Command: `\angle`, Spaced: true},
	{Text: "⊥", Command: `\perp`, Spaced: true},
	{Text: "∥", Command: `\parallel`, Spaced: true},
	{Text: "…", Command: `\ldots`, Spaced: true},
	{Text: "∴", Command: `\therefore`, Spaced: true},
	{Text: "∵", Command: `\because`, Spaced: true},

	// binary operators
	{Text: "±", Command: `\pm`, Spaced: true},
	{Text: "∓", Command: `\mp`, Spaced: true},
	{Text: "×", Command: `\times`, Spaced: true},
	{Text: "÷", Command: `\div`, Spaced: true},
	{Text: "·", Command: `\cdot`, Spaced: true},

	// big operators
	{Text: "∑", Command: `\sum`, Spaced: true},
	{Text: "∏", Command: `\prod`, Spaced: true},
	{Text: "∫", Command: `\int`, Spaced: true},

	// special cases: always followed by braces or spaced already
	{Text: "√", Command: `\sqrt`},
	{Text: "°", Command: `^\circ`},
	{Text: "ⅆ", Command: `\, d`},

	// blackboard bold number sets
	{Text: "ℝ", Command: `\mathbb{R}`, Spaced: true},
	{Text: "ℂ", Command: `\mathbb{C}`, Spaced: true},
	{Text: "ℕ", Command: `\mathbb{N}`, Spaced: true},
	{Text: "ℤ", Command: `\mathbb{Z}`, Spaced: true},
	{Text: "ℚ", Command: `\mathbb{Q}`, Spaced: true},
	{Text: "ℍ", Command: `\mathbb{H}`, Spaced: true},
	{Text: "𝔽", Command: `\mathbb{F}`, Spaced: true},
	{Text: "𝕂", Command: `\mathbb{K}`, Spaced: true},
	{Text: "𝔸", Command: `\mathbb{A}`, Spaced: true},
	{Text: "𝔹", Command: `\mathbb{B}`, Spaced: true},
	{Text: "𝕊", Command: `\mathbb{S}`, Spaced: true},
	{Text: "𝕋", Command: `\mathbb{T}`, Spaced: true},
	{Text: "𝕌", Command: `\mathbb{U}`, Spaced: true},
	{Text: "𝕍", Command: `\mathbb{V}`, Spaced: true},
	{Text: "𝕎", Command: `\mathbb{W}`, Spaced: true},
	{Text: "𝕏", Command: `\mathbb{X}`, Spaced: true},
	{Text: "𝕐", Command: `\mathbb{Y}`, Spaced: true},
	{Text: "ℙ", Command: `\mathbb{P}`, Spaced: true},
}

// replacement renders the entry as it appears in output.
func (e SymbolEntry) replacement() string {
	if e.Spaced {
		return e.Command + " "
	}

	return e.Command
}

// substituteSymbols scans text left to right and replaces every known symbol
// with its LaTeX command, preferring the longest match at each position.
// Characters outside the table pass through unchanged.
func substituteSymbols(text string) string {
	var out strings.Builder

	for len(text) > 0 {
		matched := false
		size := 0

		var best SymbolEntry
		for _, entry := range symbols {
			if len(entry.Text) > size && strings.HasPrefix(text, entry.Text) {
				best, size, matched = entry, len(entry.Text), true
			}
		}

		if matched {
			out.WriteString(best.replacement())
			text = text[size:]
			continue
		}

		_, width := decodeRune(text)
		out.WriteString(text[:width])
		text = text[width:]
	}

	return out.String()
}

// functionNames maps recognized function words to their LaTeX macros, each
// rendered with a trailing space. Order is fixed so longer names win over
// their prefixes (arcsin before sin, cosh before cos).
var functionNames = []SymbolEntry{
	{Text: "arcsin", Command: `\arcsin`, Spaced: true},
	{Text: "arccos", Command: `\arccos`, Spaced: true},
	{Text: "sinh", Command: `\sinh`, Spaced: true},
	{Text: "cosh", Command: `\cosh`, Spaced: true},
	{Text: "tanh", Command: `\tanh`, Spaced: true},
	{Text: "sin", Command: `\sin`, Spaced: true},
	{Text: "cos", Command: `\cos`, Spaced: true},
	{Text: "tan", Command: `\tan`, Spaced: true},
	{Text: "sec", Command: `\sec`, Spaced: true},
	{Text: "csc", Command: `\csc`, Spaced: true},
	{Text: "cot", Command: `\cot`, Spaced: true},
	{Text: "log", Command: `\log`, Spaced: true},
	{Text: "ln", Command: `\ln`, Spaced: true},
	{Text: "exp", Command: `\exp`, Spaced: true},
	{Text: "lim", Command: `\lim`, Spaced: true},
	{Text: "sup", Command: `\sup`, Spaced: true},
	{Text: "inf", Command: `\inf`, Spaced: true},
	{Text: "min", Command: `\min`, Spaced: true},
	{Text: "max", Command: `\max`, Spaced: true},
	{Text: "det", Command: `\det`, Spaced: true},
	{Text: "dim", Command: `\dim`, Spaced: true},
}

// accents maps the combining accent codepoint from m:accPr/m:chr to a LaTeX
// accent command name. Unrecognized codepoints fall back to "hat".
var accents = map[string]string{
	"̂": "hat",
	"̃": "tilde",
	"̄": "bar",
	"̇": "dot",
	"̈": "ddot",
	"⃗": "vec",
}

// blackboard maps double-struck run text to \mathbb form for the common
// number sets. Other letters go through the generic mathbb command.
var blackboard = map[string]string{
	"R": `\mathbb{R} `,
	"C": `\mathbb{C} `,
	"N": `\mathbb{N} `,
	"Z": `\mathbb{Z} `,
	"Q": `\mathbb{Q} `,
	"H": `\mathbb{H} `,
	"F": `\mathbb{F} `,
	"P": `\mathbb{P} `,
}

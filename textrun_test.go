package omml

import "testing"

func TestConvertRun(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:   "unicode minus becomes ascii",
			input:  "a−b",
			output: "a-b",
		},
		{
			name:   "symbol substitution",
			input:  "α+β",
			output: `\alpha +\beta `,
		},
		{
			name:   "unknown characters pass through",
			input:  "x@y",
			output: "x@y",
		},
		{
			name:   "relation followed by letter keeps one space",
			input:  "x≠y",
			output: `x\neq y`,
		},
		{
			name:   "present command run together with letter",
			input:  `\neqx`,
			output: `\neq x`,
		},
		{
			name:   "differential character",
			input:  "xⅆ",
			output: `x \, d`,
		},
		{
			name:   "double differential character",
			input:  "rⅆrⅆ",
			output: `r \, dr \, d`,
		},
		{
			name:   "plain double differential",
			input:  "xdyd",
			output: `x \, dy \, d`,
		},
		{
			name:   "plain differential before greek letter",
			input:  "xdφ",
			output: `x \, d\phi `,
		},
		{
			name:   "function name",
			input:  "sin x",
			output: `\sin  x`,
		},
		{
			name:   "function name before parenthesis",
			input:  "cos(x)",
			output: `\cos (x)`,
		},
		{
			name:   "function name at end",
			input:  "det",
			output: `\det `,
		},
		{
			name:   "function name inside word is left alone",
			input:  "absinthe",
			output: "absinthe",
		},
		{
			name:   "longer function name wins",
			input:  "arcsin x",
			output: `\arcsin  x`,
		},
		{
			name:   "degree sign",
			input:  "90°",
			output: `90^\circ`,
		},
		{
			name:   "blackboard symbol character",
			input:  "x∈ℝ",
			output: `x\in \mathbb{R} `,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := convertRun(&Node{Kind: RunKind, Data: tc.input})
			if got != tc.output {
				t.Errorf("convertRun does not match: want %q, got %q", tc.output, got)
			}
		})
	}
}

func TestConvertRunBlackboard(t *testing.T) {
	tt := []struct {
		name   string
		text   string
		output string
	}{
		{name: "known set", text: "R", output: `\mathbb{R} `},
		{name: "known set Z", text: "Z", output: `\mathbb{Z} `},
		{name: "generic letter", text: "G", output: `\mathbb{G} `},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			node := &Node{Kind: RunKind, Data: tc.text, Parameters: map[string]string{"scr": "double-struck"}}
			if got := convertRun(node); got != tc.output {
				t.Errorf("convertRun does not match: want %q, got %q", tc.output, got)
			}
		})
	}
}

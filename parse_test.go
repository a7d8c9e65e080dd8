package omml_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	omml "github.com/doctex/go-omml"
)

const mathNS = `xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"`

func TestDecode(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output *omml.Node
	}{
		{
			name: "fraction",
			input: `<m:oMath ` + mathNS + `>
				<m:f>
					<m:fPr><m:ctrlPr/></m:fPr>
					<m:num><m:r><m:t>x</m:t></m:r></m:num>
					<m:den><m:r><m:t>y</m:t></m:r></m:den>
				</m:f>
			</m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.FractionKind, Children: []*omml.Node{
					{Kind: omml.NumeratorKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "x"}}},
					{Kind: omml.DenominatorKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "y"}}},
				}},
			}},
		},
		{
			name: "nary operator character",
			input: `<m:oMath ` + mathNS + `>
				<m:nary>
					<m:naryPr><m:chr m:val="∑"/></m:naryPr>
					<m:sub><m:r><m:t>i</m:t></m:r></m:sub>
					<m:e><m:r><m:t>i</m:t></m:r></m:e>
				</m:nary>
			</m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.NaryKind, Parameters: map[string]string{"chr": "∑"}, Children: []*omml.Node{
					{Kind: omml.SubKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "i"}}},
					{Kind: omml.ElementKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "i"}}},
				}},
			}},
		},
		{
			name: "delimiter with explicit empty close",
			input: `<m:oMath ` + mathNS + `>
				<m:d>
					<m:dPr><m:begChr m:val="{"/><m:endChr m:val=""/></m:dPr>
					<m:e><m:r><m:t>x</m:t></m:r></m:e>
				</m:d>
			</m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.DelimiterKind, Parameters: map[string]string{"begChr": "{", "endChr": ""}, Children: []*omml.Node{
					{Kind: omml.ElementKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "x"}}},
				}},
			}},
		},
		{
			name: "radical with hidden degree",
			input: `<m:oMath ` + mathNS + `>
				<m:rad>
					<m:radPr><m:degHide m:val="1"/></m:radPr>
					<m:deg/>
					<m:e><m:r><m:t>x</m:t></m:r></m:e>
				</m:rad>
			</m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.RadicalKind, Parameters: map[string]string{"degHide": "1"}, Children: []*omml.Node{
					{Kind: omml.DegreeKind},
					{Kind: omml.ElementKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "x"}}},
				}},
			}},
		},
		{
			name: "double struck run",
			input: `<m:oMath ` + mathNS + `>
				<m:r>
					<m:rPr><m:scr m:val="double-struck"/></m:rPr>
					<m:t>R</m:t>
				</m:r>
			</m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.RunKind, Parameters: map[string]string{"scr": "double-struck"}, Data: "R"},
			}},
		},
		{
			name:  "unknown tags decode as unknown kind",
			input: `<m:oMath ` + mathNS + `><m:box><m:r><m:t>a</m:t></m:r></m:box></m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.UnknownKind, Children: []*omml.Node{{Kind: omml.RunKind, Data: "a"}}},
			}},
		},
		{
			name:  "split runs join their text",
			input: `<m:oMath ` + mathNS + `><m:r><m:t>a</m:t><m:t>b</m:t></m:r></m:oMath>`,
			output: &omml.Node{Kind: omml.MathKind, Children: []*omml.Node{
				{Kind: omml.RunKind, Data: "ab"},
			}},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			node, err := omml.Decode(strings.NewReader(tc.input))
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.output, node, cmpopts.IgnoreFields(omml.Node{}, "Parent")); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeAndConvert(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{
			name: "fraction",
			input: `<m:oMath ` + mathNS + `>
				<m:f>
					<m:num><m:r><m:t>x</m:t></m:r></m:num>
					<m:den><m:r><m:t>y+1</m:t></m:r></m:den>
				</m:f>
			</m:oMath>`,
			output: `\frac{x}{y+1}`,
		},
		{
			name: "binomial inside delimiters",
			input: `<m:oMath ` + mathNS + `>
				<m:d>
					<m:e>
						<m:f>
							<m:num><m:r><m:t>n</m:t></m:r></m:num>
							<m:den><m:r><m:t>r</m:t></m:r></m:den>
						</m:f>
					</m:e>
				</m:d>
			</m:oMath>`,
			output: `\binom{n}{r}`,
		},
		{
			name: "integral",
			input: `<m:oMath ` + mathNS + `>
				<m:nary>
					<m:sub><m:r><m:t>0</m:t></m:r></m:sub>
					<m:sup><m:r><m:t>1</m:t></m:r></m:sup>
					<m:e><m:r><m:t>f(x)</m:t></m:r></m:e>
				</m:nary>
			</m:oMath>`,
			output: `\int_{0}^{1} f(x)`,
		},
		{
			name:   "symbol run",
			input:  `<m:oMath ` + mathNS + `><m:r><m:t>α≠β</m:t></m:r></m:oMath>`,
			output: `\alpha \neq \beta `,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			node, err := omml.Decode(strings.NewReader(tc.input))
			if err != nil {
				t.Fatal(err)
			}

			if got := omml.Convert(node); got != tc.output {
				t.Errorf("Convert does not match: want %q, got %q", tc.output, got)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := omml.Decode(strings.NewReader("<m:oMath")); err == nil {
		t.Error("expected error for malformed xml")
	}

	if _, err := omml.Decode(strings.NewReader("")); err == nil {
		t.Error("expected error for empty document")
	}
}

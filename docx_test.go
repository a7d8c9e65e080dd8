package omml_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	omml "github.com/doctex/go-omml"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math">
  <w:body>
    <w:p>
      <m:oMath>
        <m:f>
          <m:num><m:r><m:t>1</m:t></m:r></m:num>
          <m:den><m:r><m:t>2</m:t></m:r></m:den>
        </m:f>
      </m:oMath>
    </w:p>
    <w:p>
      <m:oMath>
        <m:r><m:t>a≠b</m:t></m:r>
      </m:oMath>
    </w:p>
  </w:body>
</w:document>`

// writeDocx builds a minimal .docx archive holding the given document part.
func writeDocx(t *testing.T, document string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "equations.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)

	part, err := w.Create("word/document.xml")
	require.NoError(t, err)

	_, err = part.Write([]byte(document))
	require.NoError(t, err)

	require.NoError(t, w.Close())

	return path
}

func TestExtractEquations(t *testing.T) {
	path := writeDocx(t, documentXML)

	equations, err := omml.ExtractEquations(path)
	require.NoError(t, err)
	require.Len(t, equations, 2)

	assert.Equal(t, 1, equations[0].Index)
	assert.Equal(t, "12", equations[0].Text)
	assert.Equal(t, `\frac{1}{2}`, equations[0].LaTeX)

	assert.Equal(t, 2, equations[1].Index)
	assert.Equal(t, "a≠b", equations[1].Text)
	assert.Equal(t, `a\neq b`, equations[1].LaTeX)
}

func TestExtractEquationsMissingPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")

	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	_, err = omml.ExtractEquations(path)
	assert.ErrorContains(t, err, "no word/document.xml part")
}

func TestExtractEquationsNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := omml.ExtractEquations(path)
	assert.Error(t, err)
}

func TestReadEquationsNoMath(t *testing.T) {
	document := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`

	equations, err := omml.ReadEquations(strings.NewReader(document))
	require.NoError(t, err)
	assert.Empty(t, equations)
}

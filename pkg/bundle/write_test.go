package bundle

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRenderDocument(t *testing.T) {
	doc := Document{Files: []FileRecord{
		{Filename: "a.py", Filepath: "/src/a.py", Contents: "x = 1\nif x < 2:\n    pass\n"},
		{Filename: "b.js", Filepath: "/src/b.js", Contents: "let a = 1 && 2\n"},
	}}

	rendered, err := RenderDocument(doc)
	require.NoError(t, err)

	want := xml.Header + `<codebase>
  <file>
    <filename>a.py</filename>
    <filepath>/src/a.py</filepath>
    <contents>x = 1
if x &lt; 2:
    pass
</contents>
  </file>
  <file>
    <filename>b.js</filename>
    <filepath>/src/b.js</filepath>
    <contents>let a = 1 &amp;&amp; 2
</contents>
  </file>
</codebase>
`
	assert.Equal(t, want, string(rendered))
}

func TestRenderDocumentRoundTrip(t *testing.T) {
	doc := Document{Files: []FileRecord{
		{
			Filename: "tricky.ts",
			Filepath: "/src/tricky.ts",
			Contents: "if (a < b && c > d) {\n\treturn \"quoted\" + 'apostrophe';\n}\r\n// entity text: &#xA; stays text\n",
		},
	}}

	rendered, err := RenderDocument(doc)
	require.NoError(t, err)

	var parsed Document
	require.NoError(t, xml.Unmarshal(rendered, &parsed))
	assert.Equal(t, doc.Files, parsed.Files)
}

func TestWriteDocumentCreatesParentDirectories(t *testing.T) {
	logger := zaptest.NewLogger(t)
	out := filepath.Join(t.TempDir(), "nested", "deep", "out.xml")
	rendered := []byte("<codebase></codebase>\n")

	require.NoError(t, WriteDocument(out, rendered, logger))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, rendered, got)
}

func TestWriteDocumentFailsWhenParentIsFile(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()
	blocker := writeFile(t, filepath.Join(dir, "blocker"), "not a directory\n")

	err := WriteDocument(filepath.Join(blocker, "out.xml"), []byte("<codebase></codebase>\n"), logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}

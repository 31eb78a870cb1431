package arxml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = "testdata/sample.arxml"

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument(sampleFile)
	require.NoError(t, err)

	assert.Equal(t, "AUTOSAR", doc.Root().Tag)
	assert.Equal(t, sampleFile, doc.Path())
}

func TestLoadDocumentMissing(t *testing.T) {
	doc, err := LoadDocument(filepath.Join(t.TempDir(), "nonexistent.arxml"))
	require.Error(t, err)

	assert.Nil(t, doc)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsParse(err))
}

func TestLoadDocumentMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unclosed element", content: "<AUTOSAR><AR-PACKAGES></AUTOSAR>"},
		{name: "truncated", content: "<AUTOSAR"},
		{name: "empty file", content: ""},
		{name: "text only", content: "not xml at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.arxml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadDocument(path)
			require.Error(t, err)
			assert.True(t, IsParse(err), "want parse error, got %v", err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	doc, err := LoadDocument(sampleFile)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "roundtrip.arxml")
	require.NoError(t, doc.Save(out, 2))

	reloaded, err := LoadDocument(out)
	require.NoError(t, err)

	if diff := cmp.Diff(ExportTree(doc.Root()), ExportTree(reloaded.Root())); diff != "" {
		t.Errorf("round-trip changed the tree (-loaded +reloaded):\n%s", diff)
	}
}

func TestSaveDoesNotMutateTree(t *testing.T) {
	doc, err := LoadDocument(sampleFile)
	require.NoError(t, err)

	before := ExportTree(doc.Root())
	require.NoError(t, doc.Save(filepath.Join(t.TempDir(), "out.arxml"), 4))

	if diff := cmp.Diff(before, ExportTree(doc.Root())); diff != "" {
		t.Errorf("save mutated the in-memory tree:\n%s", diff)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	doc, err := LoadDocument(sampleFile)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested", "deeper", "out.arxml")
	require.NoError(t, doc.Save(out, 0))

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

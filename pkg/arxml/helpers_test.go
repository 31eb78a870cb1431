package arxml

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// parseTestDoc builds an element tree from inline XML for tests that do not
// need the file-based load path.
func parseTestDoc(t *testing.T, src string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(src))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

const packageXML = `<CONFIG>
  <MODULE id="m1"><NAME>First</NAME></MODULE>
  <MODULE id="m2"><NAME>Second</NAME></MODULE>
  <CHANNEL id="m1" bus="CAN"/>
</CONFIG>`

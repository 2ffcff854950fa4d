package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title> My &amp; Page </title>
  <style>body { color: red; }</style>
</head>
<body>
  <h1>Heading</h1>
  <p>First paragraph.</p>
  <script>console.log("noise");</script>
  <p>Second <b>bold</b> paragraph.</p>
</body>
</html>`

// TestExtractTitle verifies the title is found and entity-decoded.
func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "My & Page", ExtractTitle(samplePage))
}

// TestExtractTitle_Missing verifies that a title-less page yields "".
func TestExtractTitle_Missing(t *testing.T) {
	assert.Equal(t, "", ExtractTitle("<html><body>no title here</body></html>"))
}

// TestExtractText verifies visible text extraction.
func TestExtractText(t *testing.T) {
	text := ExtractText(samplePage)

	assert.Contains(t, text, "Heading")
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "bold")
}

// TestExtractText_SkipsScriptAndStyle verifies script/style bodies do not
// leak into the text dump.
func TestExtractText_SkipsScriptAndStyle(t *testing.T) {
	text := ExtractText(samplePage)

	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
}

// TestExtractText_Empty verifies an empty document yields "".
func TestExtractText_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
}

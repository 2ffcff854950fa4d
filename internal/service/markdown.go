package service

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/personal-server/models"
)

// noteRenderer is shared by all note writes. goldmark instances are
// stateless and safe for concurrent use.
var noteRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// renderNoteFile produces the on-disk note: YAML frontmatter between ---
// fences, a blank line, then the Markdown body.
func renderNoteFile(meta models.NoteFrontmatter, content string) ([]byte, error) {
	head, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("error marshaling note frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n\n")
	buf.WriteString(content)

	return buf.Bytes(), nil
}

// renderNoteHTML converts the Markdown body to HTML for the companion
// .html artifact.
func renderNoteHTML(content string) ([]byte, error) {
	var buf bytes.Buffer
	if err := noteRenderer.Convert([]byte(content), &buf); err != nil {
		return nil, fmt.Errorf("error rendering note html: %w", err)
	}

	return buf.Bytes(), nil
}

// parseNoteFile splits a stored note back into its frontmatter and body.
func parseNoteFile(data []byte) (models.NoteFrontmatter, string, error) {
	var meta models.NoteFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return models.NoteFrontmatter{}, "", fmt.Errorf("error parsing note frontmatter: %w", err)
	}

	return meta, string(body), nil
}

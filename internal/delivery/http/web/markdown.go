package web

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed content/instructions.md
var instructionsMarkdown []byte

// Raw HTML in the Markdown source is escaped (WithUnsafe is not set) and the
// output is sanitised again before it is marked safe.
var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func renderInstructions() (template.HTML, error) {
	return RenderMarkdown(instructionsMarkdown)
}

// RenderMarkdown converts Markdown to sanitised HTML.
func RenderMarkdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

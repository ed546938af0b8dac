package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"sudreview/internal/content"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithAttribute(),
	),
)

type pageData struct {
	Title   string
	Content template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; color: #1e293b; max-width: 48rem; margin: 2rem auto; line-height: 1.6; padding: 0 1rem; }
  h1, h2, h3, h4 { color: #0f172a; }
  h2 { border-bottom: 2px solid #0d9488; padding-bottom: .25rem; }
  blockquote { border-left: 4px solid #0d9488; margin: 1rem 0; padding: .5rem 1rem; background: #f0fdfa; }
  table { border-collapse: collapse; }
  td, th { border: 1px solid #cbd5e1; padding: .25rem .75rem; }
  @media print {
    body { margin: 0; max-width: none; }
    h2, h4 { break-after: avoid; }
    blockquote, table { break-inside: avoid; }
  }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

func (d Document) writeHTML(w io.Writer) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(d.Markdown()), &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}
	return pageTemplate.Execute(w, pageData{
		Title:   content.ShareTitle,
		Content: template.HTML(body.String()),
	})
}

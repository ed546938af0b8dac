// Package report renders the whole review as a print-friendly document,
// either Markdown or standalone HTML. Every instrument is expanded since a
// printed page cannot switch tabs.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sudreview/internal/catalog"
	"sudreview/internal/content"
	"sudreview/internal/funnel"
)

// Format is an export file format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat accepts "md", "markdown" or "html".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want md or html)", s)
	}
}

// Document is everything the export renders.
type Document struct {
	Catalog *catalog.Catalog
	Flow    funnel.Flow
}

// Default returns the review document.
func Default() Document {
	return Document{Catalog: catalog.Default(), Flow: funnel.Review}
}

// Markdown renders the document as Markdown.
func (d Document) Markdown() string {
	var b strings.Builder
	h := content.TheHero()
	fmt.Fprintf(&b, "# %s %s\n\n", h.Title, h.Emphasis)
	fmt.Fprintf(&b, "*%s* — %s\n\n", h.Badge, h.Subtitle)

	b.WriteString("## Table of Contents\n\n")
	for _, s := range content.Sections() {
		fmt.Fprintf(&b, "%d. [%s](#%s) — %s\n", s.Number, s.Label, s.ID, s.Sub)
	}
	b.WriteString("\n")

	for _, s := range content.Sections() {
		fmt.Fprintf(&b, "## %s {#%s}\n\n", s.Title, s.ID)
		fmt.Fprintf(&b, "*%s*\n\n", s.Kicker)
		b.WriteString(strings.TrimSpace(s.Body))
		b.WriteString("\n\n")
		switch s.Embed {
		case content.EmbedFunnel:
			d.writeFlow(&b)
		case content.EmbedComparison:
			d.writeInstruments(&b)
		}
	}

	b.WriteString("## Key References\n\n")
	for i, r := range content.References() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	b.WriteString("\n---\n\n")
	f := content.TheFooter()
	fmt.Fprintf(&b, "**%s** — %s\n\n%s · %s\n", f.Title, f.Subtitle, f.Date, f.Disclosure)
	return b.String()
}

func (d Document) writeFlow(b *strings.Builder) {
	f := d.Flow
	b.WriteString("### Study Selection Flow\n\n")
	b.WriteString("| Stage | Records |\n|---|---|\n")
	fmt.Fprintf(b, "| Identified (%s) | %d |\n", f.IdentifiedSource, f.Identified)
	fmt.Fprintf(b, "| %s: %s | — |\n", f.ScreeningLabel, f.ScreeningNote)
	fmt.Fprintf(b, "| Included | %d |\n\n", f.Included)
	fmt.Fprintf(b, "**Excluded:** %d · **Retained:** %s\n\n", f.Excluded(), f.RetentionLabel())
}

func (d Document) writeInstruments(b *strings.Builder) {
	for _, cat := range catalog.Categories {
		fmt.Fprintf(b, "### %s\n\n", cat.Label())
		for _, id := range d.Catalog.Group(cat) {
			r := d.Catalog.Get(id)
			fmt.Fprintf(b, "#### %s — %s\n\n", r.DisplayName, r.FullName)
			fmt.Fprintf(b, "%s · %s · %s\n\n", r.AdministrationType, r.TargetSubstance, r.AdministrationTime)
			b.WriteString("**Psychometric Performance**\n\n")
			for _, s := range r.Strengths {
				fmt.Fprintf(b, "- ✓ %s\n", s)
			}
			b.WriteString("\n**Limitations & HCH Evidence**\n\n")
			for _, l := range r.Limitations {
				fmt.Fprintf(b, "- %s\n", l)
			}
			fmt.Fprintf(b, "\n> **Review Conclusion for HCH:** %s\n\n", r.Verdict)
		}
	}
}

// Write renders the document in format to w.
func (d Document) Write(w io.Writer, format Format) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, d.Markdown())
		return err
	case FormatHTML:
		return d.writeHTML(w)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// FileName returns the export file name for a timestamp.
func FileName(format Format, at time.Time) string {
	return fmt.Sprintf("sud-review-%s.%s", at.Format("20060102-150405"), format)
}

// WriteFile renders the document into dir and returns the file path.
func (d Document) WriteFile(dir string, format Format, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir %s: %w", dir, err)
	}
	var buf bytes.Buffer
	if err := d.Write(&buf, format); err != nil {
		return "", fmt.Errorf("rendering %s: %w", format, err)
	}
	path := filepath.Join(dir, FileName(format, at))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

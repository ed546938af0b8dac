// Package content is the static text of the review: hero, numbered sections,
// references and footer. Prose is Markdown so the terminal view and the
// print export render the same source.
package content

// Embed names a live component placed after a section's prose.
type Embed int

const (
	EmbedNone Embed = iota
	EmbedFunnel
	EmbedComparison
)

// Section is one numbered part of the document.
type Section struct {
	ID     string // anchor, e.g. "methods"
	Number int
	Label  string // table-of-contents label
	Sub    string // table-of-contents subtitle
	Kicker string // small heading above the title, e.g. "02 Methodology"
	Title  string
	Body   string // Markdown
	Embed  Embed
}

// Hero is the title block at the top of the document.
type Hero struct {
	Badge    string
	Title    string
	Emphasis string // trailing part of the title shown in the accent colour
	Subtitle string
}

// Footer closes the document.
type Footer struct {
	Title      string
	Subtitle   string
	Date       string
	Disclosure string
}

// Brand is the short name shown in the navigation bar.
const Brand = "SUDREVIEW"

// ShareTitle and ShareText describe the document when it is shared.
const (
	ShareTitle = "SUD Screening in Homeless Healthcare"
	ShareText  = "Check out this comparative review on validated instruments for substance use disorders in homeless populations."
)

// Sections returns the numbered sections in document order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SectionByID returns the section with the given anchor.
func SectionByID(id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// References returns the key references in citation order.
func References() []string {
	out := make([]string, len(references))
	copy(out, references)
	return out
}

// TheHero returns the title block.
func TheHero() Hero { return hero }

// TheFooter returns the closing block.
func TheFooter() Footer { return footer }

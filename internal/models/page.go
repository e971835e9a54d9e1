package models

type ContentType string

const (
	ContentParagraph ContentType = "paragraph"
	ContentImage     ContentType = "image"
)

// PageContentItem is one block inside a page section: either a paragraph
// of text or an image. Item ids are generated by the editing caller and
// unique within the containing section.
type PageContentItem struct {
	ID       string      `json:"id"`
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
	ImageAlt string      `json:"imageAlt,omitempty"`
}

type PageSection struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Contents []PageContentItem `json:"contents"`
}

// EditablePageData is the whole editable document of a named page. Section
// order is display order. Saves replace the document wholesale.
type EditablePageData struct {
	PageTitle string        `json:"pageTitle"`
	Sections  []PageSection `json:"sections"`
}

// Clone returns a deep copy so caller-side edits can never reach a stored
// or default baseline before an explicit save.
func (d *EditablePageData) Clone() *EditablePageData {
	out := &EditablePageData{
		PageTitle: d.PageTitle,
		Sections:  make([]PageSection, len(d.Sections)),
	}
	for i, s := range d.Sections {
		cs := PageSection{
			ID:       s.ID,
			Title:    s.Title,
			Contents: make([]PageContentItem, len(s.Contents)),
		}
		copy(cs.Contents, s.Contents)
		out.Sections[i] = cs
	}
	return out
}

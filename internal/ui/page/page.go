// Package page reads the server-rendered moderation page and builds the
// board and tab strip the console runs on.
package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/render"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/state"
)

// Selectors used against the server-rendered page.
const (
	SectionSelector     = ".department-submission-section"
	RowSelector         = ".submissions-table tbody tr[data-pk]"
	CardSelector        = "#tab-users .users-grid .user-card[data-pk]"
	ActiveGridSelector  = "#tab-users .users-grid.active-users"
	InactiveGridClass   = "inactive-users"
	TabSelector         = ".tab[data-target]"
	PageSectionSelector = ".af-section[id]"
	ButtonAreaSelector  = ".action-buttons-section"
	pillSelector        = ".status-pill"
)

// Page is the console state recovered from the rendered HTML.
type Page struct {
	Board *state.Board
	Tabs  *state.Tabs
	// Interactive marks the sections that have both a table body and an
	// action button area. Only those take row selection and actions; the
	// others still count towards the stats.
	Interactive map[string]bool
	// Warnings lists markup problems that were tolerated, such as rows
	// without keys or duplicate cards.
	Warnings []string
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument builds the page state from an already parsed document.
func FromDocument(doc *goquery.Document) *Page {
	p := &Page{Board: state.NewBoard(), Interactive: make(map[string]bool)}
	p.readSections(doc)
	p.readCards(doc)
	p.readTabs(doc)
	return p
}

// SectionID returns the id the console uses for the idx-th section element.
func SectionID(sel *goquery.Selection, idx int) string {
	if id := strings.TrimSpace(sel.AttrOr("id", "")); id != "" {
		return id
	}
	return fmt.Sprintf("section-%d", idx)
}

func (p *Page) readSections(doc *goquery.Document) {
	doc.Find(SectionSelector).Each(func(idx int, sec *goquery.Selection) {
		sectionID := SectionID(sec, idx)
		p.Board.AddSection(sectionID)
		p.Interactive[sectionID] = sec.Find(".submissions-table tbody").Length() > 0 &&
			sec.Find(ButtonAreaSelector).Length() > 0
		sec.Find(RowSelector).Each(func(_ int, tr *goquery.Selection) {
			sub, row := readRow(tr)
			if err := p.Board.AddRow(sectionID, sub, row); err != nil {
				p.warnf("section %s: %v", sectionID, err)
			}
		})
	})
}

func readRow(tr *goquery.Selection) (model.Submission, model.Row) {
	name := strings.TrimSpace(tr.AttrOr("data-name", ""))
	if name == "" {
		name = strings.TrimSpace(tr.Find("td").First().Text())
	}
	sub := model.Submission{
		PK:      strings.TrimSpace(tr.AttrOr("data-pk", "")),
		Name:    name,
		Role:    strings.TrimSpace(tr.AttrOr("data-role", "")),
		Contact: strings.TrimSpace(tr.AttrOr("data-contact", "")),
		Status:  model.ParseStatus(tr.AttrOr("data-status-key", "")),
	}
	row := model.Row{PillCell: -1, Class: withoutClass(tr.AttrOr("class", ""), "selected")}
	for _, node := range tr.Nodes {
		for _, attr := range node.Attr {
			if attr.Namespace != "" || render.OwnsRowAttr(attr.Key) {
				continue
			}
			row.Attrs = append(row.Attrs, model.Attr{Name: attr.Key, Value: attr.Val})
		}
	}
	tr.Children().Filter("td").Each(func(idx int, td *goquery.Selection) {
		inner, err := td.Html()
		if err != nil {
			inner = ""
		}
		if row.PillCell < 0 && td.Find(pillSelector).Length() > 0 {
			row.PillCell = idx
		}
		row.Cells = append(row.Cells, inner)
	})
	return sub, row
}

func (p *Page) readCards(doc *goquery.Document) {
	doc.Find(CardSelector).Each(func(_ int, card *goquery.Selection) {
		view := model.CardView{
			PK:      strings.TrimSpace(card.AttrOr("data-pk", "")),
			Name:    strings.TrimSpace(card.Find(".user-name").First().Text()),
			Role:    strings.TrimSpace(card.Find(".user-role").First().Text()),
			Contact: strings.TrimSpace(card.Find(".user-meta").First().Text()),
			Status:  cardStatus(card),
		}
		added, err := p.Board.AddCard(view)
		switch {
		case err != nil:
			p.warnf("user card: %v", err)
		case !added:
			p.warnf("duplicate user card %s dropped", view.PK)
		}
	})
}

func cardStatus(card *goquery.Selection) model.CardStatus {
	badge := card.Find(".user-status").First()
	switch {
	case badge.HasClass("inactive"):
		return model.CardInactive
	case badge.HasClass("active"), badge.HasClass("approved"):
		return model.CardActive
	}
	if card.ParentsFiltered(".users-grid").HasClass(InactiveGridClass) {
		return model.CardInactive
	}
	if card.ParentsFiltered(".users-grid").Length() > 0 {
		return model.CardActive
	}
	return model.CardUnknown
}

func (p *Page) readTabs(doc *goquery.Document) {
	var sections []string
	doc.Find(PageSectionSelector).Each(func(_ int, sec *goquery.Selection) {
		sections = append(sections, sec.AttrOr("id", ""))
	})
	active := ""
	doc.Find(TabSelector).EachWithBreak(func(_ int, tab *goquery.Selection) bool {
		if tab.HasClass("active") {
			active = tab.AttrOr("data-target", "")
			return false
		}
		return true
	})
	p.Tabs = state.NewTabs(sections, active)
}

func (p *Page) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

func withoutClass(classList, drop string) string {
	fields := strings.Fields(classList)
	kept := fields[:0]
	for _, class := range fields {
		if class != drop {
			kept = append(kept, class)
		}
	}
	return strings.Join(kept, " ")
}

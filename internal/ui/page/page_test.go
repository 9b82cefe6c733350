package page

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/render"
)

func loadFixture(t *testing.T) *Page {
	t.Helper()
	f, err := os.Open("testdata/overview.html")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return p
}

func TestParseSectionsAndRows(t *testing.T) {
	p := loadFixture(t)

	ids := p.Board.SectionIDs()
	if len(ids) != 2 || ids[0] != "dept-actors" || ids[1] != "section-1" {
		t.Fatalf("unexpected section ids %v", ids)
	}

	snap := p.Board.Snapshot()
	actors := snap.Sections[0]
	if len(actors.Rows) != 2 {
		t.Fatalf("expected 2 keyed rows in actors, got %d", len(actors.Rows))
	}
	ana := actors.Rows[0]
	if ana.PK != "42" || ana.Name != "Ana Ruiz" || ana.Role != "Actor" || ana.Contact != "ana@example.com" || ana.Status != model.StatusPending {
		t.Fatalf("unexpected row %+v", ana.Submission)
	}
	if ana.PillCell != 2 || len(ana.Cells) != 3 {
		t.Fatalf("expected pill in third cell, got %d of %d", ana.PillCell, len(ana.Cells))
	}
	ben := actors.Rows[1]
	if ben.Name != "Ben Cole" {
		t.Fatalf("name should fall back to first cell text, got %q", ben.Name)
	}
	if ben.Class != "striped" || ben.Selected {
		t.Fatalf("server selection must not leak into the model: class=%q selected=%v", ben.Class, ben.Selected)
	}
	if !strings.Contains(ben.Cells[0], "<b>Ben Cole</b>") {
		t.Fatalf("expected captured cell markup, got %q", ben.Cells[0])
	}

	crew := snap.Sections[1]
	if len(crew.Rows) != 1 || crew.Rows[0].Status != model.StatusActive {
		t.Fatalf("duplicate key in one section should be dropped: %+v", crew.Rows)
	}

	want := model.Counters{Total: 3, Pending: 1, Approved: 2}
	if snap.Counters != want {
		t.Fatalf("counters = %+v, want %+v", snap.Counters, want)
	}
}

func TestParseCardsDeduplicates(t *testing.T) {
	p := loadFixture(t)
	snap := p.Board.Snapshot()

	var activeKeys []string
	for _, card := range snap.ActiveCards {
		activeKeys = append(activeKeys, card.PK)
	}
	if strings.Join(activeKeys, ",") != "7,30" {
		t.Fatalf("unexpected active cards %v", activeKeys)
	}
	if len(snap.InactiveCards) != 1 || snap.InactiveCards[0].PK != "31" {
		t.Fatalf("unexpected inactive cards %+v", snap.InactiveCards)
	}
	dee, _ := p.Board.Lookup("30")
	if dee.Role != "Editor" || dee.Status != model.StatusActive {
		t.Fatalf("card-only entity not hydrated: %+v", dee)
	}

	var sawDuplicate, sawMissingKey, sawDuplicateRow bool
	for _, w := range p.Warnings {
		switch {
		case strings.Contains(w, "duplicate user card 7"):
			sawDuplicate = true
		case strings.Contains(w, "missing primary key"):
			sawMissingKey = true
		case strings.Contains(w, "duplicate row"):
			sawDuplicateRow = true
		}
	}
	if !sawDuplicate || !sawMissingKey || !sawDuplicateRow {
		t.Fatalf("expected warnings for duplicates and missing keys, got %v", p.Warnings)
	}
}

func TestParseTabs(t *testing.T) {
	p := loadFixture(t)
	if p.Tabs.Active() != "tab-submissions" {
		t.Fatalf("unexpected active tab %q", p.Tabs.Active())
	}
	visible := p.Tabs.Activate("tab-users")
	if !visible["tab-users"] || visible["tab-submissions"] {
		t.Fatalf("unexpected visibility %v", visible)
	}
}

func TestHydratedRowRendersAfterApprove(t *testing.T) {
	markup := `<html><body>
<section class="department-submission-section" id="dept-crew">
  <table class="submissions-table"><tbody>
    <tr data-pk="42" data-status-key="pending" data-name="Ann" id="row-42" data-dept="x">
      <td>Ann</td>
      <td><span class="status-pill pending">Pending</span></td>
      <td><button class="approve-btn">A</button><button class="reject-btn">R</button></td>
    </tr>
  </tbody></table>
  <div class="action-buttons-section"></div>
</section>
</body></html>`
	p, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p.Board.SetStatus("42", model.StatusApproved)

	rows := p.Board.Snapshot().Sections[0].Rows
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tbody>" + render.Rows(rows) + "</tbody></table>"))
	if err != nil {
		t.Fatalf("parse rendered rows: %v", err)
	}
	row := doc.Find(`tr[data-pk="42"]`)
	if row.AttrOr("id", "") != "row-42" || row.AttrOr("data-dept", "") != "x" {
		t.Fatalf("server attributes lost: id=%q data-dept=%q", row.AttrOr("id", ""), row.AttrOr("data-dept", ""))
	}
	if row.AttrOr("data-status-key", "") != "approved" {
		t.Fatalf("status key not updated")
	}
	if _, disabled := row.Find(".approve-btn").Attr("disabled"); !disabled {
		t.Fatalf("approve control should be disabled for an approved row")
	}
	if _, disabled := row.Find(".reject-btn").Attr("disabled"); disabled {
		t.Fatalf("reject control should stay enabled for an approved row")
	}
}

func TestSectionsWithoutButtonsAreNotInteractive(t *testing.T) {
	p := loadFixture(t)
	if !p.Interactive["dept-actors"] {
		t.Fatalf("section with a table and buttons should be interactive")
	}
	if p.Interactive["section-1"] {
		t.Fatalf("section without an action button area should not be interactive")
	}
	if got := p.Board.Counters().Total; got != 3 {
		t.Fatalf("rows of non-interactive sections still count, total = %d", got)
	}
}

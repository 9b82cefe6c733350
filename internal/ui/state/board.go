// Package state holds the moderation console's view model: the entity map
// both views render from, per-section row selection, and the tab strip.
package state

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

var (
	// ErrMissingKey is returned when a row or card has no primary key.
	ErrMissingKey = errors.New("missing primary key")
	// ErrDuplicateRow is returned when a section already holds a row for the key.
	ErrDuplicateRow = errors.New("duplicate row")
	// ErrUnknownSection is returned for rows added to a section that was never registered.
	ErrUnknownSection = errors.New("unknown section")
)

type section struct {
	id       string
	rows     []model.Row
	selected string
}

func (s *section) indexOf(pk string) int {
	for idx := range s.rows {
		if s.rows[idx].PK == pk {
			return idx
		}
	}
	return -1
}

// Board is the single source of truth for submission rows and user cards.
// Each primary key maps to one entity; rows reference it from any number of
// sections (at most once per section) and the users grids show at most one
// card for it.
type Board struct {
	mu        sync.Mutex
	entities  map[string]*model.Submission
	sections  []*section
	seq       int64
	cardFloor int64
}

// NewBoard constructs an empty Board.
func NewBoard() *Board {
	return &Board{entities: make(map[string]*model.Submission)}
}

// AddSection registers a table section. Registering the same id twice is a no-op.
func (b *Board) AddSection(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sectionLocked(id) != nil {
		return
	}
	b.sections = append(b.sections, &section{id: id})
}

// SectionIDs lists the registered sections in page order.
func (b *Board) SectionIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.sections))
	for _, sec := range b.sections {
		ids = append(ids, sec.id)
	}
	return ids
}

// AddRow appends a row to a section. The first row seen for a key defines
// the entity; later rows for the same key in other sections share it.
func (b *Board) AddRow(sectionID string, sub model.Submission, row model.Row) error {
	pk := strings.TrimSpace(sub.PK)
	if pk == "" {
		return ErrMissingKey
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	sec := b.sectionLocked(sectionID)
	if sec == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	if sec.indexOf(pk) >= 0 {
		return fmt.Errorf("%w: %s in %s", ErrDuplicateRow, pk, sectionID)
	}
	row.PK = pk
	sec.rows = append(sec.rows, row)

	if existing, ok := b.entities[pk]; ok {
		fillBlank(existing, sub)
		return nil
	}
	sub.PK = pk
	if sub.Status == "" {
		sub.Status = model.StatusUnknown
	}
	b.entities[pk] = &sub
	return nil
}

// AddCard records a server-rendered user card. Cards are expected in page
// order; the first card renders first. It reports false when a card for the
// key already exists, in which case the duplicate is discarded.
func (b *Board) AddCard(card model.CardView) (bool, error) {
	pk := strings.TrimSpace(card.PK)
	if pk == "" {
		return false, ErrMissingKey
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.entities[pk]
	if !ok {
		sub = &model.Submission{
			PK:      pk,
			Name:    card.Name,
			Role:    card.Role,
			Contact: card.Contact,
			Status:  statusForCard(card.Status),
		}
		b.entities[pk] = sub
	} else if sub.HasCard {
		return false, nil
	}
	fillBlank(sub, model.Submission{Name: card.Name, Role: card.Role, Contact: card.Contact})
	sub.HasCard = true
	sub.CardRank = b.cardFloor
	b.cardFloor--
	return true, nil
}

// Toggle applies a row click in a section: clicking the selected row clears
// the selection, clicking any other row selects it instead. It returns the
// key selected afterwards, or "" when nothing is.
func (b *Board) Toggle(sectionID, pk string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	sec := b.sectionLocked(sectionID)
	if sec == nil {
		return ""
	}
	if sec.indexOf(pk) < 0 {
		return sec.selected
	}
	if sec.selected == pk {
		sec.selected = ""
	} else {
		sec.selected = pk
	}
	return sec.selected
}

// Selected returns the entity of the row selected in a section.
func (b *Board) Selected(sectionID string) (model.Submission, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sec := b.sectionLocked(sectionID)
	if sec == nil || sec.selected == "" {
		return model.Submission{}, false
	}
	sub, ok := b.entities[sec.selected]
	if !ok {
		return model.Submission{}, false
	}
	return *sub, true
}

// ClearSelection deselects whatever row is selected in the section.
func (b *Board) ClearSelection(sectionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sec := b.sectionLocked(sectionID); sec != nil {
		sec.selected = ""
	}
}

// Lookup returns the entity for a primary key.
func (b *Board) Lookup(pk string) (model.Submission, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.entities[pk]
	if !ok {
		return model.Submission{}, false
	}
	return *sub, true
}

// SetStatus changes an entity's status.
func (b *Board) SetStatus(pk string, status model.Status) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.entities[pk]
	if !ok {
		return false
	}
	sub.Status = status
	return true
}

// UpsertCard shows the entity's card at the front of its grid. An existing
// card for the key is replaced rather than duplicated.
func (b *Board) UpsertCard(pk string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.entities[pk]
	if !ok {
		return false
	}
	sub.HasCard = true
	b.seq++
	sub.CardRank = b.seq
	return true
}

// MoveCard brings an existing card to the front of the grid its status
// belongs to. It reports false when the entity has no card.
func (b *Board) MoveCard(pk string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.entities[pk]
	if !ok || !sub.HasCard {
		return false
	}
	b.seq++
	sub.CardRank = b.seq
	return true
}

// RemoveCard drops the entity's card from the users grids.
func (b *Board) RemoveCard(pk string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.entities[pk]
	if !ok || !sub.HasCard {
		return false
	}
	sub.HasCard = false
	sub.CardRank = 0
	return true
}

// Remove deletes the entity together with every row and the card that
// reference it.
func (b *Board) Remove(pk string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entities[pk]; !ok {
		return false
	}
	delete(b.entities, pk)
	for _, sec := range b.sections {
		if idx := sec.indexOf(pk); idx >= 0 {
			sec.rows = append(sec.rows[:idx], sec.rows[idx+1:]...)
		}
		if sec.selected == pk {
			sec.selected = ""
		}
	}
	return true
}

// Counters scans every row of every section once.
func (b *Board) Counters() model.Counters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.countersLocked()
}

// Snapshot returns a copy of both views and the counters.
//
// Callers can safely modify the returned value without affecting the board.
func (b *Board) Snapshot() model.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := model.Snapshot{
		Sections: make([]model.SectionView, 0, len(b.sections)),
		Counters: b.countersLocked(),
	}
	for _, sec := range b.sections {
		view := model.SectionView{
			ID:       sec.id,
			Rows:     make([]model.RowView, 0, len(sec.rows)),
			Selected: sec.selected,
		}
		var selected *model.Submission
		for _, row := range sec.rows {
			sub := b.entities[row.PK]
			if sub == nil {
				continue
			}
			if row.PK == sec.selected {
				selected = sub
			}
			view.Rows = append(view.Rows, model.RowView{
				Submission: *sub,
				Class:      row.Class,
				Attrs:      append([]model.Attr(nil), row.Attrs...),
				Cells:      append([]string(nil), row.Cells...),
				PillCell:   row.PillCell,
				Selected:   row.PK == sec.selected,
			})
		}
		if selected != nil {
			view.Buttons = ButtonsFor(selected.Status)
		}
		snap.Sections = append(snap.Sections, view)
	}

	cards := make([]*model.Submission, 0, len(b.entities))
	for _, sub := range b.entities {
		if sub.HasCard {
			cards = append(cards, sub)
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].CardRank != cards[j].CardRank {
			return cards[i].CardRank > cards[j].CardRank
		}
		return cards[i].PK < cards[j].PK
	})
	for _, sub := range cards {
		card := model.CardView{
			PK:      sub.PK,
			Name:    sub.Name,
			Role:    sub.Role,
			Contact: sub.Contact,
			Status:  model.CardStatusFor(sub.Status),
		}
		if card.Status == model.CardInactive {
			snap.InactiveCards = append(snap.InactiveCards, card)
		} else {
			snap.ActiveCards = append(snap.ActiveCards, card)
		}
	}
	return snap
}

func (b *Board) countersLocked() model.Counters {
	var counters model.Counters
	for _, sec := range b.sections {
		for _, row := range sec.rows {
			sub := b.entities[row.PK]
			if sub == nil {
				continue
			}
			counters.Total++
			switch {
			case sub.Status == model.StatusPending:
				counters.Pending++
			case sub.Status.IsApproved():
				counters.Approved++
			}
		}
	}
	return counters
}

func (b *Board) sectionLocked(id string) *section {
	for _, sec := range b.sections {
		if sec.id == id {
			return sec
		}
	}
	return nil
}

func fillBlank(dst *model.Submission, src model.Submission) {
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.Role == "" {
		dst.Role = src.Role
	}
	if dst.Contact == "" {
		dst.Contact = src.Contact
	}
}

func statusForCard(status model.CardStatus) model.Status {
	switch status {
	case model.CardActive:
		return model.StatusActive
	case model.CardInactive:
		return model.StatusInactive
	default:
		return model.StatusUnknown
	}
}

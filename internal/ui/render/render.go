// Package render turns a board snapshot into the HTML of the submissions
// tables and the users grids.
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

// rowAttrs are the tr attributes rendered from the board rather than
// carried over from the server markup.
var rowAttrs = map[string]bool{
	"data-pk":         true,
	"data-status-key": true,
	"data-name":       true,
	"data-role":       true,
	"data-contact":    true,
	"class":           true,
	"aria-selected":   true,
}

// OwnsRowAttr reports whether a tr attribute is rewritten on every render.
func OwnsRowAttr(name string) bool {
	return rowAttrs[strings.ToLower(name)]
}

// Rows renders the inner HTML of one section's tbody.
func Rows(rows []model.RowView) string {
	var builder strings.Builder
	for _, row := range rows {
		writeRow(&builder, row)
	}
	return builder.String()
}

func writeRow(builder *strings.Builder, row model.RowView) {
	builder.WriteString(`<tr`)
	writeAttr(builder, "data-pk", row.PK)
	writeAttr(builder, "data-status-key", string(row.Status))
	if row.Name != "" {
		writeAttr(builder, "data-name", row.Name)
	}
	if row.Role != "" {
		writeAttr(builder, "data-role", row.Role)
	}
	if row.Contact != "" {
		writeAttr(builder, "data-contact", row.Contact)
	}
	class := strings.TrimSpace(row.Class)
	if row.Selected {
		class = strings.TrimSpace(class + " selected")
	}
	if class != "" {
		writeAttr(builder, "class", class)
	}
	writeAttr(builder, "aria-selected", strconv.FormatBool(row.Selected))
	for _, attr := range row.Attrs {
		if OwnsRowAttr(attr.Name) {
			continue
		}
		writeAttr(builder, attr.Name, attr.Value)
	}
	builder.WriteString(`>`)

	if len(row.Cells) == 0 {
		for _, text := range []string{row.Name, row.Role, row.Contact} {
			builder.WriteString(`<td>` + html.EscapeString(text) + `</td>`)
		}
		builder.WriteString(`<td>` + StatusPill(row.Status) + `</td>`)
	} else {
		for idx, cell := range row.Cells {
			builder.WriteString(`<td>`)
			if idx == row.PillCell {
				builder.WriteString(StatusPill(row.Status))
			} else {
				builder.WriteString(rowControls(cell, row.Status))
			}
			builder.WriteString(`</td>`)
		}
	}
	builder.WriteString(`</tr>`)
}

// rowControls keeps a captured cell's markup and sets the disabled state
// of any approve or reject control it holds from the row status.
func rowControls(cell string, status model.Status) string {
	if !strings.Contains(cell, "approve-btn") && !strings.Contains(cell, "reject-btn") {
		return cell
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cell))
	if err != nil {
		return cell
	}
	body := doc.Find("body")
	setDisabled(body.Find(".approve-btn"), status.IsApproved())
	setDisabled(body.Find(".reject-btn"), status == model.StatusRejected)
	out, err := body.Html()
	if err != nil {
		return cell
	}
	return out
}

func setDisabled(sel *goquery.Selection, disabled bool) {
	if disabled {
		sel.SetAttr("disabled", "")
	} else {
		sel.RemoveAttr("disabled")
	}
}

// StatusPill renders the status badge shown in a row.
func StatusPill(status model.Status) string {
	key := string(status)
	if key == "" {
		key = string(model.StatusUnknown)
	}
	return `<span class="status-pill ` + html.EscapeString(key) + `">` + html.EscapeString(status.Label()) + `</span>`
}

// Cards renders the inner HTML of a users grid.
func Cards(cards []model.CardView) string {
	var builder strings.Builder
	for _, card := range cards {
		writeCard(&builder, card)
	}
	return builder.String()
}

func writeCard(builder *strings.Builder, card model.CardView) {
	name := card.Name
	if strings.TrimSpace(name) == "" {
		name = "Unknown"
	}
	builder.WriteString(`<div class="user-card"`)
	writeAttr(builder, "data-pk", card.PK)
	builder.WriteString(`>`)
	builder.WriteString(`<div class="user-name">` + html.EscapeString(name) + `</div>`)
	writeOptional(builder, "user-role", card.Role)
	writeOptional(builder, "user-meta", card.Contact)
	builder.WriteString(`<div class="user-status ` + string(card.Status) + `">` + card.Status.Label() + `</div>`)
	switch card.Status {
	case model.CardActive:
		builder.WriteString(`<div class="user-actions"><button type="button" class="user-btn user-deactivate" data-action="deactivate">Deactivate</button></div>`)
	case model.CardInactive:
		builder.WriteString(`<div class="user-actions"><button type="button" class="user-btn user-activate" data-action="activate">Activate</button></div>`)
	}
	builder.WriteString(`</div>`)
}

func writeOptional(builder *strings.Builder, class, value string) {
	builder.WriteString(`<div class="` + class + `"`)
	if strings.TrimSpace(value) == "" {
		builder.WriteString(` style="display:none"`)
	}
	builder.WriteString(`>` + html.EscapeString(value) + `</div>`)
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteString(` ` + name + `="` + html.EscapeString(value) + `"`)
}

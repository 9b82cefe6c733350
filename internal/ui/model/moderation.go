package model

// Submission is one moderated entity. Its table row and its user card are
// both rendered from this record.
type Submission struct {
	PK      string
	Name    string
	Role    string
	Contact string
	Status  Status

	// HasCard reports whether the entity appears in the users grids.
	HasCard bool
	// CardRank orders cards inside a grid; higher ranks render first.
	CardRank int64
}

// Counters are the aggregate figures shown in the stats panel.
type Counters struct {
	Total    int
	Pending  int
	Approved int
}

// Buttons holds the enabled flag of every action button in a section.
type Buttons struct {
	Edit       bool
	Approve    bool
	Reject     bool
	Deactivate bool
	Activate   bool
	Delete     bool
}

// Attr is one HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Row is a submission row as captured from the server-rendered table.
type Row struct {
	PK string
	// Class is the row's server-rendered class list, minus "selected".
	Class string
	// Attrs are the remaining tr attributes, in document order, that the
	// board does not own.
	Attrs []Attr
	// Cells holds the inner HTML of each cell. PillCell is the index of the
	// cell holding the status pill, or -1.
	Cells    []string
	PillCell int
}

// RowView is a row as it should appear in a submissions table.
type RowView struct {
	Submission
	Class    string
	Attrs    []Attr
	Cells    []string
	PillCell int
	Selected bool
}

// SectionView is one department section: its rows, selection and buttons.
type SectionView struct {
	ID       string
	Rows     []RowView
	Selected string
	Buttons  Buttons
}

// CardView is a user card as it should appear in one of the users grids.
type CardView struct {
	PK      string
	Name    string
	Role    string
	Contact string
	Status  CardStatus
}

// Snapshot is a consistent copy of everything both views need to render.
type Snapshot struct {
	Sections      []SectionView
	ActiveCards   []CardView
	InactiveCards []CardView
	Counters      Counters
}

// Tone is the severity tag of a toast.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// Toast is a transient status message.
type Toast struct {
	ID        string
	Message   string
	Tone      Tone
	LongLived bool
}

// Ack is the JSON acknowledgement returned by the moderation endpoints.
type Ack struct {
	OK     bool   `json:"ok"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

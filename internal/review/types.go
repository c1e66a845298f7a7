package review

import "swim-schedule-manager/internal/model"

// State names the review workflow states. Transitions are enforced by the
// session methods; the one-outstanding-request rule falls out of the
// extracting and sending states rather than UI convention.
type State string

const (
	StateIdle           State = "idle"
	StateFileSelected   State = "file-selected"
	StateExtracting     State = "extracting"
	StateReviewing      State = "reviewing"
	StateSending        State = "sending"
	StateShowingResults State = "showing-results"
)

// BannerKind classifies the verification banner shown above the event list.
type BannerKind string

const (
	BannerAgreement  BannerKind = "agreement"
	BannerMisaligned BannerKind = "misaligned"
	BannerWarning    BannerKind = "warning"
)

// Banner is the cross-model verification banner.
type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message"`
}

// EventView is one event card in the rendered view.
type EventView struct {
	Index           int    `json:"index"`
	Selected        bool   `json:"selected"`
	LocationDisplay string `json:"locationDisplay"`
	model.PracticeEvent
}

// GroupView is one collapsible date group in the rendered view.
type GroupView struct {
	Date        string      `json:"date"`
	Label       string      `json:"label"` // weekday-prefixed when the date parses
	Collapsed   bool        `json:"collapsed"`
	AllSelected bool        `json:"allSelected"` // AND of the group's event selections
	Events      []EventView `json:"events"`
}

// View is the full rendered session, consumed by the frontend as-is.
type View struct {
	State         State                `json:"state"`
	FileName      string               `json:"fileName"`
	Banner        *Banner              `json:"banner,omitempty"`
	EmptyMessage  string               `json:"emptyMessage,omitempty"`
	Groups        []GroupView          `json:"groups"`
	Attendees     []string             `json:"attendees"`
	Misalignments []model.Misalignment `json:"misalignments"`
	Results       []model.SendResult   `json:"results"`
}

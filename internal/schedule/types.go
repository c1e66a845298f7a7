package schedule

import "swim-schedule-manager/internal/model"

// ParseInput carries one uploaded schedule PDF.
type ParseInput struct {
	FileName string
	PDF      []byte
}

// ParseOutput is the extraction result: merged events in schedule order plus
// any disagreements between the two extraction passes.
type ParseOutput struct {
	Events        []model.PracticeEvent
	Misalignments []model.Misalignment
}

// Segment kinds as reported by the extraction models. Pool and dry-land rows
// arrive unmerged; "none" marks a rest-day row.
const (
	KindPool    = "pool"
	KindDryLand = "dryland"
	KindNone    = "none"
)

// Segment is one raw schedule row as reported by an extraction model.
type Segment struct {
	Date     string `json:"date"`
	Child    string `json:"child"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Kind     string `json:"kind"`
}

// Extraction is the primary model's full output: the plain-text transcript
// plus the per-row segments. The transcript feeds the verification pass.
type Extraction struct {
	Transcript string    `json:"transcript"`
	Segments   []Segment `json:"segments"`
}

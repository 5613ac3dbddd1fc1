package models

// ActionItem is a single task extracted from the meeting.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// OwnerResponsibility maps a person to what they agreed to own.
type OwnerResponsibility struct {
	Person         string `json:"person"`
	Responsibility string `json:"responsibility"`
}

// Insights holds the structured intelligence extracted from a transcript.
type Insights struct {
	Actions   []ActionItem          `json:"actions"`
	Decisions []string              `json:"decisions"`
	Owners    []OwnerResponsibility `json:"owners"`
	Risks     []string              `json:"risks"`
}

// ProcessingResult is the full output of one meeting-processing request.
// All string fields are optional on the wire; clients render placeholders
// for anything absent.
type ProcessingResult struct {
	Summary        string                `json:"summary"`
	FocusedSummary string                `json:"focused_summary"`
	Transcript     string                `json:"transcript"`
	Diarized       string                `json:"diarized,omitempty"`
	Actions        []ActionItem          `json:"actions"`
	Decisions      []string              `json:"decisions"`
	Owners         []OwnerResponsibility `json:"owners"`
	Risks          []string              `json:"risks"`
}

package model

import "encoding/json"

// TaskDraft is a model-generated task proposal as the planner UI consumes it.
// The server never builds drafts itself; the type describes the schema and is
// used to inspect extracted arrays.
type TaskDraft struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Details   string          `json:"details,omitempty"`
	TimeStart string          `json:"timeStart"` // HH:MM
	TimeEnd   string          `json:"timeEnd"`   // HH:MM
	Date      string          `json:"date"`      // YYYY-MM-DD
	Repeat    json.RawMessage `json:"repeat"`    // null or a repetition descriptor
	DueDate   *string         `json:"dueDate"`
	Completed bool            `json:"completed"`
}

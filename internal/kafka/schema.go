package kafka

import (
	"time"

	"ops-dashboard/internal/reconcile"
)

const (
	OutcomeOK          = "ok"
	OutcomeInterrupted = "interrupted"
	OutcomeFailed      = "failed"
)

type StructuredConnectRecord struct {
	Schema  Schema     `json:"schema"`
	Payload SyncReport `json:"payload"`
}

// SyncReport is the last known outcome of a sync or import for one source.
// Timestamps are unix milliseconds.
type SyncReport struct {
	Source        string   `json:"source"`
	Outcome       string   `json:"outcome"`
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	Skipped       int      `json:"skipped"`
	Errors        int      `json:"errors"`
	Total         int      `json:"total"`
	ErrorMessages []string `json:"error_messages"`
	Failure       string   `json:"failure,omitempty"`
	StartedAt     int64    `json:"started_at"`
	FinishedAt    int64    `json:"finished_at"`
}

// NewSyncReport converts a reconcile result. A non-nil err marks the run as
// interrupted or failed and is kept as Failure.
func NewSyncReport(res reconcile.Result, err error) SyncReport {
	report := SyncReport{
		Source:        res.Source,
		Outcome:       OutcomeOK,
		Created:       res.Created,
		Updated:       res.Updated,
		Skipped:       res.Skipped,
		Errors:        res.Errors,
		Total:         res.Total,
		ErrorMessages: res.ErrorMessages,
		StartedAt:     millis(res.StartedAt),
		FinishedAt:    millis(res.FinishedAt),
	}
	if report.ErrorMessages == nil {
		report.ErrorMessages = []string{}
	}
	if err != nil {
		report.Outcome = OutcomeFailed
		if res.Total > 0 {
			report.Outcome = OutcomeInterrupted
		}
		report.Failure = err.Error()
	}
	return report
}

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Items    *Field `json:"items,omitempty"`
}

var StructuredSchema = Schema{
	Type:     "struct",
	Name:     "SyncReport",
	Optional: false,
	Fields: []Field{
		{Field: "source", Type: "string"},
		{Field: "outcome", Type: "string"},
		{Field: "created", Type: "int32"},
		{Field: "updated", Type: "int32"},
		{Field: "skipped", Type: "int32"},
		{Field: "errors", Type: "int32"},
		{Field: "total", Type: "int32"},
		{Field: "error_messages", Type: "array", Items: &Field{Type: "string"}},
		{Field: "failure", Type: "string", Optional: true},
		{Field: "started_at", Type: "int64"},
		{Field: "finished_at", Type: "int64"},
	},
}

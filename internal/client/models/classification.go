// Package models contains the console's view of the API resources and the
// paging/sorting state of the classification history.
package models

import "time"

// Result labels produced by the classifier. Anything else is shown verbatim.
const (
	ResultNormal    = "Normal"
	ResultInjection = "Injection"
	ResultDemo      = "demo"
)

// Classification is one stored classification record. Records are immutable.
type Classification struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"request_text"`
	Result    string    `json:"result"`
	Source    string    `json:"source_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassificationResult is the answer to a classification submission.
type ClassificationResult struct {
	Result string `json:"result"`
	Text   string `json:"request_text,omitempty"`
}

// IsKnownResult reports whether r is one of the documented labels.
func IsKnownResult(r string) bool {
	switch r {
	case ResultNormal, ResultInjection, ResultDemo:
		return true
	}
	return false
}

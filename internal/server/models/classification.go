package models

import "time"

// ResultDemo is what the stand-in classifier answers for every text.
const ResultDemo = "demo"

// Classification is one entry of the classification log.
type Classification struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"request_text"`
	Result    string    `json:"result"`
	Source    string    `json:"source_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassificationSort is the sortBy query value of the log endpoint.
type ClassificationSort string

const (
	SortTimeAsc    ClassificationSort = "asc"
	SortTimeDesc   ClassificationSort = "desc"
	SortSourceAsc  ClassificationSort = "source_asc"
	SortSourceDesc ClassificationSort = "source_desc"
)

// ParseClassificationSort maps unknown values to newest first.
func ParseClassificationSort(s string) ClassificationSort {
	switch ClassificationSort(s) {
	case SortTimeAsc, SortSourceAsc, SortSourceDesc:
		return ClassificationSort(s)
	}
	return SortTimeDesc
}

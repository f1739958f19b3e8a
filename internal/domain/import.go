package domain

import "time"

const (
	ImportSourceLocalStorage = "local_storage"
	ImportSourceHosted       = "hosted"
)

// ImportIssue descreve uma chave ou registro descartado na importação
type ImportIssue struct {
	Key    string `json:"key"`
	Index  *int   `json:"index,omitempty"`
	Reason string `json:"reason"`
}

type ImportReport struct {
	RestaurantID string         `json:"restaurant_id"`
	Source       string         `json:"source"`
	Imported     map[string]int `json:"imported"`
	Skipped      []ImportIssue  `json:"skipped"`
	Ignored      []string       `json:"ignored"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
}

func NewImportReport(restaurantID, source string) *ImportReport {
	return &ImportReport{
		RestaurantID: restaurantID,
		Source:       source,
		Imported:     map[string]int{},
		Skipped:      []ImportIssue{},
		Ignored:      []string{},
		StartedAt:    time.Now(),
	}
}

// Skip registra uma chave inteira descartada
func (r *ImportReport) Skip(key, reason string) {
	r.Skipped = append(r.Skipped, ImportIssue{Key: key, Reason: reason})
}

// SkipRecord registra um registro descartado dentro de uma chave
func (r *ImportReport) SkipRecord(key string, index int, reason string) {
	r.Skipped = append(r.Skipped, ImportIssue{Key: key, Index: &index, Reason: reason})
}

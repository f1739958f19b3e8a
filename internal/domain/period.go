package domain

import "time"

// Period representa um intervalo de datas fechado [Start, End], comparado por dia
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MonthPeriod retorna o mês civil que contém a data informada
func MonthPeriod(ref time.Time) Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: end}
}

// Contains indica se a data está dentro do período, ignorando o horário
func (p Period) Contains(t time.Time) bool {
	day := truncateDay(t)
	return !day.Before(truncateDay(p.Start)) && !day.After(truncateDay(p.End))
}

// IsValid verifica se o fim não é anterior ao início
func (p Period) IsValid() bool {
	return !truncateDay(p.End).Before(truncateDay(p.Start))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseFlexibleDate aceita datas no formato YYYY-MM-DD ou RFC3339
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, dateStr); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, dateStr)
}

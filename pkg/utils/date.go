package utils

import "time"

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ValidDate informa se a string está vazia ou é uma data no formato AAAA-MM-DD
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

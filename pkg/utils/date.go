package utils

import (
	"fmt"
	"regexp"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		if !datePattern.MatchString(dateStr) {
			return nil, fmt.Errorf("data inválida: %q", dateStr)
		}

		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// IsValidMonth verifica o formato yyyy-mm com mês entre 01 e 12
func IsValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}

func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseMonth converte yyyy-mm para o primeiro dia do mês em UTC
func ParseMonth(month string) (time.Time, error) {
	if !IsValidMonth(month) {
		return time.Time{}, fmt.Errorf("mês inválido: %q", month)
	}
	return time.Parse(MonthLayout, month)
}

// PreviousMonth retorna o mês imediatamente anterior pelo calendário (2024-01 -> 2023-12)
func PreviousMonth(month string) (string, error) {
	t, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	return FormatMonth(t.AddDate(0, -1, 0)), nil
}

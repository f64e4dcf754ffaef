package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout   = "2006-01-02"
	PeriodLayout = "01-2006"
)

// ParseDate retorna nil quando a string está vazia
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use o formato YYYY-MM-DD: %w", dateStr, err)
	}

	return &date, nil
}

// ParsePeriod interpreta um período no formato mm-yyyy e retorna o primeiro dia do mês
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, use o formato mm-yyyy: %w", period, err)
	}
	return t, nil
}

func FormatPeriod(t time.Time) string {
	return t.Format(PeriodLayout)
}

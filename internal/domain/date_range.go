package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingDateRange = errors.New("é necessário informar as datas de início e fim")
	ErrInvertedRange    = errors.New("a data de início não pode ser posterior à data de fim")
)

// DateRange é um intervalo fechado [From, To] comparado por data de calendário
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: DateOnly(from), To: DateOnly(to)}
}

func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return ErrMissingDateRange
	}

	if r.From.After(r.To) {
		return ErrInvertedRange
	}

	return nil
}

// Contains indica se a data de t está dentro do intervalo, incluindo as extremidades
func (r DateRange) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}

	d := DateOnly(t)
	return !d.Before(DateOnly(r.From)) && !d.After(DateOnly(r.To))
}

func (r DateRange) Length() time.Duration {
	return r.To.Sub(r.From)
}

// Previous retorna o período imediatamente anterior com a mesma duração
func (r DateRange) Previous() DateRange {
	length := r.Length()
	return DateRange{
		From: r.From.Add(-length),
		To:   r.To.Add(-length),
	}
}

// DateOnly descarta o horário mantendo ano, mês e dia em UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange retorna o primeiro e o último dia do mês de t
func MonthRange(t time.Time) DateRange {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: first, To: first.AddDate(0, 1, -1)}
}

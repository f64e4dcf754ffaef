package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

// DefaultPhoneRegion é usada quando o número não traz o código do país
const DefaultPhoneRegion = "SE"

// NormalizePhone valida o número e o devolve no formato E.164
func NormalizePhone(phone, region string) (string, error) {
	if region == "" {
		region = DefaultPhoneRegion
	}

	p, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("telefone inválido %q: %w", phone, err)
	}

	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("telefone inválido %q", phone)
	}

	return libphonenumber.Format(p, libphonenumber.E164), nil
}

// ValidationDetails converte erros do validator em campo -> regra violada
func ValidationDetails(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		details[ve.Field()] = ve.Tag()
	}
	return details
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os identificadores dos registros
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GenerateInvoiceNumber gera um número de fatura curto, apenas com dígitos
func GenerateInvoiceNumber() (string, error) {
	return gonanoid.Generate("0123456789", 8)
}

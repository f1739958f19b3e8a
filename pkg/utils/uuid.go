package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um código curto, usado como código público do restaurante
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// NewID gera o identificador das entidades
func NewID() string {
	return uuid.New().String()
}

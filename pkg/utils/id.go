package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para registros do domínio
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GenerateObjectName gera um nome único para um objeto de storage,
// preservando a extensão do arquivo original
func GenerateObjectName(filename string) (string, error) {
	id, err := gonanoid.Generate(characters, 16)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return id, nil
	}

	return fmt.Sprintf("%s%s", id, ext), nil
}

package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizar lleva un texto a su forma canónica de comparación: minúsculas,
// sin espacios extremos y sin diacríticos ("Recepción" y "recepcion" son la
// misma clave).
func Normalizar(texto string) string {
	limpio := strings.ToLower(strings.TrimSpace(texto))
	resultado, _, err := transform.String(quitarDiacriticos, limpio)
	if err != nil {
		return limpio
	}
	return resultado
}

func trimCampo(texto string) string {
	return strings.TrimSpace(texto)
}

// campoOpcional devuelve nil para celdas vacías
func campoOpcional(texto string) *string {
	limpio := strings.TrimSpace(texto)
	if limpio == "" {
		return nil
	}
	return &limpio
}

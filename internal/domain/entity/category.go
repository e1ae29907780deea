package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Categorías de producto.
const (
	CategoryJarrones   = "jarrones"
	CategoryPlatos     = "platos"
	CategoryTazas      = "tazas"
	CategoryCuencos    = "cuencos"
	CategoryDecoracion = "decoracion"
	CategoryOtros      = "otros"
)

// Categories lista el enum en el orden en que se presenta al cliente.
var Categories = []string{
	CategoryJarrones,
	CategoryPlatos,
	CategoryTazas,
	CategoryCuencos,
	CategoryDecoracion,
	CategoryOtros,
}

// IsValidCategory indica si c pertenece al enum (ya normalizado).
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// NormalizeCategory pasa a minúsculas y quita tildes: "Decoración " -> "decoracion".
// No valida; un valor fuera del enum se devuelve normalizado igual.
func NormalizeCategory(c string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(c))
	if err != nil {
		out = strings.TrimSpace(c)
	}
	return strings.ToLower(out)
}

// CategoryCount cantidad de productos en una categoría.
type CategoryCount struct {
	Category string
	Count    int
}

package constants

import (
	"strings"
)

type Category string

const (
	Alimentacion    Category = "Alimentación"
	Transporte      Category = "Transporte"
	Salud           Category = "Salud"
	Electronica     Category = "Electrónica"
	Entretenimiento Category = "Entretenimiento"
	Servicios       Category = "Servicios"
	Compras         Category = "Compras"
	Otros           Category = "Otros"
)

// allCategories is declaration order. Classification walks the keyword table
// in this order, so earlier categories win on overlapping keywords.
var allCategories = []Category{
	Alimentacion,
	Transporte,
	Salud,
	Electronica,
	Entretenimiento,
	Servicios,
	Compras,
	Otros,
}

// CategoryKeywords pairs a category with its trigger substrings.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// DefaultCategoryTable returns the canonical ordered keyword table used to
// classify receipts. Otros carries no keywords; it is the fallback.
func DefaultCategoryTable() []CategoryKeywords {
	return []CategoryKeywords{
		{Alimentacion, []string{"supermercado", "mercado", "panadería", "carnicería", "verdulería", "tienda de alimentos", "restaurante", "comida"}},
		{Transporte, []string{"gasolina", "uber", "taxi", "bus", "pasaje", "tren", "auto", "combustible"}},
		{Salud, []string{"farmacia", "medicina", "doctor", "hospital", "médico", "salud"}},
		{Electronica, []string{"electrónica", "tienda tech", "computadora", "teléfono", "laptop"}},
		{Entretenimiento, []string{"cine", "teatro", "juegos", "música", "entretenimiento"}},
		{Servicios, []string{"servicio", "reparación", "plomería", "electricidad", "mantenimiento"}},
		{Compras, []string{"compras", "tienda", "ropa", "calzado", "boutique"}},
	}
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form input onto a known category. Unknown or empty
// input resolves to Otros.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Otros, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Otros, false
}

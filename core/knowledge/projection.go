package knowledge

import (
	"strings"
)

// Placeholder text for absent optional fields. These strings are part of the
// projection contract: changing them changes every embedding on re-ingestion.
const (
	placeholderCookingMethod = "Not specified"
	placeholderDietary       = "None specified"
	placeholderCultural      = "N/A"
	placeholderRegion        = "Various regions"
)

// ProjectionText renders a dish into the text block that is embedded at
// ingestion time. It is deterministic: the same record always produces
// byte-identical output, so re-ingestion regenerates a consistent embedding.
// Field order is fixed and part of the contract.
func ProjectionText(d *Dish) string {
	var dietary []string
	for _, key := range []string{DietaryHalal, DietaryVegetarian, DietaryVegan} {
		if v, ok := d.Dietary(key); ok && v {
			dietary = append(dietary, dietaryLabel(key))
		}
	}

	var b strings.Builder
	writeLine(&b, "Malaysian Dish", d.Name)
	writeLine(&b, "Cuisine Type", d.CuisineType)
	writeLine(&b, "Category", d.Category)
	writeLine(&b, "Description", d.Description)
	writeLine(&b, "Ingredients", strings.Join(d.Ingredients, ", "))
	writeLine(&b, "Cooking Method", optional(d.CookingMethod, placeholderCookingMethod))
	writeLine(&b, "Taste Profile", strings.Join(d.TasteProfile, ", "))
	writeLine(&b, "Dietary", joinOr(dietary, placeholderDietary))
	writeLine(&b, "Cultural Significance", optional(d.CulturalSignificance, placeholderCultural))
	writeLine(&b, "Typical Meal Time", strings.Join(d.TypicalMealTime, ", "))
	writeLine(&b, "Regional Origin", optional(d.RegionalOrigin, placeholderRegion))
	writeLine(&b, "Common Pairings", strings.Join(d.CommonPairings, ", "))
	return strings.TrimSuffix(b.String(), "\n")
}

func dietaryLabel(key string) string {
	switch key {
	case DietaryHalal:
		return "Halal"
	case DietaryVegetarian:
		return "Vegetarian"
	case DietaryVegan:
		return "Vegan"
	case DietaryGlutenFree:
		return "Gluten-free"
	default:
		return key
	}
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func optional(v *string, placeholder string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}

func joinOr(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}

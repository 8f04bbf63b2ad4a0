// Package taxonomy holds the compiled-in category tables.
package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

const (
	CategoryOther = "other"

	// SchoolPayment is the synthetic bucket paid required expenses roll into.
	SchoolPayment      = "School Payment"
	SchoolPaymentColor = "#10B981"

	DefaultColor = "#8C8C8C"
)

var personal = []Category{
	{ID: "food", Name: "Food", Icon: "fast-food", Color: "#10B981"},
	{ID: "transport", Name: "Transport", Icon: "car", Color: "#6EE7B7"},
	{ID: "school", Name: "School Supplies", Icon: "school", Color: "#34D399"},
	{ID: "entertainment", Name: "Entertainment", Icon: "game-controller", Color: "#059669"},
	{ID: "utilities", Name: "Utilities", Icon: "bulb", Color: "#047857"},
	{ID: "shopping", Name: "Shopping", Icon: "cart", Color: "#6EE7B7"},
	{ID: "health", Name: "Health", Icon: "fitness", Color: "#10B981"},
	{ID: CategoryOther, Name: "Other", Icon: "ellipsis-horizontal", Color: "#34D399"},
}

var personalByID = func() map[string]Category {
	m := make(map[string]Category, len(personal))
	for _, c := range personal {
		m[c.ID] = c
	}
	return m
}()

// Colors used by the admin-wide report, which keys on raw category ids.
var reportColors = map[string]string{
	"food":          "#FF6B6B",
	"transport":     "#4ECDC4",
	"education":     "#45B7D1",
	"entertainment": "#F7DC6F",
	"health":        "#52C41A",
	"shopping":      "#FA8C16",
	"bills":         "#EB2F96",
	"others":        "#8C8C8C",
}

var requiredCategories = []string{
	"Tuition",
	"Lab Fee",
	"Library Fee",
	"Registration",
	"Miscellaneous",
	"Other",
}

const DefaultRequiredCategory = "Tuition"

// Personal returns a copy of the personal expense categories.
func Personal() []Category {
	out := make([]Category, len(personal))
	copy(out, personal)
	return out
}

// RequiredCategories returns a copy of the required-expense categories.
func RequiredCategories() []string {
	out := make([]string, len(requiredCategories))
	copy(out, requiredCategories)
	return out
}

func IsPersonal(id string) bool {
	_, ok := personalByID[id]
	return ok
}

func IsRequired(name string) bool {
	for _, c := range requiredCategories {
		if c == name {
			return true
		}
	}
	return false
}

// Lookup resolves a personal category id, falling back to "other".
func Lookup(id string) Category {
	if c, ok := personalByID[id]; ok {
		return c
	}
	return personalByID[CategoryOther]
}

// ReportColor returns the admin report color for a raw category id.
func ReportColor(id string) string {
	if c, ok := reportColors[id]; ok {
		return c
	}
	return DefaultColor
}

// TitleCase upper-cases the first letter of a plain category id.
func TitleCase(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return id
	}
	return string(unicode.ToUpper(r)) + id[size:]
}

// NormalizeCode trims and upper-cases a college or course code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

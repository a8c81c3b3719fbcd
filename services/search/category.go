package search

import "strings"

// Category identifies a semantic faculty category used by the
// facultyCategories filter.
type Category string

const (
	CategoryEngineering Category = "engineering"
	CategoryMedicine    Category = "medicine"
	CategorySocial      Category = "social"
	CategoryScience     Category = "science"
	CategoryEducation   Category = "education"
	CategoryLaw         Category = "law"
	CategoryBusiness    Category = "business"
)

// CategoryDef couples a category id with its display name and the Turkish
// keyword substrings that classify a faculty name into it.
type CategoryDef struct {
	ID       Category
	Name     string
	Keywords []string
}

// Categories is the fixed classification table, in display order.
var Categories = []CategoryDef{
	{ID: CategoryEngineering, Name: "Mühendislik", Keywords: []string{"mühendislik", "teknik"}},
	{ID: CategoryMedicine, Name: "Tıp ve Sağlık", Keywords: []string{"tıp", "sağlık"}},
	{ID: CategorySocial, Name: "Sosyal Bilimler", Keywords: []string{"sosyal", "edebiyat", "iktisadi"}},
	{ID: CategoryScience, Name: "Fen Bilimleri", Keywords: []string{"fen", "bilim"}},
	{ID: CategoryEducation, Name: "Eğitim", Keywords: []string{"eğitim", "öğretmen"}},
	{ID: CategoryLaw, Name: "Hukuk", Keywords: []string{"hukuk"}},
	{ID: CategoryBusiness, Name: "İşletme ve Ticaret", Keywords: []string{"işletme", "ticaret"}},
}

var categoryKeywords = func() map[Category][]string {
	m := make(map[Category][]string, len(Categories))
	for _, def := range Categories {
		m[def.ID] = def.Keywords
	}
	return m
}()

// Categorize classifies a faculty name into zero or more categories.
// Matching is keyword-substring based and case-insensitive; the categories
// are not mutually exclusive.
func Categorize(facultyName string) []Category {
	name := strings.ToLower(facultyName)
	var matched []Category
	for _, def := range Categories {
		for _, keyword := range def.Keywords {
			if strings.Contains(name, keyword) {
				matched = append(matched, def.ID)
				break
			}
		}
	}
	return matched
}

// matchesAnyCategory reports whether the faculty name belongs to at least
// one of the requested categories. Unknown category ids never match.
func matchesAnyCategory(facultyName string, requested []string) bool {
	name := strings.ToLower(facultyName)
	for _, id := range requested {
		for _, keyword := range categoryKeywords[Category(id)] {
			if strings.Contains(name, keyword) {
				return true
			}
		}
	}
	return false
}

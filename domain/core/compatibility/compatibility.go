// Package compatibility decides whether two animals may share an aviary.
//
// The policy is a small table of exclusion rules over (species, category)
// pairs. Rules are written one-directionally, so every check is evaluated
// from both sides before a pair is declared safe.
package compatibility

// Category is the biological classification of an animal
type Category string

const (
	CategoryMammal    Category = "Mammal"
	CategoryBird      Category = "Bird"
	CategoryReptile   Category = "Reptile"
	CategoryFish      Category = "Fish"
	CategoryAmphibian Category = "Amphibian"
	CategoryInsect    Category = "Insect"
	CategoryArachnid  Category = "Arachnid"
)

// KnownCategories lists every category accepted by the system
var KnownCategories = []Category{
	CategoryMammal,
	CategoryBird,
	CategoryReptile,
	CategoryFish,
	CategoryAmphibian,
	CategoryInsect,
	CategoryArachnid,
}

// IsKnownCategory reports whether c is one of the defined categories
func IsKnownCategory(c Category) bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Subject is the (species, category) view of an animal used by the rules
type Subject struct {
	Species  string
	Category Category
}

// Rule is a one-directional exclusion over a pair of subjects.
// Empty fields match anything; populated fields must all match for the rule
// to fire. The first subject is matched against the Species/Category side,
// the second against the Other* side.
type Rule struct {
	Name string

	Species  string
	Category Category

	OtherSpecies    string
	OtherCategories []Category
}

// matches reports whether the rule, read one-directionally, excludes (a, b)
func (r Rule) matches(a, b Subject) bool {
	if r.Species != "" && a.Species != r.Species {
		return false
	}
	if r.Category != "" && a.Category != r.Category {
		return false
	}
	if r.OtherSpecies != "" && b.Species != r.OtherSpecies {
		return false
	}
	if len(r.OtherCategories) > 0 {
		found := false
		for _, c := range r.OtherCategories {
			if b.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Rules is the exclusion table. Order is not significant; any firing rule
// makes the pair incompatible.
var Rules = []Rule{
	{Name: "predator rivalry: lion vs tiger", Species: "Lion", OtherSpecies: "Tiger"},
	{Name: "predator rivalry: wolf vs bear", Species: "Wolf", OtherSpecies: "Bear"},
	{Name: "bird rivalry: eagle vs parrot", Species: "Eagle", OtherSpecies: "Parrot"},
	{Name: "bird rivalry: owl vs crow", Species: "Owl", OtherSpecies: "Crow"},
	{
		Name:            "snake vs mammals and birds",
		Species:         "Snake",
		OtherCategories: []Category{CategoryMammal, CategoryBird},
	},
	{
		Name:            "piranha vs any tank mate",
		Species:         "Piranha",
		Category:        CategoryFish,
		OtherCategories: []Category{CategoryFish},
	},
	{
		Name:            "amphibians vs insects",
		Category:        CategoryAmphibian,
		OtherCategories: []Category{CategoryInsect},
	},
	{
		Name:            "arachnids vs small species",
		Category:        CategoryArachnid,
		OtherCategories: []Category{CategoryInsect, CategoryAmphibian, CategoryFish},
	},
}

// Compatible reports whether a and b may coexist in the same aviary.
// Every rule is evaluated in both directions, so one-sided rule definitions
// cannot produce asymmetric verdicts.
func Compatible(a, b Subject) bool {
	for _, r := range Rules {
		if r.matches(a, b) || r.matches(b, a) {
			return false
		}
	}
	return true
}

// Violation returns the name of the first rule excluding the pair, or ""
// when the pair is compatible. Useful for logging admission rejections.
func Violation(a, b Subject) string {
	for _, r := range Rules {
		if r.matches(a, b) || r.matches(b, a) {
			return r.Name
		}
	}
	return ""
}

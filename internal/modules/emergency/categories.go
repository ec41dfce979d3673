package emergency

import "strings"

// Category is one of the ten canonical expense categories.
type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHealthcare     Category = "healthcare"
	CategoryEntertainment  Category = "entertainment"
	CategorySubscriptions  Category = "subscriptions"
	CategoryDiningOut      Category = "dining_out"
	CategoryShopping       Category = "shopping"
	CategoryUtilities      Category = "utilities"
	CategoryInsurance      Category = "insurance"
)

// AllCategories lists the canonical categories in a fixed iteration order.
var AllCategories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryHealthcare,
	CategoryEntertainment,
	CategorySubscriptions,
	CategoryDiningOut,
	CategoryShopping,
	CategoryUtilities,
	CategoryInsurance,
}

// ReductionPotential is the maximum fraction of each category that can be cut.
// Fixed constants; never mutated.
var ReductionPotential = map[Category]float64{
	CategoryHousing:        0.10, // Moving is slow and expensive
	CategoryFood:           0.30, // Cheaper groceries, meal planning
	CategoryTransportation: 0.40, // Transit, carpooling, fewer trips
	CategoryHealthcare:     0.05, // Essentially non-discretionary
	CategoryEntertainment:  0.90, // Nearly all discretionary
	CategorySubscriptions:  0.95, // Cancel almost everything
	CategoryDiningOut:      0.85, // Cook at home
	CategoryShopping:       0.80, // Defer non-essential purchases
	CategoryUtilities:      0.25, // Conservation only
	CategoryInsurance:      0.15, // Raise deductibles, shop around
}

// ImplementationSpeed is the number of months needed to fully realize each
// category's cut. Fixed constants; never mutated.
var ImplementationSpeed = map[Category]float64{
	CategoryHousing:        4.0, // Lease breaks, moving
	CategoryFood:           1.0,
	CategoryTransportation: 1.5,
	CategoryHealthcare:     2.0,
	CategoryEntertainment:  0.5,
	CategorySubscriptions:  0.5,
	CategoryDiningOut:      0.5,
	CategoryShopping:       1.0,
	CategoryUtilities:      1.5,
	CategoryInsurance:      2.0, // Policy renewal cycles
}

// TypicalDistribution is the fallback category breakdown (fraction of total
// spend) used when the caller provides no expense breakdown. Sums to 1.0.
var TypicalDistribution = map[Category]float64{
	CategoryHousing:        0.35,
	CategoryFood:           0.12,
	CategoryTransportation: 0.12,
	CategoryHealthcare:     0.08,
	CategoryEntertainment:  0.05,
	CategorySubscriptions:  0.03,
	CategoryDiningOut:      0.08,
	CategoryShopping:       0.07,
	CategoryUtilities:      0.06,
	CategoryInsurance:      0.04,
}

// categoryKeywords maps substrings of caller-provided expense names to
// canonical categories. First match in declaration order wins.
var categoryKeywords = []struct {
	substr   string
	category Category
}{
	{"rent", CategoryHousing},
	{"mortgage", CategoryHousing},
	{"hous", CategoryHousing},
	{"grocer", CategoryFood},
	{"food", CategoryFood},
	{"transport", CategoryTransportation},
	{"car", CategoryTransportation},
	{"gas", CategoryTransportation},
	{"commut", CategoryTransportation},
	{"health", CategoryHealthcare},
	{"medic", CategoryHealthcare},
	{"entertain", CategoryEntertainment},
	{"stream", CategorySubscriptions},
	{"subscri", CategorySubscriptions},
	{"dining", CategoryDiningOut},
	{"restaurant", CategoryDiningOut},
	{"eat", CategoryDiningOut},
	{"util", CategoryUtilities},
	{"electric", CategoryUtilities},
	{"water", CategoryUtilities},
	{"insur", CategoryInsurance},
	{"shop", CategoryShopping},
}

// MapCategory maps a free-form expense name to a canonical category via
// substring matching. Unmatched names fall back to shopping (general
// discretionary spending).
func MapCategory(name string) Category {
	lower := strings.ToLower(name)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.substr) {
			return kw.category
		}
	}
	return CategoryShopping
}

package categorizer

import "finsight/statement-csv/internal/models"

// defaultTaxonomy is the built-in keyword vocabulary, ordered by tagger
// priority. A user-provided categories.yaml extends or overrides these sets;
// the category names themselves are fixed.
var defaultTaxonomy = []models.CategoryConfig{
	{
		Name: models.CategoryFood,
		Keywords: []string{
			"restaurant", "food", "swiggy", "zomato", "pizza", "burger",
			"cafe", "lunch", "dinner", "breakfast", "meal", "dominos",
			"mcdonald", "kfc", "subway", "starbucks", "dunkin",
		},
	},
	{
		Name: models.CategoryTransport,
		Keywords: []string{
			"uber", "ola", "taxi", "metro", "bus", "petrol", "fuel",
			"parking", "transport", "rapido", "auto", "train", "flight",
			"airline",
		},
	},
	{
		Name: models.CategoryShopping,
		Keywords: []string{
			"amazon", "flipkart", "myntra", "shopping", "mall", "store",
			"purchase", "ajio", "meesho", "nykaa", "supermarket", "grocery",
		},
	},
	{
		Name: models.CategoryEntertainment,
		Keywords: []string{
			"movie", "netflix", "prime", "spotify", "hotstar", "cinema",
			"theatre", "pvr", "inox", "disney", "youtube", "game",
		},
	},
	{
		Name: models.CategoryBills,
		Keywords: []string{
			"electricity", "water", "gas", "internet", "broadband",
			"mobile", "bill", "utility", "recharge", "airtel", "jio",
			"vi", "bsnl",
		},
	},
	{
		Name: models.CategoryHealthcare,
		Keywords: []string{
			"hospital", "pharmacy", "medicine", "doctor", "clinic",
			"medical", "apollo", "medplus", "health", "pharma",
		},
	},
	{
		Name: models.CategoryEducation,
		Keywords: []string{
			"school", "college", "course", "book", "education", "tuition",
			"udemy", "coursera", "university", "fees",
		},
	},
}

// DefaultTaxonomy returns a copy of the built-in category keyword sets.
// Keyword slices are copied too, so callers can extend them freely.
func DefaultTaxonomy() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(defaultTaxonomy))
	for i, c := range defaultTaxonomy {
		out[i] = models.CategoryConfig{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}

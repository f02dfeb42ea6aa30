// Package taxonomy folds free-form merchant category tags into the eight
// umbrella spending categories.
//
// The tag tables are case-sensitive, declared per umbrella in the canonical
// category order, and flattened once at package init into a reverse index
// (raw tag -> umbrella) so classification is a single map lookup. A tag
// claimed by two umbrellas resolves to the first declared one; the index
// build skips tags already present.
package taxonomy

import "github.com/rickeychiu/budgeteer/internal/core"

// rawTags maps each umbrella to the raw tags it owns. The upstream source
// attaches these tags as-is; the lists include brand names, generic nouns,
// and vendor-specific spellings, so they are matched exactly.
var rawTags = map[core.Category][]string{
	core.CategoryShopping: {
		"shopping", "Shopping", "department store", "Department Store",
		"department_store", "shopping_mall", "Store", "store", "retail",
		"Retail", "Wholesale", "clothing_store", "Clothing", "clothing",
		"Clothes", "Fashion", "athletic wear", "shoe_store", "jewelry_store",
		"Jewelry", "furniture_store", "Furniture", "FURNITURE", "home_goods_store",
		"hardware_store", "book_store", "florist", "Electronics", "electronics",
		"electronics_store", "Tech", "tech", "Technology", "laptop", "phones",
		"Headphones", "bicycle_store", "pet_store", "pets", "Dogs", "dog",
		"Office Supplies", "School Supplies", "Textbooks", "convenience_store",
		"convenience", "Convenience Store", "Cosmetics", "Beauty", "beauty_salon",
		"Hair Salon", "hair_care", "Manicure", "specialty", "necessities",
		"essentials", "Online Vendor", "Merchandising",
	},
	core.CategoryFoodDining: {
		"Food", "food", "Food and Beverage", "Restaurant", "restaurant",
		"Restaurants", "fast food", "fastfood", "Cafe", "cafe", "Coffee",
		"coffee", "bar", "Bars", "Drinks", "drink", "liquor_store",
		"Groceries", "groceries", "Grocery", "grocery", "grocery store",
		"grocery_or_supermarket", "Supermarket", "supermarket", "market",
		"bakery", "Baked Goods", "Pizza Restaurant", "pizza", "tacos",
		"Burritos", "burritos", "TexMex", "sandwiches", "Salads", "salads",
		"barbecue", "American Restaurant", "American", "French", "Indian",
		"meal_delivery", "meal_takeaway", "catering", "night_club",
		"Night Club", "Pharmacy, Food, Grocery",
	},
	core.CategorySavings: {
		"Bank", "bank", "Banking", "finance", "investing", "loan",
		"Credit Card", "Cards", "atm", "Exchange", "Rewards",
	},
	core.CategoryEntertainment: {
		"Entertainment", "entertainment", "enterntainment", "Fun", "fun",
		"Music", "music", "musician", "Musician", "Music Label", "musica",
		"recordCompany", "orchestra", "movie", "movie_theater", "Film",
		"video", "tv", "casino", "amusement_park", "bowling_alley",
		"zoo", "museum", "art_gallery", "stadium", "Sports", "sports",
		"BBall", "park", "Rec", "Vacation", "Travel", "travel",
		"travel_agency", "Hotel", "Lodging", "lodging", "Hospitality",
		"flights", "airline", "Car Rental", "car rental", "car_rental",
	},
	core.CategoryBills: {
		"Utilities", "bill", "electricity", "Power", "Energy", "rent",
		"insurance_agency", "Internet", "internet", "Web", "laundry",
		"Laundry", "storage", "parking",
	},
	core.CategoryHealthFitness: {
		"Health", "health", "Healthcare", "gym", "spa", "Pharmacy",
		"pharmacy", "drugs", "hospital", "doctor", "veterinary_care",
	},
	core.CategoryTransportation: {
		"Transportation", "transportation", "Transport", "car", "Cars",
		"Automobile", "car_dealer", "car_repair", "car_wash", "gas_station",
		"gas", "fuel", "oil",
	},
	core.CategoryMiscellaneous: {
		"General", "general", "GENERAL", "Other", "Default", "Category",
		"establishment", "point_of_interest", "library", "school",
		"university", "Education", "education", "Real Estate",
		"real_estate_agency", "Residential", "moving_company", "locksmith",
		"general_contractor", "post_office", "local_government_office",
		"government", "Charity", "charity", "Non-Profit", "non-profit",
		"nonprofit", "funeral_home", "Global", "Sustainability",
		"Environment", "Children", "Women", "Disabled", "Low-Income",
		"Justice", "Christian", "Farming", "premise", "natural_feature",
		"U.S.", "NYC", "Africa", "Digital Solutions Company", "owner",
		"Senator", "Personal", "everything", "stuff", "Hackathon",
		"hackathon", "Marvel",
	},
}

// index is the flattened reverse lookup, built once at init.
var index = buildIndex()

func buildIndex() map[string]core.Category {
	idx := make(map[string]core.Category)
	for _, umbrella := range core.Categories() {
		for _, tag := range rawTags[umbrella] {
			if _, claimed := idx[tag]; claimed {
				continue // first declared umbrella wins
			}
			idx[tag] = umbrella
		}
	}
	return idx
}

// Classify maps a raw merchant tag to its umbrella category. It is total:
// an empty or unrecognized tag falls back to Miscellaneous rather than
// failing, so a purchase always lands in some bucket.
func Classify(rawTag string) core.Category {
	if rawTag == "" {
		return core.CategoryMiscellaneous
	}
	if umbrella, ok := index[rawTag]; ok {
		return umbrella
	}
	return core.CategoryMiscellaneous
}

// Size reports how many distinct raw tags the index covers.
func Size() int {
	return len(index)
}

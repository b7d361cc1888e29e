package domain

// Option is a selectable facet value with its display label.
type Option struct {
	Value string
	Label string
}

// Categories lists the category facet, "all" first.
func Categories() []Option {
	return []Option{
		{Value: All, Label: "All Categories"},
		{Value: "paper", Label: "Paper Products"},
		{Value: "printers", Label: "Laser Printers"},
		{Value: "electronics", Label: "Electronic Goods"},
	}
}

// SortOptions lists the sort facet, default first.
func SortOptions() []Option {
	return []Option{
		{Value: string(SortFeatured), Label: "Featured"},
		{Value: string(SortNewest), Label: "Newest"},
		{Value: string(SortPriceLow), Label: "Price: Low to High"},
		{Value: string(SortPriceHigh), Label: "Price: High to Low"},
		{Value: string(SortRating), Label: "Highest Rated"},
		{Value: string(SortPopularity), Label: "Most Popular"},
	}
}

// PriceRanges lists the price facet; every value parses with ParsePriceRange.
func PriceRanges() []Option {
	return []Option{
		{Value: All, Label: "All Prices"},
		{Value: "0-25", Label: "$0 - $25"},
		{Value: "25-50", Label: "$25 - $50"},
		{Value: "50-100", Label: "$50 - $100"},
		{Value: "100-250", Label: "$100 - $250"},
		{Value: "250+", Label: "$250+"},
	}
}

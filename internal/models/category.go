package models

import "strings"

// Category is the fixed set of food categories an item can belong to.
type Category string

const (
	CategoryDairy     Category = "Dairy"
	CategoryProduce   Category = "Produce"
	CategoryMeat      Category = "Meat"
	CategoryBeverage  Category = "Beverage"
	CategorySnack     Category = "Snack"
	CategoryCondiment Category = "Condiment"
	CategoryOther     Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryDairy,
	CategoryProduce,
	CategoryMeat,
	CategoryBeverage,
	CategorySnack,
	CategoryCondiment,
	CategoryOther,
}

// ParseCategory matches s case-insensitively against the display names.
// Anything unknown, including the empty string, maps to CategoryOther.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOther
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

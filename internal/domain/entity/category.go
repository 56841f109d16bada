// Package entity contains the core business objects of the project.
package entity

import "slices"

// Category represents the catalog category a book is filed under.
type Category string

const (
	// CategoryFiction indicates fiction titles.
	CategoryFiction Category = "fiction"
	// CategoryNonFiction indicates non-fiction titles.
	CategoryNonFiction Category = "non_fiction"
	// CategoryScience indicates science titles.
	CategoryScience Category = "science"
	// CategoryTechnology indicates technology titles.
	CategoryTechnology Category = "technology"
	// CategoryHistory indicates history titles.
	CategoryHistory Category = "history"
	// CategoryBiography indicates biography titles.
	CategoryBiography Category = "biography"
	// CategoryMystery indicates mystery titles.
	CategoryMystery Category = "mystery"
	// CategoryRomance indicates romance titles.
	CategoryRomance Category = "romance"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// Categories returns every valid catalog category.
func Categories() []Category {
	return []Category{
		CategoryFiction,
		CategoryNonFiction,
		CategoryScience,
		CategoryTechnology,
		CategoryHistory,
		CategoryBiography,
		CategoryMystery,
		CategoryRomance,
	}
}

// Package entity defines the domain models for the moodcatalog feature.
package entity

// Mood is one entry of the fixed mood vocabulary.
// Codes are short lowercase identifiers and never change once seeded.
type Mood struct {
	ID      uint   `gorm:"primaryKey"`
	Code    string `gorm:"size:32;not null;uniqueIndex"`
	Label   string `gorm:"size:64;not null"`
	SortKey int    `gorm:"not null;default:0"`
}

// DefaultMoods returns the seed vocabulary in display order.
func DefaultMoods() []Mood {
	return []Mood{
		{Code: "okay", Label: "Okay", SortKey: 1},
		{Code: "sad", Label: "Sad", SortKey: 2},
		{Code: "anxious", Label: "Anxious", SortKey: 3},
		{Code: "frustrated", Label: "Frustrated", SortKey: 4},
		{Code: "numb", Label: "Numb", SortKey: 5},
	}
}

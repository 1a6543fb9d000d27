package model

// Event is a catalog entry seeded at startup and immutable afterwards.
type Event struct {
	Model
	Description string `gorm:"type:text;not null" json:"description"`
	MaxMarks    int    `gorm:"not null" json:"max_marks"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
}

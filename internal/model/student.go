package model

// Student is created by seeding only; there is no registration or delete path.
// Passwords are stored as plain lowercase strings to keep parity with the
// system being replaced. Do not reuse this scheme elsewhere.
type Student struct {
	Model
	Username     string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	Password     string        `gorm:"type:varchar(20);not null" json:"-"`
	TotalMarks   int           `gorm:"default:0;not null" json:"total_marks"`
	Certificates []Certificate `gorm:"foreignKey:StudentID" json:"-"`
}

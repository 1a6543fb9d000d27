package model

import "time"

type CertificateStatus string

const (
	StatusPending  CertificateStatus = "pending"
	StatusApproved CertificateStatus = "approved"
	StatusRejected CertificateStatus = "rejected"
)

// Certificate is an uploaded proof of participation awaiting admin review.
// Approved and Status are redundant but both are part of the stored shape;
// every transition must write the pair together so they never drift apart.
type Certificate struct {
	Model
	StudentID      uint              `gorm:"not null;index" json:"student_id"`
	EventID        uint              `gorm:"not null;index" json:"event_id"`
	Filename       string            `gorm:"type:varchar(255);not null" json:"filename"`
	UploadDate     time.Time         `json:"upload_date"`
	Status         CertificateStatus `gorm:"type:varchar(20);default:'pending';not null" json:"status"`
	MarksAllocated int               `gorm:"default:0;not null" json:"marks_allocated"`
	Remarks        string            `gorm:"type:text" json:"remarks"`
	Approved       bool              `gorm:"default:false;not null" json:"approved"`

	Student Student `gorm:"foreignKey:StudentID;references:ID" json:"-"`
	Event   Event   `gorm:"foreignKey:EventID;references:ID" json:"-"`
}

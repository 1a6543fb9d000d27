package database

import (
	"fmt"
	"strings"

	"skill-marks-system/internal/model"

	"gorm.io/gorm"
)

// rosterSize is the number of seeded student accounts (24UCS001..24UCS190).
const rosterSize = 190

type eventSeed struct {
	description string
	maxMarks    int
	category    string
}

var eventCatalog = []eventSeed{
	{"Paper Presentation in Symposium", 2, "academic"},
	{"Tech Competitions Participation (Quiz, Technical competitive events)", 1, "technical"},
	{"Paper Presentation in NIT, IIT, PSG Tech, NITTR, VIT & Outside State paper presentation event", 5, "academic"},
	{"Technical Competition Winning", 1, "technical"},
	{"Proposal Submission (TNSCST, FAER, Hackathon, MSME, IE / Professional Chapter and Project Proposal Submission)", 4, "research"},
	{"NPTEL Online Certification Courses Completion", 3, "certification"},
	{"Professional Chapter Registration (CAY) excluding ISTE", 1, "professional"},
	{"Paper Presentation & Conference", 3, "academic"},
	{"Tech Mag article publishing newsletter", 1, "publication"},
	{"Participating National Design contest", 3, "technical"},
	{"Niral Thiruvizha / Local Industry project participation & solution generation through KCET Incubation Cell", 5, "industry"},
	{"Entrepreneurship and Startups / Patent Filling / SCI / Scopus Journal", 5, "research"},
	{"Approved Certification Courses from Dean (Academic Courses) example: Infosys, IBM, CCNA etc.,", 3, "certification"},
	{"National / District / Zonal level Sports participation", 3, "sports"},
	{"National / District / Zonal level Sports Winning / University team representation", 5, "sports"},
	{"Yoga / NCC / NSS / UBA / Programmers Club / Standards Club / Tech Beats / Tech Band / Fine Arts - Active participation", 2, "extracurricular"},
	{"SIH Participation", 2, "technical"},
	{"Internship through Placement", 3, "professional"},
}

// Seed inserts the fixed student roster and event catalog on first run. It is
// idempotent: once any row exists in a table, that table is left untouched.
// Each seeded password defaults to the lowercased username, a known-weak
// scheme kept for parity with the system being replaced.
func Seed(db *gorm.DB) error {
	var studentCount int64
	if err := db.Model(&model.Student{}).Count(&studentCount).Error; err != nil {
		return err
	}
	if studentCount == 0 {
		students := make([]model.Student, 0, rosterSize)
		for i := 1; i <= rosterSize; i++ {
			username := fmt.Sprintf("24UCS%03d", i)
			students = append(students, model.Student{
				Username: username,
				Password: strings.ToLower(username),
			})
		}
		if err := db.CreateInBatches(&students, 50).Error; err != nil {
			return err
		}
	}

	var eventCount int64
	if err := db.Model(&model.Event{}).Count(&eventCount).Error; err != nil {
		return err
	}
	if eventCount == 0 {
		events := make([]model.Event, 0, len(eventCatalog))
		for _, e := range eventCatalog {
			events = append(events, model.Event{
				Description: e.description,
				MaxMarks:    e.maxMarks,
				Category:    e.category,
			})
		}
		if err := db.Create(&events).Error; err != nil {
			return err
		}
	}

	return nil
}

// Package classify maps an event description to an informational validity
// remark. No file content is inspected: the uploaded filename is kept only as
// an artifact reference, and the verdict never gates upload or review — final
// acceptance is always a manual admin decision.
package classify

import (
	"fmt"
	"strings"
)

type markerEntry struct {
	Marker   string
	Keywords []string
}

// markers is ordered: the first marker found as a substring of the event
// description wins, so more specific phrases must come before generic ones.
var markers = []markerEntry{
	{"Paper Presentation", []string{"paper", "presentation", "symposium", "conference"}},
	{"Tech Competitions", []string{"competition", "quiz", "technical", "contest"}},
	{"NIT, IIT", []string{"NIT", "IIT", "PSG", "NITTR", "VIT"}},
	{"Technical Competition Winning", []string{"winner", "first prize", "second prize", "third prize", "award"}},
	{"Proposal Submission", []string{"proposal", "TNSCST", "FAER", "hackathon", "MSME", "project"}},
	{"NPTEL", []string{"NPTEL", "online course", "certification"}},
	{"Professional Chapter", []string{"chapter", "CAY", "professional"}},
	{"Tech Mag", []string{"magazine", "newsletter", "article", "publish"}},
	{"Design contest", []string{"design", "contest", "competition"}},
	{"Niral Thiruvizha", []string{"niral", "thiruvizha", "incubation", "KCET"}},
	{"Entrepreneurship", []string{"entrepreneur", "startup", "patent", "journal", "SCI", "Scopus"}},
	{"Certification Courses", []string{"certification", "Infosys", "IBM", "CCNA", "course"}},
	{"Sports", []string{"sports", "tournament", "championship", "games"}},
	{"Yoga", []string{"yoga", "NCC", "NSS", "UBA", "club", "fine arts"}},
	{"SIH", []string{"SIH", "Smart India", "hackathon"}},
	{"Internship", []string{"internship", "placement", "training"}},
}

const noMatchRemark = "Certificate does not match the event requirements"

// Analyze returns whether the certificate looks plausible for the event and a
// human-readable remark. The first argument is the stored filename; it is not
// opened, keyword extraction from file content is explicitly out of scope.
func Analyze(_, eventDescription string) (bool, string) {
	for _, entry := range markers {
		if strings.Contains(eventDescription, entry.Marker) {
			return true, fmt.Sprintf("Certificate appears to be valid for %s", entry.Marker)
		}
	}
	return false, noMatchRemark
}

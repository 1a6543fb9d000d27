package classify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeMatchesFirstMarker(t *testing.T) {
	valid, remark := Analyze("cert.pdf", "Paper Presentation in Symposium")
	require.True(t, valid)
	require.Contains(t, remark, "Paper Presentation")
}

func TestAnalyzeNoMatch(t *testing.T) {
	valid, remark := Analyze("cert.pdf", "Completely unrelated activity")
	require.False(t, valid)
	require.Equal(t, "Certificate does not match the event requirements", remark)
}

func TestAnalyzeOrderIsSignificant(t *testing.T) {
	// "Tech Competitions" precedes "Technical Competition Winning" in the
	// table, so a description containing both resolves to the former.
	valid, remark := Analyze("cert.pdf", "Tech Competitions and Technical Competition Winning")
	require.True(t, valid)
	require.Contains(t, remark, "Tech Competitions")
	require.NotContains(t, remark, "Winning")
}

func TestAnalyzeIgnoresFilename(t *testing.T) {
	_, withName := Analyze("paper_presentation.pdf", "No matching description")
	_, without := Analyze("", "No matching description")
	require.Equal(t, withName, without)
}

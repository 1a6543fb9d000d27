package session

import (
	"testing"

	"skill-marks-system/config"

	"github.com/stretchr/testify/require"
)

func setupConfig() {
	config.Reset(&config.Config{
		Mode:    config.ModeDebug,
		Session: config.Session{Secret: "test-secret", Expire: 3600},
	})
}

func TestStudentTokenRoundTrip(t *testing.T) {
	setupConfig()

	claims := NewStudent(42, "24UCS042")
	token := CreateToken(claims)

	parsed, ok := ParseToken(token)
	require.True(t, ok)
	require.EqualValues(t, 42, parsed.StudentID)
	require.Equal(t, "24UCS042", parsed.Username)
	require.False(t, parsed.Admin)
	require.NotEmpty(t, parsed.SID)
}

func TestAdminToken(t *testing.T) {
	setupConfig()

	parsed, ok := ParseToken(CreateToken(NewAdmin()))
	require.True(t, ok)
	require.True(t, parsed.Admin)
	require.Zero(t, parsed.StudentID)
}

func TestParseRejectsGarbage(t *testing.T) {
	setupConfig()

	_, ok := ParseToken("not-a-token")
	require.False(t, ok)
}

func TestSIDsAreUnique(t *testing.T) {
	setupConfig()

	a := NewStudent(1, "24UCS001")
	b := NewStudent(1, "24UCS001")
	require.NotEqual(t, a.SID, b.SID)
}

package student_test

import (
	"net/http"
	"net/url"
	"testing"

	"skill-marks-system/test"

	"github.com/stretchr/testify/require"
)

type dashboardData struct {
	Student struct {
		Username   string `json:"username"`
		TotalMarks int    `json:"total_marks"`
	} `json:"student"`
	Events []struct {
		ID       uint `json:"id"`
		MaxMarks int  `json:"max_marks"`
	} `json:"events"`
	Certificates []struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	} `json:"certificates"`
	Messages []string `json:"messages"`
}

func TestRootRedirectsToLogin(t *testing.T) {
	r := test.Setup(t)
	w := test.Get(t, r, "/")
	test.RedirectsTo(t, w, "/login")
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	w := test.Get(t, r, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var data dashboardData
	test.Data(t, w, &data)
	require.Equal(t, "24UCS001", data.Student.Username)
	require.Zero(t, data.Student.TotalMarks)
	require.Len(t, data.Events, 18)
	require.Empty(t, data.Certificates)
	require.Contains(t, data.Messages, "Login successful!")
}

func TestLoginPasswordIsCaseInsensitive(t *testing.T) {
	r := test.Setup(t)
	// Stored password is the lowercased username; the submitted password is
	// lowercased before comparison.
	w := test.PostForm(t, r, "/login", url.Values{
		"username": {"24UCS002"},
		"password": {"24UCS002"},
	})
	test.RedirectsTo(t, w, "/dashboard")
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	r := test.Setup(t)

	for _, form := range []url.Values{
		{"username": {"24UCS001"}, "password": {"wrong"}},
		{"username": {"ghost"}, "password": {"ghost"}},
		{"username": {""}, "password": {""}},
	} {
		w := test.PostForm(t, r, "/login", form)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Messages []string `json:"messages"`
		}
		test.Data(t, w, &data)
		require.Contains(t, data.Messages, "Invalid username or password")

		for _, ck := range w.Result().Cookies() {
			require.NotEqual(t, "session", ck.Name)
		}
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	r := test.Setup(t)
	w := test.Get(t, r, "/dashboard")
	test.RedirectsTo(t, w, "/login")
}

func TestLogoutDropsAuthentication(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS003")

	w := test.Get(t, r, "/logout", cookie)
	test.RedirectsTo(t, w, "/login")

	// The replacement cookie carries no identity.
	after := test.SessionCookie(t, w)
	test.RedirectsTo(t, test.Get(t, r, "/dashboard", after), "/login")
}

func TestLogoutFlashesGoodbyeMessage(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS003")

	w := test.Get(t, r, "/logout", cookie)
	test.RedirectsTo(t, w, "/login")
	after := test.SessionCookie(t, w)

	var data struct {
		Messages []string `json:"messages"`
	}
	test.Data(t, test.Get(t, r, "/login", after), &data)
	require.Contains(t, data.Messages, "You have been logged out")
}

func TestDashboardMessagesAreDrainedOnce(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS004")

	var first, second dashboardData
	test.Data(t, test.Get(t, r, "/dashboard", cookie), &first)
	require.NotEmpty(t, first.Messages)

	test.Data(t, test.Get(t, r, "/dashboard", cookie), &second)
	require.Empty(t, second.Messages)
}

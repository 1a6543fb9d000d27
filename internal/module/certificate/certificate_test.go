package certificate_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"skill-marks-system/config"
	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/model"
	"skill-marks-system/test"

	"github.com/stretchr/testify/require"
)

func TestUploadCreatesPendingCertificate(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"certificate", "my symposium cert.pdf", []byte("pdf-bytes"),
		cookie)
	test.RedirectsTo(t, w, "/dashboard")

	var certs []model.Certificate
	require.NoError(t, database.DB.Find(&certs).Error)
	require.Len(t, certs, 1)

	cert := certs[0]
	require.Equal(t, model.StatusPending, cert.Status)
	require.Zero(t, cert.MarksAllocated)
	require.False(t, cert.Approved)
	require.EqualValues(t, 1, cert.EventID)
	require.Equal(t, "my_symposium_cert.pdf", cert.Filename)
	// Event 1 is "Paper Presentation in Symposium".
	require.Contains(t, cert.Remarks, "Paper Presentation")

	var student model.Student
	require.NoError(t, database.DB.Where("username = ?", "24UCS001").First(&student).Error)
	require.Equal(t, student.ID, cert.StudentID)
}

func TestUploadPendingEvenWhenClassificationFails(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	// A catalog-external event whose description matches no marker phrase.
	event := model.Event{Description: "Unrelated gathering", MaxMarks: 2, Category: "misc"}
	require.NoError(t, database.DB.Create(&event).Error)

	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": fmt.Sprint(event.ID)},
		"certificate", "anything.pdf", []byte("bytes"),
		cookie)
	test.RedirectsTo(t, w, "/dashboard")

	var cert model.Certificate
	require.NoError(t, database.DB.First(&cert).Error)
	require.Equal(t, model.StatusPending, cert.Status)
	require.Zero(t, cert.MarksAllocated)
	require.Equal(t, "Certificate does not match the event requirements", cert.Remarks)
}

func TestUploadWithoutFile(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"", "", nil,
		cookie)
	test.RedirectsTo(t, w, "/dashboard")

	var count int64
	require.NoError(t, database.DB.Model(&model.Certificate{}).Count(&count).Error)
	require.Zero(t, count)

	var data struct {
		Messages []string `json:"messages"`
	}
	test.Data(t, test.Get(t, r, "/dashboard", cookie), &data)
	require.Contains(t, data.Messages, "No file selected")
}

func TestUploadUnknownEvent(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "9999"},
		"certificate", "cert.pdf", []byte("bytes"),
		cookie)
	test.RedirectsTo(t, w, "/dashboard")

	var count int64
	require.NoError(t, database.DB.Model(&model.Certificate{}).Count(&count).Error)
	require.Zero(t, count)

	var data struct {
		Messages []string `json:"messages"`
	}
	test.Data(t, test.Get(t, r, "/dashboard", cookie), &data)
	require.Contains(t, data.Messages, "Invalid event selected")
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	// The cap is read per request, so lowering it here takes effect without
	// rebuilding the router.
	config.Get().Upload.MaxSize = 1024

	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"certificate", "huge.pdf", bytes.Repeat([]byte("a"), 8<<10),
		cookie)
	test.RedirectsTo(t, w, "/dashboard")

	var count int64
	require.NoError(t, database.DB.Model(&model.Certificate{}).Count(&count).Error)
	require.Zero(t, count)

	var data struct {
		Messages []string `json:"messages"`
	}
	test.Data(t, test.Get(t, r, "/dashboard", cookie), &data)
	require.Contains(t, data.Messages, "File is too large")
}

func TestUploadRequiresSession(t *testing.T) {
	r := test.Setup(t)
	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"certificate", "cert.pdf", []byte("bytes"))
	test.RedirectsTo(t, w, "/login")
}

func TestViewOwnCertificate(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	content := []byte("certificate-file-bytes")
	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"certificate", "cert.pdf", content,
		cookie)
	test.RedirectsTo(t, w, "/dashboard")

	var cert model.Certificate
	require.NoError(t, database.DB.First(&cert).Error)

	view := test.Get(t, r, fmt.Sprintf("/view_certificate/%d", cert.ID), cookie)
	require.Equal(t, http.StatusOK, view.Code)
	require.Equal(t, "inline", view.Header().Get("Content-Disposition"))
	require.Equal(t, content, view.Body.Bytes())
}

func TestViewSomeoneElsesCertificate(t *testing.T) {
	r := test.Setup(t)
	owner := test.LoginStudent(t, r, "24UCS001")

	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"certificate", "cert.pdf", []byte("secret"),
		owner)
	test.RedirectsTo(t, w, "/dashboard")

	var cert model.Certificate
	require.NoError(t, database.DB.First(&cert).Error)

	other := test.LoginStudent(t, r, "24UCS002")
	view := test.Get(t, r, fmt.Sprintf("/view_certificate/%d", cert.ID), other)
	test.RedirectsTo(t, view, "/dashboard")
	require.NotContains(t, view.Body.String(), "secret")

	var data struct {
		Messages []string `json:"messages"`
	}
	test.Data(t, test.Get(t, r, "/dashboard", other), &data)
	require.Contains(t, data.Messages, "You do not have permission to view this certificate")
}

func TestViewAsAdmin(t *testing.T) {
	r := test.Setup(t)
	owner := test.LoginStudent(t, r, "24UCS001")

	content := []byte("bytes")
	w := test.PostMultipart(t, r, "/upload_certificate",
		map[string]string{"event_id": "1"},
		"certificate", "cert.pdf", content,
		owner)
	test.RedirectsTo(t, w, "/dashboard")

	var cert model.Certificate
	require.NoError(t, database.DB.First(&cert).Error)

	admin := test.LoginAdmin(t, r)
	view := test.Get(t, r, fmt.Sprintf("/view_certificate/%d", cert.ID), admin)
	require.Equal(t, http.StatusOK, view.Code)
	require.Equal(t, content, view.Body.Bytes())
}

func TestViewMissingFileOnDisk(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	var student model.Student
	require.NoError(t, database.DB.Where("username = ?", "24UCS001").First(&student).Error)

	// Record exists but nothing was ever written under that name.
	cert := model.Certificate{
		StudentID: student.ID,
		EventID:   1,
		Filename:  "vanished.pdf",
		Status:    model.StatusPending,
	}
	require.NoError(t, database.DB.Create(&cert).Error)

	view := test.Get(t, r, fmt.Sprintf("/view_certificate/%d", cert.ID), cookie)
	test.RedirectsTo(t, view, "/dashboard")

	var data struct {
		Messages []string `json:"messages"`
	}
	test.Data(t, test.Get(t, r, "/dashboard", cookie), &data)
	require.Contains(t, data.Messages, "Certificate file not found")
}

func TestViewUnknownCertificate(t *testing.T) {
	r := test.Setup(t)
	cookie := test.LoginStudent(t, r, "24UCS001")

	view := test.Get(t, r, "/view_certificate/424242", cookie)
	test.RedirectsTo(t, view, "/dashboard")
}

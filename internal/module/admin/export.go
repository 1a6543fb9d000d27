package admin

import (
	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/global/response"
	"skill-marks-system/internal/model"
	"skill-marks-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type marksRow struct {
	Username   string `excel:"Username"`
	TotalMarks int    `excel:"Total Marks"`
	Approved   int    `excel:"Approved"`
	Pending    int    `excel:"Pending"`
	Rejected   int    `excel:"Rejected"`
}

// Export streams an xlsx report of per-student totals and certificate counts.
func Export(c *gin.Context) {
	var students []model.Student
	if err := database.DB.Order("username").Find(&students).Error; err != nil {
		log.Error("load students failed", "error", err)
		response.FailRedirect(c, "/admin/dashboard", response.ErrDatabase.WithOrigin(err))
		return
	}

	type statusCount struct {
		StudentID uint
		Status    model.CertificateStatus
		N         int
	}
	var counts []statusCount
	if err := database.DB.Model(&model.Certificate{}).
		Select("student_id, status, count(*) as n").
		Group("student_id").Group("status").
		Find(&counts).Error; err != nil {
		log.Error("count certificates failed", "error", err)
		response.FailRedirect(c, "/admin/dashboard", response.ErrDatabase.WithOrigin(err))
		return
	}

	byStudent := make(map[uint]map[model.CertificateStatus]int, len(counts))
	for _, sc := range counts {
		if byStudent[sc.StudentID] == nil {
			byStudent[sc.StudentID] = make(map[model.CertificateStatus]int)
		}
		byStudent[sc.StudentID][sc.Status] = sc.N
	}

	rows := make([]marksRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, marksRow{
			Username:   s.Username,
			TotalMarks: s.TotalMarks,
			Approved:   byStudent[s.ID][model.StatusApproved],
			Pending:    byStudent[s.ID][model.StatusPending],
			Rejected:   byStudent[s.ID][model.StatusRejected],
		})
	}

	f := excelize.NewFile()
	if err := tools.ExportToExcel(f, "", rows); err != nil {
		log.Error("build report failed", "error", err)
		response.FailRedirect(c, "/admin/dashboard", response.ErrInternal.WithOrigin(err))
		return
	}

	tools.SendAttachmentHeaders(c, "skill_marks_report.xlsx", tools.ExcelContentType)
	if err := f.Write(c.Writer); err != nil {
		log.Error("write report failed", "error", err)
	}
}

package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	helper "educompass_backend/internals/helpers"
)

var exportHeaders = []interface{}{
	"full_name",
	"phone_number",
	"course_name",
	"branch_name",
	"applied_at",
	"course_price",
	"charge_percent",
	"charge",
}

type exportRow struct {
	EduCenterID   uuid.UUID       `gorm:"column:edu_center_id"`
	EduCenterName string          `gorm:"column:edu_center_name"`
	BranchName    string          `gorm:"column:branch_name"`
	FullName      string          `gorm:"column:full_name"`
	PhoneNumber   *string         `gorm:"column:phone_number"`
	CourseName    string          `gorm:"column:course_name"`
	AppliedAt     time.Time       `gorm:"column:applied_at"`
	CoursePrice   decimal.Decimal `gorm:"column:course_price"`
}

// ExportService writes one xlsx workbook per center listing the
// enrollments applied on the first day of the current month: an "All"
// sheet first, then one sheet per branch, each with a trailing Total.
type ExportService struct {
	Clock helper.Clock
	Dir   string
}

func NewExportService(clock helper.Clock, dir string) *ExportService {
	if clock == nil {
		clock = helper.RealClock{}
	}
	return &ExportService{Clock: clock, Dir: dir}
}

// ExportFileName: {centerID}-{name with spaces→underscores}-{YYYY-MM-DD}-applications.xlsx
func ExportFileName(eduCenterID uuid.UUID, eduCenterName string, first time.Time) string {
	return fmt.Sprintf("%s-%s-%s-applications.xlsx",
		eduCenterID,
		strings.ReplaceAll(eduCenterName, " ", "_"),
		first.Format("2006-01-02"),
	)
}

// ExportFirstOfMonthApplications runs the batch export and returns the
// written file paths.
func (s *ExportService) ExportFirstOfMonthApplications(db *gorm.DB) ([]string, error) {
	now := s.Clock.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var rows []exportRow
	if err := db.Table("enrollments").
		Select(`education_centers.edu_center_id AS edu_center_id,
			education_centers.edu_center_name AS edu_center_name,
			branches.branch_name AS branch_name,
			users.user_full_name AS full_name,
			users.user_phone_number AS phone_number,
			courses.course_name AS course_name,
			enrollments.enrollment_applied_at AS applied_at,
			courses.course_price AS course_price`).
		Joins("JOIN users ON users.user_id = enrollments.enrollment_user_id").
		Joins("JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Joins("JOIN branches ON branches.branch_id = courses.course_branch_id").
		Joins("JOIN education_centers ON education_centers.edu_center_id = branches.branch_edu_center_id").
		Where("enrollments.enrollment_applied_at >= ? AND enrollments.enrollment_applied_at < ?",
			first, first.AddDate(0, 0, 1)).
		Order("education_centers.edu_center_id, branches.branch_name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		log.Printf("[INFO] No applications on %s", first.Format("2006-01-02"))
		return nil, nil
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, err
	}

	// group: edu_center -> rows (keep arrival order)
	centerOrder := []uuid.UUID{}
	perCenter := map[uuid.UUID][]exportRow{}
	for _, r := range rows {
		if _, ok := perCenter[r.EduCenterID]; !ok {
			centerOrder = append(centerOrder, r.EduCenterID)
		}
		perCenter[r.EduCenterID] = append(perCenter[r.EduCenterID], r)
	}

	var saved []string
	for _, centerID := range centerOrder {
		centerRows := perCenter[centerID]
		path := filepath.Join(s.Dir, ExportFileName(centerID, centerRows[0].EduCenterName, first))
		if err := writeWorkbook(path, centerRows); err != nil {
			return saved, err
		}
		log.Printf("[INFO] Saved center %q to %s (%d rows)", centerRows[0].EduCenterName, path, len(centerRows))
		saved = append(saved, path)
	}
	return saved, nil
}

func writeWorkbook(path string, centerRows []exportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "All")
	if err := writeSheet(f, "All", centerRows); err != nil {
		return err
	}

	// one sheet per branch, in arrival order
	branchOrder := []string{}
	perBranch := map[string][]exportRow{}
	for _, r := range centerRows {
		if _, ok := perBranch[r.BranchName]; !ok {
			branchOrder = append(branchOrder, r.BranchName)
		}
		perBranch[r.BranchName] = append(perBranch[r.BranchName], r)
	}
	used := map[string]bool{"All": true}
	for _, branchName := range branchOrder {
		sheet := uniqueSheetName(used, branchName)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, perBranch[branchName]); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, rows []exportRow) error {
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return err
	}

	total := decimal.Zero
	for i, r := range rows {
		charge := CommissionFor(r.CoursePrice)
		total = total.Add(charge)

		phone := ""
		if r.PhoneNumber != nil {
			phone = *r.PhoneNumber
		}
		price, _ := r.CoursePrice.Float64()
		chargeF, _ := charge.Float64()

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{
			r.FullName,
			phone,
			r.CourseName,
			r.BranchName,
			r.AppliedAt.Format(time.RFC3339),
			price,
			3,
			chargeF,
		}); err != nil {
			return err
		}
	}

	// trailing Total row
	totalF, _ := total.Float64()
	totalCell := fmt.Sprintf("A%d", len(rows)+2)
	if err := f.SetSheetRow(sheet, totalCell, &[]interface{}{
		"", "", "", "", "", "", "Total", totalF,
	}); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "H", 22)
}

// spreadsheet sheet names are limited to 31 characters; cut on runes
// so multi-byte branch names survive intact
func truncateSheetName(name string) string {
	r := []rune(name)
	if len(r) > 31 {
		return string(r[:31])
	}
	return name
}

// uniqueSheetName suffixes collisions so two branches sharing a long
// prefix do not write over the same sheet.
func uniqueSheetName(used map[string]bool, name string) string {
	sheet := truncateSheetName(name)
	for i := 2; used[sheet]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		base := []rune(truncateSheetName(name))
		if limit := 31 - len([]rune(suffix)); len(base) > limit {
			base = base[:limit]
		}
		sheet = string(base) + suffix
	}
	used[sheet] = true
	return sheet
}

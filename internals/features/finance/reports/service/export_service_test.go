package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExportFileName(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "Everest Academy")
	first := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	got := ExportFileName(center.EduCenterID, center.EduCenterName, first)
	want := center.EduCenterID.String() + "-Everest_Academy-2025-07-01-applications.xlsx"
	if got != want {
		t.Errorf("file name = %q, want %q", got, want)
	}
}

func TestExportFirstOfMonthApplications(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "Everest Academy")
	branch := seedBranch(t, db, center.EduCenterID, "Downtown")
	course := seedCourse(t, db, branch.BranchID, "General English", "100000")

	first := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	student := seedStudent(t, db, "Aziza Karimova")
	seedEnrollment(t, db, student.UserID, course.CourseID, first.Add(10*time.Hour))

	// applied on day 2, must not appear
	late := seedStudent(t, db, "Late Student")
	seedEnrollment(t, db, late.UserID, course.CourseID, first.AddDate(0, 0, 1).Add(time.Hour))

	dir := t.TempDir()
	exporter := NewExportService(fakeClock{now: first.Add(6 * time.Hour)}, dir)

	saved, err := exporter.ExportFirstOfMonthApplications(db)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved %d files, want 1", len(saved))
	}

	wantPath := filepath.Join(dir, ExportFileName(center.EduCenterID, center.EduCenterName, first))
	if saved[0] != wantPath {
		t.Errorf("path = %q, want %q", saved[0], wantPath)
	}

	f, err := excelize.OpenFile(saved[0])
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "All" || sheets[1] != "Downtown" {
		t.Fatalf("sheets = %v, want [All Downtown]", sheets)
	}

	for _, sheet := range sheets {
		name, _ := f.GetCellValue(sheet, "A2")
		if name != "Aziza Karimova" {
			t.Errorf("%s!A2 = %q, want student name", sheet, name)
		}
		courseName, _ := f.GetCellValue(sheet, "C2")
		if courseName != "General English" {
			t.Errorf("%s!C2 = %q, want course name", sheet, courseName)
		}
		pct, _ := f.GetCellValue(sheet, "G2")
		if pct != "3" {
			t.Errorf("%s!G2 = %q, want charge percent 3", sheet, pct)
		}
		charge, _ := f.GetCellValue(sheet, "H2")
		if charge != "3000" {
			t.Errorf("%s!H2 = %q, want 3000", sheet, charge)
		}

		// one data row, so the Total row sits at 3
		label, _ := f.GetCellValue(sheet, "G3")
		if label != "Total" {
			t.Errorf("%s!G3 = %q, want Total", sheet, label)
		}
		total, _ := f.GetCellValue(sheet, "H3")
		if total != "3000" {
			t.Errorf("%s!H3 = %q, want 3000", sheet, total)
		}
	}
}

func TestExportSkipsWhenNoApplications(t *testing.T) {
	db := openTestDB(t)
	seedCenter(t, db, "Quiet Center")

	dir := t.TempDir()
	exporter := NewExportService(fakeClock{now: time.Date(2025, 8, 1, 3, 0, 0, 0, time.UTC)}, dir)

	saved, err := exporter.ExportFirstOfMonthApplications(db)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("saved %d files, want 0", len(saved))
	}
}

func TestTruncateSheetNameCutsOnRunes(t *testing.T) {
	name := "Филиал Центрального Района Города Ташкента"
	got := truncateSheetName(name)
	if len([]rune(got)) != 31 {
		t.Fatalf("len = %d runes, want 31", len([]rune(got)))
	}
	if got != string([]rune(name)[:31]) {
		t.Fatalf("got %q, want the first 31 runes intact", got)
	}

	short := "Downtown"
	if truncateSheetName(short) != short {
		t.Fatalf("short names must pass through unchanged")
	}
}

func TestUniqueSheetNamesForSharedPrefixes(t *testing.T) {
	used := map[string]bool{"All": true}
	a := uniqueSheetName(used, "Branch With A Really Long Name Alpha")
	b := uniqueSheetName(used, "Branch With A Really Long Name Bravo")
	c := uniqueSheetName(used, "Branch With A Really Long Name Charlie")

	if a == b || b == c || a == c {
		t.Fatalf("sheet names collide: %q, %q, %q", a, b, c)
	}
	for _, name := range []string{a, b, c} {
		if n := len([]rune(name)); n > 31 {
			t.Errorf("%q is %d runes, limit is 31", name, n)
		}
	}
}

package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"educompass_backend/internals/constants"
	paymentModel "educompass_backend/internals/features/finance/payments/model"
	"educompass_backend/internals/features/finance/payments/route"
	reportModel "educompass_backend/internals/features/finance/reports/model"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
)

func newPaymentsApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&centerModel.EducationCenterModel{},
		&paymentModel.CenterPaymentModel{},
		&paymentModel.PaidAmountLogModel{},
		&reportModel.MonthlyCenterReportModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_role", constants.RoleAccountant)
		return c.Next()
	})
	route.PaymentRoutes(app.Group("/api/f"), db)

	return app, db
}

func TestBoardAggregatesApplications(t *testing.T) {
	app, db := newPaymentsApp(t)

	center := centerModel.EducationCenterModel{EduCenterName: "Everest", EduCenterActive: true}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	for _, row := range []struct {
		month int
		apps  int
		pay   string
	}{
		{3, 3, "9000"},
		{4, 2, "6000"},
	} {
		report := reportModel.MonthlyCenterReportModel{
			MonthlyReportEduCenterID:       center.EduCenterID,
			MonthlyReportYear:              2025,
			MonthlyReportMonth:             row.month,
			MonthlyReportTotalApplications: row.apps,
			MonthlyReportPayableAmount:     decimal.RequireFromString(row.pay),
		}
		if err := db.Create(&report).Error; err != nil {
			t.Fatalf("seed report: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/f/center-payments", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Centers []struct {
				TotalApplications int    `json:"total_applications"`
				TotalPayable      string `json:"total_payable"`
			} `json:"centers"`
			Overall struct {
				TotalApplications int    `json:"total_applications"`
				TotalPayable      string `json:"total_payable"`
				TotalDebt         string `json:"total_debt"`
			} `json:"overall"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if len(body.Data.Centers) != 1 {
		t.Fatalf("centers = %d, want 1", len(body.Data.Centers))
	}
	if body.Data.Centers[0].TotalApplications != 5 {
		t.Fatalf("center total_applications = %d, want 5", body.Data.Centers[0].TotalApplications)
	}
	if body.Data.Overall.TotalApplications != 5 {
		t.Fatalf("overall total_applications = %d, want 5", body.Data.Overall.TotalApplications)
	}
	if !decimal.RequireFromString(body.Data.Overall.TotalPayable).Equal(decimal.RequireFromString("15000")) {
		t.Fatalf("overall total_payable = %s, want 15000", body.Data.Overall.TotalPayable)
	}
}

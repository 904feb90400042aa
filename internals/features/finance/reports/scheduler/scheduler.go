package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"educompass_backend/internals/configs"
	"educompass_backend/internals/features/finance/reports/service"
	helper "educompass_backend/internals/helpers"
)

// StartMonthlyExportScheduler runs the first-of-month applications
// export once a day; the export itself only finds rows on day 1.
func StartMonthlyExportScheduler(db *gorm.DB) {
	go func() {
		exporter := service.NewExportService(helper.RealClock{}, configs.ExportsDir)

		for {
			if time.Now().Day() == 1 {
				log.Println("[EXPORT] Running first-of-month applications export...")
				if saved, err := exporter.ExportFirstOfMonthApplications(db); err != nil {
					log.Printf("[EXPORT ERROR] %v", err)
				} else {
					log.Printf("[EXPORT] %d workbook(s) written", len(saved))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}

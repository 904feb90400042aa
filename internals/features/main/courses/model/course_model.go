package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID         uuid.UUID                  `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseName       string                     `gorm:"column:course_name;type:varchar(255);not null;uniqueIndex:ux_courses_name_branch" json:"course_name"`
	CourseBranchID   uuid.UUID                  `gorm:"column:course_branch_id;type:uuid;not null;uniqueIndex:ux_courses_name_branch;index:idx_courses_branch_id" json:"course_branch_id"`
	CourseCategoryID uuid.UUID                  `gorm:"column:course_category_id;type:uuid;not null;index" json:"course_category_id"`
	CourseLevelID    uuid.UUID                  `gorm:"column:course_level_id;type:uuid;not null;index" json:"course_level_id"`
	CourseTeacherID  *uuid.UUID                 `gorm:"column:course_teacher_id;type:uuid;index" json:"course_teacher_id,omitempty"`
	CourseDays       datatypes.JSONSlice[string] `gorm:"column:course_days" json:"course_days"`

	CourseStartDate *time.Time `gorm:"column:course_start_date;type:date" json:"course_start_date,omitempty"`
	CourseEndDate   *time.Time `gorm:"column:course_end_date;type:date" json:"course_end_date,omitempty"`
	CourseStartTime string     `gorm:"column:course_start_time;type:varchar(5);not null" json:"course_start_time"`
	CourseEndTime   string     `gorm:"column:course_end_time;type:varchar(5);not null" json:"course_end_time"`

	CourseTotalPlaces  int `gorm:"column:course_total_places;not null;check:course_total_places >= 0" json:"course_total_places"`
	CourseBookedPlaces int `gorm:"column:course_booked_places;not null;default:0;check:course_booked_places >= 0" json:"course_booked_places"`

	CoursePrice    decimal.Decimal `gorm:"column:course_price;type:numeric(12,2);not null" json:"course_price"`
	CourseDiscount decimal.Decimal `gorm:"column:course_discount;type:numeric(12,2);not null;default:0" json:"course_discount"`

	CourseIntensive  bool `gorm:"column:course_intensive;not null;default:false" json:"course_intensive"`
	CourseIsArchived bool `gorm:"column:course_is_archived;not null;default:false" json:"course_is_archived"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

// FinalPrice = max(price - discount, 0)
func (m *CourseModel) FinalPrice() decimal.Decimal {
	final := m.CoursePrice.Sub(m.CourseDiscount)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// AvailablePlaces = max(total - booked, 0)
func (m *CourseModel) AvailablePlaces() int {
	if avail := m.CourseTotalPlaces - m.CourseBookedPlaces; avail > 0 {
		return avail
	}
	return 0
}

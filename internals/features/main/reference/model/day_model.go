package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday names follow the DayName* constants
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

var ValidDayNames = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

type DayModel struct {
	DayID   uuid.UUID `gorm:"column:day_id;type:uuid;primaryKey" json:"day_id"`
	DayName string    `gorm:"column:day_name;type:varchar(10);not null;uniqueIndex" json:"day_name"`
}

func (DayModel) TableName() string {
	return "days"
}

func (m *DayModel) BeforeCreate(tx *gorm.DB) error {
	if m.DayID == uuid.Nil {
		m.DayID = uuid.New()
	}
	return nil
}

func IsValidDayName(name string) bool {
	for _, d := range ValidDayNames {
		if d == name {
			return true
		}
	}
	return false
}

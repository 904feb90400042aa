package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViewModel struct {
	ViewID          uuid.UUID `gorm:"column:view_id;type:uuid;primaryKey" json:"view_id"`
	ViewUserID      uuid.UUID `gorm:"column:view_user_id;type:uuid;not null;index" json:"view_user_id"`
	ViewEduCenterID uuid.UUID `gorm:"column:view_edu_center_id;type:uuid;not null;index" json:"view_edu_center_id"`
	ViewViewedAt    time.Time `gorm:"column:view_viewed_at;autoCreateTime" json:"view_viewed_at"`
}

func (ViewModel) TableName() string {
	return "views"
}

func (m *ViewModel) BeforeCreate(tx *gorm.DB) error {
	if m.ViewID == uuid.Nil {
		m.ViewID = uuid.New()
	}
	return nil
}

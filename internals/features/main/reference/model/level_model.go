package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelModel struct {
	LevelID   uuid.UUID `gorm:"column:level_id;type:uuid;primaryKey" json:"level_id"`
	LevelName string    `gorm:"column:level_name;type:varchar(255);not null;uniqueIndex" json:"level_name"`
}

func (LevelModel) TableName() string {
	return "levels"
}

func (m *LevelModel) BeforeCreate(tx *gorm.DB) error {
	if m.LevelID == uuid.Nil {
		m.LevelID = uuid.New()
	}
	return nil
}

package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EduTypeModel struct {
	EduTypeID   uuid.UUID `gorm:"column:edu_type_id;type:uuid;primaryKey" json:"edu_type_id"`
	EduTypeName string    `gorm:"column:edu_type_name;type:varchar(255);not null;uniqueIndex" json:"edu_type_name"`
}

func (EduTypeModel) TableName() string {
	return "edu_types"
}

func (m *EduTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EduTypeID == uuid.Nil {
		m.EduTypeID = uuid.New()
	}
	return nil
}

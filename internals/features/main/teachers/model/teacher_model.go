package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TeacherGenderMale   = "MALE"
	TeacherGenderFemale = "FEMALE"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherName     string    `gorm:"column:teacher_name;type:varchar(255);not null" json:"teacher_name"`
	TeacherGender   string    `gorm:"column:teacher_gender;type:varchar(6);not null" json:"teacher_gender"`
	TeacherBranchID uuid.UUID `gorm:"column:teacher_branch_id;type:uuid;not null;index:idx_teachers_branch_id" json:"teacher_branch_id"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}

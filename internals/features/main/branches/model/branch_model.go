package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BranchModel struct {
	BranchID          uuid.UUID      `gorm:"column:branch_id;type:uuid;primaryKey" json:"branch_id"`
	BranchName        string         `gorm:"column:branch_name;type:varchar(255);not null" json:"branch_name"`
	BranchEduCenterID uuid.UUID      `gorm:"column:branch_edu_center_id;type:uuid;not null;index:idx_branches_edu_center_id" json:"branch_edu_center_id"`
	BranchCountry     string         `gorm:"column:branch_country;type:varchar(255)" json:"branch_country"`
	BranchRegion      string         `gorm:"column:branch_region;type:varchar(255)" json:"branch_region"`
	BranchCity        string         `gorm:"column:branch_city;type:varchar(255)" json:"branch_city"`
	BranchPhoneNumber *string        `gorm:"column:branch_phone_number;type:varchar(15)" json:"branch_phone_number,omitempty"`
	BranchAdminIDs    pq.StringArray `gorm:"column:branch_admin_ids;type:text[]" json:"branch_admin_ids"`

	BranchCreatedAt time.Time `gorm:"column:branch_created_at;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time `gorm:"column:branch_updated_at;autoUpdateTime" json:"branch_updated_at"`
}

func (BranchModel) TableName() string {
	return "branches"
}

func (m *BranchModel) BeforeCreate(tx *gorm.DB) error {
	if m.BranchID == uuid.Nil {
		m.BranchID = uuid.New()
	}
	return nil
}

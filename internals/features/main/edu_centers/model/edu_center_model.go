package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EducationCenterModel struct {
	EduCenterID          uuid.UUID      `gorm:"column:edu_center_id;type:uuid;primaryKey" json:"edu_center_id"`
	EduCenterName        string         `gorm:"column:edu_center_name;type:varchar(255);not null" json:"edu_center_name"`
	EduCenterUserID      *uuid.UUID     `gorm:"column:edu_center_user_id;type:uuid;index" json:"edu_center_user_id,omitempty"`
	EduCenterDescription string         `gorm:"column:edu_center_description;type:text" json:"edu_center_description"`
	EduCenterCountry     string         `gorm:"column:edu_center_country;type:varchar(255)" json:"edu_center_country"`
	EduCenterRegion      string         `gorm:"column:edu_center_region;type:varchar(255)" json:"edu_center_region"`
	EduCenterCity        string         `gorm:"column:edu_center_city;type:varchar(255)" json:"edu_center_city"`
	EduCenterPhoneNumber *string        `gorm:"column:edu_center_phone_number;type:varchar(15)" json:"edu_center_phone_number,omitempty"`
	EduCenterEduTypeIDs  pq.StringArray `gorm:"column:edu_center_edu_type_ids;type:text[]" json:"edu_center_edu_type_ids"`
	EduCenterCategoryIDs pq.StringArray `gorm:"column:edu_center_category_ids;type:text[]" json:"edu_center_category_ids"`

	EduCenterInstagramLink *string `gorm:"column:edu_center_instagram_link;type:varchar(255)" json:"edu_center_instagram_link,omitempty"`
	EduCenterTelegramLink  *string `gorm:"column:edu_center_telegram_link;type:varchar(255)" json:"edu_center_telegram_link,omitempty"`
	EduCenterFacebookLink  *string `gorm:"column:edu_center_facebook_link;type:varchar(255)" json:"edu_center_facebook_link,omitempty"`
	EduCenterWebsiteLink   *string `gorm:"column:edu_center_website_link;type:varchar(255)" json:"edu_center_website_link,omitempty"`

	EduCenterActive bool `gorm:"column:edu_center_active;not null;default:true" json:"edu_center_active"`
	EduCenterOrder  int  `gorm:"column:edu_center_order;not null;default:0" json:"edu_center_order"`

	EduCenterCreatedAt time.Time `gorm:"column:edu_center_created_at;autoCreateTime" json:"edu_center_created_at"`
	EduCenterUpdatedAt time.Time `gorm:"column:edu_center_updated_at;autoUpdateTime" json:"edu_center_updated_at"`
}

func (EducationCenterModel) TableName() string {
	return "education_centers"
}

func (m *EducationCenterModel) BeforeCreate(tx *gorm.DB) error {
	if m.EduCenterID == uuid.Nil {
		m.EduCenterID = uuid.New()
	}
	return nil
}

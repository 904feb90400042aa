package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserUserName    *string   `gorm:"column:user_user_name;type:varchar(150);uniqueIndex" json:"user_user_name,omitempty"`
	UserFullName    string    `gorm:"column:user_full_name;type:varchar(255);not null" json:"user_full_name"`
	UserPhoneNumber *string   `gorm:"column:user_phone_number;type:varchar(20);uniqueIndex" json:"user_phone_number,omitempty"`
	UserTelegramID  *string   `gorm:"column:user_telegram_id;type:varchar(50);uniqueIndex" json:"user_telegram_id,omitempty"`
	UserPassword    string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole        string    `gorm:"column:user_role;type:varchar(20);not null;default:STUDENT" json:"user_role"`
	UserGender      *string   `gorm:"column:user_gender;type:varchar(10)" json:"user_gender,omitempty"`
	UserCountry     *string   `gorm:"column:user_country;type:varchar(100)" json:"user_country,omitempty"`
	UserRegion      *string   `gorm:"column:user_region;type:varchar(100)" json:"user_region,omitempty"`
	UserCity        *string   `gorm:"column:user_city;type:varchar(100)" json:"user_city,omitempty"`
	UserIsVerified  bool      `gorm:"column:user_is_verified;not null;default:false" json:"user_is_verified"`
	UserIsActive    bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

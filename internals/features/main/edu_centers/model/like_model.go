package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One like per (user, center); liking again removes it (toggle).
type LikeModel struct {
	LikeID          uuid.UUID `gorm:"column:like_id;type:uuid;primaryKey" json:"like_id"`
	LikeUserID      uuid.UUID `gorm:"column:like_user_id;type:uuid;not null;uniqueIndex:ux_likes_user_center" json:"like_user_id"`
	LikeEduCenterID uuid.UUID `gorm:"column:like_edu_center_id;type:uuid;not null;uniqueIndex:ux_likes_user_center;index" json:"like_edu_center_id"`
	LikeLikedAt     time.Time `gorm:"column:like_liked_at;autoCreateTime" json:"like_liked_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (m *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if m.LikeID == uuid.Nil {
		m.LikeID = uuid.New()
	}
	return nil
}

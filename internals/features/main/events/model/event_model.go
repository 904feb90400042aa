package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID           uuid.UUID        `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventName         string           `gorm:"column:event_name;type:varchar(255);not null" json:"event_name"`
	EventEduCenterID  uuid.UUID        `gorm:"column:event_edu_center_id;type:uuid;not null;index:idx_events_edu_center_id" json:"event_edu_center_id"`
	EventBranchID     *uuid.UUID       `gorm:"column:event_branch_id;type:uuid;index" json:"event_branch_id,omitempty"`
	EventDate         time.Time        `gorm:"column:event_date;type:date;not null" json:"event_date"`
	EventStartTime    string           `gorm:"column:event_start_time;type:varchar(5);not null" json:"event_start_time"`
	EventPrice        *decimal.Decimal `gorm:"column:event_price;type:numeric(12,2)" json:"event_price,omitempty"`
	EventRequirements *string          `gorm:"column:event_requirements;type:text" json:"event_requirements,omitempty"`
	EventDescription  string           `gorm:"column:event_description;type:text" json:"event_description"`
	EventLink         *string          `gorm:"column:event_link;type:varchar(255)" json:"event_link,omitempty"`
	EventLocation     *string          `gorm:"column:event_location;type:varchar(255)" json:"event_location,omitempty"`
	EventIsArchived   bool             `gorm:"column:event_is_archived;not null;default:false" json:"event_is_archived"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

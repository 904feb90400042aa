package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"educompass_backend/internals/features/main/events/model"
)

type EventRequest struct {
	EventName         string           `json:"event_name" validate:"required,min=2,max=255"`
	EventEduCenterID  string           `json:"event_edu_center_id" validate:"required,uuid4"`
	EventBranchID     *string          `json:"event_branch_id" validate:"omitempty,uuid4"`
	EventDate         string           `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventStartTime    string           `json:"event_start_time" validate:"required,datetime=15:04"`
	EventPrice        *decimal.Decimal `json:"event_price"`
	EventRequirements *string          `json:"event_requirements"`
	EventDescription  string           `json:"event_description"`
	EventLink         *string          `json:"event_link" validate:"omitempty,url"`
	EventLocation     *string          `json:"event_location"`
}

func (r *EventRequest) ToModel() (*model.EventModel, error) {
	centerID, err := uuid.Parse(r.EventEduCenterID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", r.EventDate)
	if err != nil {
		return nil, err
	}

	m := &model.EventModel{
		EventName:         r.EventName,
		EventEduCenterID:  centerID,
		EventDate:         date,
		EventStartTime:    r.EventStartTime,
		EventPrice:        r.EventPrice,
		EventRequirements: r.EventRequirements,
		EventDescription:  r.EventDescription,
		EventLink:         r.EventLink,
		EventLocation:     r.EventLocation,
	}
	if r.EventBranchID != nil {
		branchID, err := uuid.Parse(*r.EventBranchID)
		if err != nil {
			return nil, err
		}
		m.EventBranchID = &branchID
	}
	return m, nil
}

package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"educompass_backend/internals/features/main/edu_centers/model"
)

type EduCenterRequest struct {
	EduCenterName        string   `json:"edu_center_name" validate:"required,min=2,max=255"`
	EduCenterUserID      *string  `json:"edu_center_user_id" validate:"omitempty,uuid4"`
	EduCenterDescription string   `json:"edu_center_description"`
	EduCenterCountry     string   `json:"edu_center_country"`
	EduCenterRegion      string   `json:"edu_center_region"`
	EduCenterCity        string   `json:"edu_center_city"`
	EduCenterPhoneNumber *string  `json:"edu_center_phone_number" validate:"omitempty,max=15"`
	EduCenterEduTypeIDs  []string `json:"edu_center_edu_type_ids" validate:"omitempty,dive,uuid4"`
	EduCenterCategoryIDs []string `json:"edu_center_category_ids" validate:"omitempty,dive,uuid4"`

	EduCenterInstagramLink *string `json:"edu_center_instagram_link"`
	EduCenterTelegramLink  *string `json:"edu_center_telegram_link"`
	EduCenterFacebookLink  *string `json:"edu_center_facebook_link"`
	EduCenterWebsiteLink   *string `json:"edu_center_website_link"`

	EduCenterActive *bool `json:"edu_center_active"`
	EduCenterOrder  *int  `json:"edu_center_order"`
}

type EduCenterResponse struct {
	model.EducationCenterModel
	LikesCount    int64 `json:"likes_count"`
	ViewsCount    int64 `json:"views_count"`
	BranchesCount int64 `json:"branches_count"`
}

func (r *EduCenterRequest) ToModel() *model.EducationCenterModel {
	m := &model.EducationCenterModel{
		EduCenterName:        r.EduCenterName,
		EduCenterDescription: r.EduCenterDescription,
		EduCenterCountry:     r.EduCenterCountry,
		EduCenterRegion:      r.EduCenterRegion,
		EduCenterCity:        r.EduCenterCity,
		EduCenterPhoneNumber: r.EduCenterPhoneNumber,
		EduCenterEduTypeIDs:  pq.StringArray(r.EduCenterEduTypeIDs),
		EduCenterCategoryIDs: pq.StringArray(r.EduCenterCategoryIDs),

		EduCenterInstagramLink: r.EduCenterInstagramLink,
		EduCenterTelegramLink:  r.EduCenterTelegramLink,
		EduCenterFacebookLink:  r.EduCenterFacebookLink,
		EduCenterWebsiteLink:   r.EduCenterWebsiteLink,

		EduCenterActive: true,
	}
	if r.EduCenterUserID != nil {
		if id, err := uuid.Parse(*r.EduCenterUserID); err == nil {
			m.EduCenterUserID = &id
		}
	}
	if r.EduCenterActive != nil {
		m.EduCenterActive = *r.EduCenterActive
	}
	if r.EduCenterOrder != nil {
		m.EduCenterOrder = *r.EduCenterOrder
	}
	return m
}

package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"educompass_backend/internals/features/main/branches/model"
)

type BranchRequest struct {
	BranchName        string   `json:"branch_name" validate:"required,min=2,max=255"`
	BranchEduCenterID string   `json:"branch_edu_center_id" validate:"required,uuid4"`
	BranchCountry     string   `json:"branch_country"`
	BranchRegion      string   `json:"branch_region"`
	BranchCity        string   `json:"branch_city"`
	BranchPhoneNumber *string  `json:"branch_phone_number" validate:"omitempty,max=15"`
	BranchAdminIDs    []string `json:"branch_admin_ids" validate:"omitempty,dive,uuid4"`
}

func (r *BranchRequest) ToModel() (*model.BranchModel, error) {
	centerID, err := uuid.Parse(r.BranchEduCenterID)
	if err != nil {
		return nil, err
	}
	return &model.BranchModel{
		BranchName:        r.BranchName,
		BranchEduCenterID: centerID,
		BranchCountry:     r.BranchCountry,
		BranchRegion:      r.BranchRegion,
		BranchCity:        r.BranchCity,
		BranchPhoneNumber: r.BranchPhoneNumber,
		BranchAdminIDs:    pq.StringArray(r.BranchAdminIDs),
	}, nil
}

package dto

import (
	"github.com/google/uuid"

	"educompass_backend/internals/features/main/teachers/model"
)

type TeacherRequest struct {
	TeacherName     string `json:"teacher_name" validate:"required,min=2,max=255"`
	TeacherGender   string `json:"teacher_gender" validate:"required,oneof=MALE FEMALE"`
	TeacherBranchID string `json:"teacher_branch_id" validate:"required,uuid4"`
}

func (r *TeacherRequest) ToModel() (*model.TeacherModel, error) {
	branchID, err := uuid.Parse(r.TeacherBranchID)
	if err != nil {
		return nil, err
	}
	return &model.TeacherModel{
		TeacherName:     r.TeacherName,
		TeacherGender:   r.TeacherGender,
		TeacherBranchID: branchID,
	}, nil
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"educompass_backend/internals/features/main/courses/model"
)

type CourseRequest struct {
	CourseName       string   `json:"course_name" validate:"required,min=2,max=255"`
	CourseBranchID   string   `json:"course_branch_id" validate:"required,uuid4"`
	CourseCategoryID string   `json:"course_category_id" validate:"required,uuid4"`
	CourseLevelID    string   `json:"course_level_id" validate:"required,uuid4"`
	CourseTeacherID  *string  `json:"course_teacher_id" validate:"omitempty,uuid4"`
	CourseDays       []string `json:"course_days" validate:"omitempty,dive,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`

	CourseStartDate *string `json:"course_start_date" validate:"omitempty,datetime=2006-01-02"`
	CourseEndDate   *string `json:"course_end_date" validate:"omitempty,datetime=2006-01-02"`
	CourseStartTime string  `json:"course_start_time" validate:"required,datetime=15:04"`
	CourseEndTime   string  `json:"course_end_time" validate:"required,datetime=15:04"`

	CourseTotalPlaces int             `json:"course_total_places" validate:"gte=0"`
	CoursePrice       decimal.Decimal `json:"course_price" validate:"required"`
	CourseDiscount    decimal.Decimal `json:"course_discount"`

	CourseIntensive bool `json:"course_intensive"`
}

type CourseResponse struct {
	model.CourseModel
	CourseFinalPrice      decimal.Decimal `json:"course_final_price"`
	CourseAvailablePlaces int             `json:"course_available_places"`
}

func (r *CourseRequest) ToModel() (*model.CourseModel, error) {
	branchID, err := uuid.Parse(r.CourseBranchID)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(r.CourseCategoryID)
	if err != nil {
		return nil, err
	}
	levelID, err := uuid.Parse(r.CourseLevelID)
	if err != nil {
		return nil, err
	}

	m := &model.CourseModel{
		CourseName:        r.CourseName,
		CourseBranchID:    branchID,
		CourseCategoryID:  categoryID,
		CourseLevelID:     levelID,
		CourseDays:        datatypes.NewJSONSlice(r.CourseDays),
		CourseStartTime:   r.CourseStartTime,
		CourseEndTime:     r.CourseEndTime,
		CourseTotalPlaces: r.CourseTotalPlaces,
		CoursePrice:       r.CoursePrice,
		CourseDiscount:    r.CourseDiscount,
		CourseIntensive:   r.CourseIntensive,
	}
	if r.CourseTeacherID != nil {
		teacherID, err := uuid.Parse(*r.CourseTeacherID)
		if err != nil {
			return nil, err
		}
		m.CourseTeacherID = &teacherID
	}
	if r.CourseStartDate != nil {
		if d, err := time.Parse("2006-01-02", *r.CourseStartDate); err == nil {
			m.CourseStartDate = &d
		}
	}
	if r.CourseEndDate != nil {
		if d, err := time.Parse("2006-01-02", *r.CourseEndDate); err == nil {
			m.CourseEndDate = &d
		}
	}
	return m, nil
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseModel:           *m,
		CourseFinalPrice:      m.FinalPrice(),
		CourseAvailablePlaces: m.AvailablePlaces(),
	}
}

func ToCourseResponseList(models []model.CourseModel) []CourseResponse {
	result := make([]CourseResponse, 0, len(models))
	for i := range models {
		result = append(result, ToCourseResponse(&models[i]))
	}
	return result
}

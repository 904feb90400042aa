package dto

import (
	"educompass_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	UserUserName    *string `json:"user_name" validate:"omitempty,min=3,max=150"`
	UserFullName    string  `json:"full_name" validate:"required,min=2,max=255"`
	UserPhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	UserPassword    string  `json:"password" validate:"required,min=8"`
	UserGender      *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	UserCountry     *string `json:"country"`
	UserRegion      *string `json:"region"`
	UserCity        *string `json:"city"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // username or phone number
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	UserUserName    *string   `json:"user_name,omitempty"`
	UserFullName    string    `json:"full_name"`
	UserPhoneNumber *string   `json:"phone_number,omitempty"`
	UserRole        string    `json:"role"`
	UserGender      *string   `json:"gender,omitempty"`
	UserCountry     *string   `json:"country,omitempty"`
	UserRegion      *string   `json:"region,omitempty"`
	UserCity        *string   `json:"city,omitempty"`
	UserIsActive    bool      `json:"is_active"`
	UserCreatedAt   string    `json:"created_at"`
}

func (r *RegisterRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserUserName:    r.UserUserName,
		UserFullName:    r.UserFullName,
		UserPhoneNumber: r.UserPhoneNumber,
		UserGender:      r.UserGender,
		UserCountry:     r.UserCountry,
		UserRegion:      r.UserRegion,
		UserCity:        r.UserCity,
	}
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:          m.UserID,
		UserUserName:    m.UserUserName,
		UserFullName:    m.UserFullName,
		UserPhoneNumber: m.UserPhoneNumber,
		UserRole:        m.UserRole,
		UserGender:      m.UserGender,
		UserCountry:     m.UserCountry,
		UserRegion:      m.UserRegion,
		UserCity:        m.UserCity,
		UserIsActive:    m.UserIsActive,
		UserCreatedAt:   m.UserCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for i := range models {
		result = append(result, ToUserResponse(&models[i]))
	}
	return result
}

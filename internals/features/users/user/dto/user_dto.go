package dto

type UpdateProfileRequest struct {
	UserFullName    *string `json:"full_name" validate:"omitempty,min=2,max=255"`
	UserPhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	UserGender      *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	UserCountry     *string `json:"country"`
	UserRegion      *string `json:"region"`
	UserCity        *string `json:"city"`
}

// superuser-only role/activation switch
type UpdateUserRoleRequest struct {
	UserRole     *string `json:"role" validate:"omitempty,oneof=SUPERUSER EDU_CENTER BRANCH STUDENT ACCOUNTANT"`
	UserIsActive *bool   `json:"is_active"`
}

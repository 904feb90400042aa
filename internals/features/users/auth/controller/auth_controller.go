package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"educompass_backend/internals/configs"
	"educompass_backend/internals/constants"
	branchModel "educompass_backend/internals/features/main/branches/model"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	"educompass_backend/internals/features/users/auth/dto"
	"educompass_backend/internals/features/users/user/model"
	helper "educompass_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// REGISTER (role always STUDENT)
// =======================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if req.UserUserName == nil && req.UserPhoneNumber == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Either user_name or phone_number is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := req.ToModel()
	user.UserPassword = string(hashed)
	user.UserRole = constants.RoleStudent

	if err := ctrl.DB.Create(user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Username or phone number already taken")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	resp := dto.ToUserResponse(user)
	return helper.JsonCreated(c, "Registered successfully", resp)
}

// =======================
// LOGIN (username or phone number)
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	var user model.UserModel
	err := ctrl.DB.
		Where("user_user_name = ? OR user_phone_number = ?", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ctrl.issueAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&user),
	})
}

// issueAccessToken embeds tenant scope so downstream handlers can
// authorize without extra queries.
func (ctrl *AuthController) issueAccessToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserFullName,
		"role":      user.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}

	switch user.UserRole {
	case constants.RoleEduCenter:
		var center centerModel.EducationCenterModel
		if err := ctrl.DB.Where("edu_center_user_id = ?", user.UserID).First(&center).Error; err == nil {
			claims["edu_center_id"] = center.EduCenterID.String()
		}
	case constants.RoleBranch:
		var branch branchModel.BranchModel
		if err := ctrl.DB.Where("? = ANY(branch_admin_ids)", user.UserID.String()).First(&branch).Error; err == nil {
			claims["branch_id"] = branch.BranchID.String()
			claims["edu_center_id"] = branch.BranchEduCenterID.String()
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// =======================
// ME
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponse(&user))
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/edu_centers/dto"
	"educompass_backend/internals/features/main/edu_centers/model"
	helper "educompass_backend/internals/helpers"
)

type EduCenterController struct {
	DB *gorm.DB
}

func NewEduCenterController(db *gorm.DB) *EduCenterController {
	return &EduCenterController{DB: db}
}

// =======================
// LIST (public)
// =======================
func (ctrl *EduCenterController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EducationCenterModel{}).Where("edu_center_active = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("edu_center_name ILIKE ? OR edu_center_description ILIKE ?", like, like)
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("edu_center_city = ?", city)
	}
	if region := strings.TrimSpace(c.Query("region")); region != "" {
		q = q.Where("edu_center_region = ?", region)
	}
	if eduType := strings.TrimSpace(c.Query("edu_type")); eduType != "" {
		q = q.Where("? = ANY(edu_center_edu_type_ids)", eduType)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("? = ANY(edu_center_category_ids)", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count education centers")
	}

	var centers []model.EducationCenterModel
	if err := q.Order("edu_center_order ASC, edu_center_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&centers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education centers")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", centers, &pagination)
}

// =======================
// DETAIL (public; records a view when logged in)
// =======================
func (ctrl *EduCenterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}

	var center model.EducationCenterModel
	if err := ctrl.DB.First(&center, "edu_center_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Education center not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load education center")
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		view := model.ViewModel{ViewUserID: userID, ViewEduCenterID: id}
		if err := ctrl.DB.Create(&view).Error; err != nil {
			log.Printf("[WARN] record view: %v", err)
		}
	}

	resp := dto.EduCenterResponse{EducationCenterModel: center}
	ctrl.DB.Model(&model.LikeModel{}).Where("like_edu_center_id = ?", id).Count(&resp.LikesCount)
	ctrl.DB.Model(&model.ViewModel{}).Where("view_edu_center_id = ?", id).Count(&resp.ViewsCount)
	ctrl.DB.Table("branches").Where("branch_edu_center_id = ?", id).Count(&resp.BranchesCount)

	return helper.JsonOK(c, "ok", resp)
}

// =======================
// CREATE / UPDATE / DELETE (superuser)
// =======================
func (ctrl *EduCenterController) Create(c *fiber.Ctx) error {
	var req dto.EduCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	center := req.ToModel()
	if err := ctrl.DB.Create(center).Error; err != nil {
		log.Printf("[ERROR] create education center: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create education center")
	}
	return helper.JsonCreated(c, "Education center created", center)
}

func (ctrl *EduCenterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}

	var existing model.EducationCenterModel
	if err := ctrl.DB.First(&existing, "edu_center_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Education center not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load education center")
	}

	var req dto.EduCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updated := req.ToModel()
	updated.EduCenterID = existing.EduCenterID
	updated.EduCenterCreatedAt = existing.EduCenterCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update education center")
	}
	return helper.JsonUpdated(c, "Education center updated", updated)
}

func (ctrl *EduCenterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}
	res := ctrl.DB.Delete(&model.EducationCenterModel{}, "edu_center_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete education center")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Education center not found")
	}
	return helper.JsonDeleted(c, "Education center deleted", fiber.Map{"edu_center_id": id})
}

// =======================
// VIEW (logged-in users; duplicates are fine, counts are raw)
// =======================
func (ctrl *EduCenterController) RecordView(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	centerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}

	var exists int64
	if err := ctrl.DB.Model(&model.EducationCenterModel{}).
		Where("edu_center_id = ?", centerID).Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Education center not found")
	}

	view := model.ViewModel{ViewUserID: userID, ViewEduCenterID: centerID}
	if err := ctrl.DB.Create(&view).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record view")
	}

	var count int64
	ctrl.DB.Model(&model.ViewModel{}).Where("view_edu_center_id = ?", centerID).Count(&count)
	return helper.JsonOK(c, "View recorded", fiber.Map{"views_count": count})
}

// =======================
// LIKE TOGGLE (logged-in users)
// =======================
func (ctrl *EduCenterController) ToggleLike(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	centerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}

	var exists int64
	if err := ctrl.DB.Model(&model.EducationCenterModel{}).
		Where("edu_center_id = ?", centerID).Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Education center not found")
	}

	res := ctrl.DB.Where("like_user_id = ? AND like_edu_center_id = ?", userID, centerID).
		Delete(&model.LikeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle like")
	}
	if res.RowsAffected > 0 {
		return helper.JsonOK(c, "Like removed", fiber.Map{"liked": false})
	}

	like := model.LikeModel{LikeUserID: userID, LikeEduCenterID: centerID}
	if err := ctrl.DB.Create(&like).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle like")
	}
	return helper.JsonOK(c, "Liked", fiber.Map{"liked": true})
}

package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/branches/dto"
	"educompass_backend/internals/features/main/branches/model"
	helper "educompass_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

// centerScope narrows writes to the caller's own center unless superuser.
func (ctrl *BranchController) centerScope(c *fiber.Ctx) (uuid.UUID, bool) {
	if helper.GetRoleFromToken(c) == constants.RoleSuperuser {
		return uuid.Nil, false
	}
	centerID, err := helper.GetEduCenterIDFromToken(c)
	if err != nil {
		return uuid.Nil, false
	}
	return centerID, true
}

func (ctrl *BranchController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BranchModel{})
	if centerParam := strings.TrimSpace(c.Query("edu_center")); centerParam != "" {
		if centerID, err := uuid.Parse(centerParam); err == nil {
			q = q.Where("branch_edu_center_id = ?", centerID)
		}
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("branch_city = ?", city)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count branches")
	}

	var branches []model.BranchModel
	if err := q.Order("branch_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&branches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branches")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", branches, &pagination)
}

func (ctrl *BranchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var branch model.BranchModel
	if err := ctrl.DB.First(&branch, "branch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load branch")
	}
	return helper.JsonOK(c, "ok", branch)
}

func (ctrl *BranchController) Create(c *fiber.Ctx) error {
	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	branch, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}
	if centerID, scoped := ctrl.centerScope(c); scoped && branch.BranchEduCenterID != centerID {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot create a branch for another education center")
	}

	if err := ctrl.DB.Create(branch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create branch")
	}
	return helper.JsonCreated(c, "Branch created", branch)
}

func (ctrl *BranchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var existing model.BranchModel
	if err := ctrl.DB.First(&existing, "branch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load branch")
	}
	if centerID, scoped := ctrl.centerScope(c); scoped && existing.BranchEduCenterID != centerID {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot modify another education center's branch")
	}

	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}
	updated.BranchID = existing.BranchID
	updated.BranchEduCenterID = existing.BranchEduCenterID // center binding is immutable
	updated.BranchCreatedAt = existing.BranchCreatedAt

	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update branch")
	}
	return helper.JsonUpdated(c, "Branch updated", updated)
}

func (ctrl *BranchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var existing model.BranchModel
	if err := ctrl.DB.First(&existing, "branch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load branch")
	}
	if centerID, scoped := ctrl.centerScope(c); scoped && existing.BranchEduCenterID != centerID {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot delete another education center's branch")
	}

	if err := ctrl.DB.Delete(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete branch")
	}
	return helper.JsonDeleted(c, "Branch deleted", fiber.Map{"branch_id": id})
}

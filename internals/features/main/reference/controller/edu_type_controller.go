package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/reference/dto"
	"educompass_backend/internals/features/main/reference/model"
	helper "educompass_backend/internals/helpers"
)

type EduTypeController struct {
	DB *gorm.DB
}

func NewEduTypeController(db *gorm.DB) *EduTypeController {
	return &EduTypeController{DB: db}
}

func (ctrl *EduTypeController) GetAll(c *fiber.Ctx) error {
	var items []model.EduTypeModel
	if err := ctrl.DB.Order("edu_type_name ASC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education types")
	}
	return helper.JsonOK(c, "ok", items)
}

func (ctrl *EduTypeController) Create(c *fiber.Ctx) error {
	var req dto.ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	item := model.EduTypeModel{EduTypeName: strings.TrimSpace(req.Name)}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Education type already exists")
	}
	return helper.JsonCreated(c, "Education type created", item)
}

func (ctrl *EduTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var req dto.ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	var item model.EduTypeModel
	if err := ctrl.DB.First(&item, "edu_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Education type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load education type")
	}

	item.EduTypeName = strings.TrimSpace(req.Name)
	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Education type already exists")
	}
	return helper.JsonUpdated(c, "Education type updated", item)
}

func (ctrl *EduTypeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctrl.DB.Delete(&model.EduTypeModel{}, "edu_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete education type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Education type not found")
	}
	return helper.JsonDeleted(c, "Education type deleted", fiber.Map{"edu_type_id": id})
}

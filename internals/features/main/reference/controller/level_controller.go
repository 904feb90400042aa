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

type LevelController struct {
	DB *gorm.DB
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db}
}

func (ctrl *LevelController) GetAll(c *fiber.Ctx) error {
	var items []model.LevelModel
	if err := ctrl.DB.Order("level_name ASC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch levels")
	}
	return helper.JsonOK(c, "ok", items)
}

func (ctrl *LevelController) Create(c *fiber.Ctx) error {
	var req dto.ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	item := model.LevelModel{LevelName: strings.TrimSpace(req.Name)}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Level already exists")
	}
	return helper.JsonCreated(c, "Level created", item)
}

func (ctrl *LevelController) Update(c *fiber.Ctx) error {
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

	var item model.LevelModel
	if err := ctrl.DB.First(&item, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load level")
	}

	item.LevelName = strings.TrimSpace(req.Name)
	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Level already exists")
	}
	return helper.JsonUpdated(c, "Level updated", item)
}

func (ctrl *LevelController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctrl.DB.Delete(&model.LevelModel{}, "level_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete level")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
	}
	return helper.JsonDeleted(c, "Level deleted", fiber.Map{"level_id": id})
}

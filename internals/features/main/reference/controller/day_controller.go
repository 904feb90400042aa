package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/reference/dto"
	"educompass_backend/internals/features/main/reference/model"
	helper "educompass_backend/internals/helpers"
)

type DayController struct {
	DB *gorm.DB
}

func NewDayController(db *gorm.DB) *DayController {
	return &DayController{DB: db}
}

func (ctrl *DayController) GetAll(c *fiber.Ctx) error {
	var items []model.DayModel
	if err := ctrl.DB.Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch days")
	}
	return helper.JsonOK(c, "ok", items)
}

// Create only accepts the seven canonical uppercase day names.
func (ctrl *DayController) Create(c *fiber.Ctx) error {
	var req dto.ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if !model.IsValidDayName(name) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Day must be one of MONDAY..SUNDAY")
	}

	item := model.DayModel{DayName: name}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Day already exists")
	}
	return helper.JsonCreated(c, "Day created", item)
}

func (ctrl *DayController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctrl.DB.Delete(&model.DayModel{}, "day_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete day")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Day not found")
	}
	return helper.JsonDeleted(c, "Day deleted", fiber.Map{"day_id": id})
}

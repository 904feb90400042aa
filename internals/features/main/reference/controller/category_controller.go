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

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

func (ctrl *CategoryController) GetAll(c *fiber.Ctx) error {
	var items []model.CategoryModel
	if err := ctrl.DB.Order("category_name ASC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return helper.JsonOK(c, "ok", items)
}

func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	item := model.CategoryModel{CategoryName: strings.TrimSpace(req.Name)}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Category already exists")
	}
	return helper.JsonCreated(c, "Category created", item)
}

func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
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

	var item model.CategoryModel
	if err := ctrl.DB.First(&item, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load category")
	}

	item.CategoryName = strings.TrimSpace(req.Name)
	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Category already exists")
	}
	return helper.JsonUpdated(c, "Category updated", item)
}

func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := ctrl.DB.Delete(&model.CategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"category_id": id})
}

package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/events/dto"
	"educompass_backend/internals/features/main/events/model"
	helper "educompass_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// =======================
// LIST (public; upcoming by default)
// =======================
func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{}).Where("event_is_archived = ?", false)

	if center := strings.TrimSpace(c.Query("edu_center")); center != "" {
		if id, err := uuid.Parse(center); err == nil {
			q = q.Where("event_edu_center_id = ?", id)
		}
	}
	if branch := strings.TrimSpace(c.Query("branch")); branch != "" {
		if id, err := uuid.Parse(branch); err == nil {
			q = q.Where("event_branch_id = ?", id)
		}
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		if d, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("event_date >= ?", d)
		}
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		if d, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("event_date <= ?", d)
		}
	}
	if free := strings.TrimSpace(c.Query("free")); free == "true" || free == "1" {
		q = q.Where("event_price IS NULL OR event_price = 0")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("event_name ILIKE ? OR event_description ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_date ASC, event_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", events, &pagination)
}

// =======================
// FILTERS (schema for the listing UI)
// =======================
func (ctrl *EventController) GetFilters(c *fiber.Ctx) error {
	var dateRange struct {
		Min *time.Time `gorm:"column:min"`
		Max *time.Time `gorm:"column:max"`
	}
	ctrl.DB.Model(&model.EventModel{}).
		Where("event_is_archived = ?", false).
		Select("MIN(event_date) AS min, MAX(event_date) AS max").
		Scan(&dateRange)

	var priceRange struct {
		Min float64 `gorm:"column:min"`
		Max float64 `gorm:"column:max"`
	}
	ctrl.DB.Model(&model.EventModel{}).
		Where("event_is_archived = ?", false).
		Select("COALESCE(MIN(event_price), 0) AS min, COALESCE(MAX(event_price), 0) AS max").
		Scan(&priceRange)

	return helper.JsonOK(c, "ok", fiber.Map{
		"date":  fiber.Map{"min": dateRange.Min, "max": dateRange.Max},
		"price": fiber.Map{"min": priceRange.Min, "max": priceRange.Max},
		"free":  []bool{true, false},
	})
}

func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return helper.JsonOK(c, "ok", event)
}

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	event, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id or date in request")
	}
	if err := ctrl.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", event)
}

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var existing model.EventModel
	if err := ctrl.DB.First(&existing, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id or date in request")
	}
	updated.EventID = existing.EventID
	updated.EventIsArchived = existing.EventIsArchived
	updated.EventCreatedAt = existing.EventCreatedAt

	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", updated)
}

func (ctrl *EventController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	res := ctrl.DB.Model(&model.EventModel{}).
		Where("event_id = ?", id).
		Update("event_is_archived", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to archive event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonUpdated(c, "Event archived", fiber.Map{"event_id": id})
}

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	res := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}

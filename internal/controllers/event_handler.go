package controllers

import (
	"absss-backend/dto"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const maxListLimit = 100

// ListEventsHandler godoc
// @Summary List events
// @Description Newest first. upcoming=true keeps events on or after now, upcoming=false the ones before
// @Tags events
// @Produce json
// @Param category query string false "Event category"
// @Param upcoming query bool false "Upcoming or past only"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} models.Event
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/events [get]
func ListEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.List(c.UserContext(), repository.EventFilter{
			Category: c.Query("category"),
			Upcoming: utils.ParseBool(c.Query("upcoming")),
			Limit:    utils.ParseLimit(c.Query("limit"), 0, maxListLimit),
		})
		if err != nil {
			return err
		}
		return c.JSON(events)
	}
}

// UpcomingEventsHandler godoc
// @Summary Upcoming events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /api/events/upcoming [get]
func UpcomingEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.Upcoming(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(events)
	}
}

// PastEventsHandler godoc
// @Summary Past events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /api/events/past [get]
func PastEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.Past(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(events)
	}
}

// GetEventHandler godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [get]
func GetEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(e)
	}
}

// CreateEventHandler godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.EventCreateDTO true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/events [post]
func CreateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventCreateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		e, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// UpdateEventHandler godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body dto.EventUpdateDTO true "Fields to change"
// @Success 200 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [put]
func UpdateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		e, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(e)
	}
}

// DeleteEventHandler godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [delete]
func DeleteEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "event deleted"})
	}
}

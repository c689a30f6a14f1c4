package controllers

import (
	"absss-backend/dto"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateContactHandler godoc
// @Summary Send a contact message
// @Description Public. Subject defaults to "General Inquiry"
// @Tags contact
// @Accept json
// @Produce json
// @Param body body dto.ContactCreateDTO true "Message"
// @Success 201 {object} models.Contact
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/contact [post]
func CreateContactHandler(svc *services.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ContactCreateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		msg, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	}
}

// ListContactsHandler godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param isRead query bool false "Filter by read flag"
// @Success 200 {array} models.Contact
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/contact [get]
func ListContactsHandler(svc *services.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.List(c.UserContext(), repository.ContactFilter{
			IsRead: utils.ParseBool(c.Query("isRead")),
		})
		if err != nil {
			return err
		}
		return c.JSON(msgs)
	}
}

// GetContactHandler godoc
// @Summary Get a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contact/{id} [get]
func GetContactHandler(svc *services.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msg, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(msg)
	}
}

// MarkContactReadHandler godoc
// @Summary Mark a message as read
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contact/{id}/read [patch]
func MarkContactReadHandler(svc *services.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msg, err := svc.MarkRead(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(msg)
	}
}

// UpdateContactHandler godoc
// @Summary Update read or responded flags
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param body body dto.ContactUpdateDTO true "Flags"
// @Success 200 {object} models.Contact
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contact/{id} [put]
func UpdateContactHandler(svc *services.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ContactUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		msg, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(msg)
	}
}

// DeleteContactHandler godoc
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contact/{id} [delete]
func DeleteContactHandler(svc *services.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "message deleted"})
	}
}

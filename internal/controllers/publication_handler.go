package controllers

import (
	"absss-backend/dto"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListPublicationsHandler godoc
// @Summary List publications
// @Tags publications
// @Produce json
// @Param category query string false "research, review, case-study or blog"
// @Param limit query int false "Maximum number of publications"
// @Success 200 {array} models.Publication
// @Router /api/publications [get]
func ListPublicationsHandler(svc *services.PublicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pubs, err := svc.List(c.UserContext(), repository.PublicationFilter{
			Category: c.Query("category"),
			Limit:    utils.ParseLimit(c.Query("limit"), 0, maxListLimit),
		})
		if err != nil {
			return err
		}
		return c.JSON(pubs)
	}
}

// RecentPublicationsHandler godoc
// @Summary Most recent publications
// @Tags publications
// @Produce json
// @Param limit query int false "Defaults to 6"
// @Success 200 {array} models.Publication
// @Router /api/publications/recent [get]
func RecentPublicationsHandler(svc *services.PublicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := utils.ParseLimit(c.Query("limit"), services.RecentPublicationsLimit, maxListLimit)
		pubs, err := svc.Recent(c.UserContext(), limit)
		if err != nil {
			return err
		}
		return c.JSON(pubs)
	}
}

// GetPublicationHandler godoc
// @Summary Get a publication
// @Tags publications
// @Produce json
// @Param id path string true "Publication ID"
// @Success 200 {object} models.Publication
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/publications/{id} [get]
func GetPublicationHandler(svc *services.PublicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(p)
	}
}

// CreatePublicationHandler godoc
// @Summary Create a publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PublicationCreateDTO true "Publication"
// @Success 201 {object} models.Publication
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/publications [post]
func CreatePublicationHandler(svc *services.PublicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PublicationCreateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		p, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdatePublicationHandler godoc
// @Summary Update a publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Publication ID"
// @Param body body dto.PublicationUpdateDTO true "Fields to change"
// @Success 200 {object} models.Publication
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/publications/{id} [put]
func UpdatePublicationHandler(svc *services.PublicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PublicationUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(p)
	}
}

// DeletePublicationHandler godoc
// @Summary Delete a publication
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Publication ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/publications/{id} [delete]
func DeletePublicationHandler(svc *services.PublicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "publication deleted"})
	}
}

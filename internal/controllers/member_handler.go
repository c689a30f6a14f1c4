package controllers

import (
	"absss-backend/dto"
	"absss-backend/internal/middleware"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListMembersHandler godoc
// @Summary List members
// @Description Ordered by role then name. Only active members are listed unless a caller holding the members capability passes activeOnly=false
// @Tags members
// @Produce json
// @Param role query string false "faculty, student or alumni"
// @Param activeOnly query bool false "Defaults to true"
// @Param isActive query bool false "Exact active flag, members capability only"
// @Success 200 {array} models.Member
// @Router /api/members [get]
func ListMembersHandler(svc *services.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := repository.MemberFilter{Role: c.Query("role")}

		active := true
		f.IsActive = &active
		if middleware.CanFromLocals(c, models.CapMembers) {
			if only := utils.ParseBool(c.Query("activeOnly")); only != nil && !*only {
				f.IsActive = nil
			}
			if exact := utils.ParseBool(c.Query("isActive")); exact != nil {
				f.IsActive = exact
			}
		}

		members, err := svc.List(c.UserContext(), f)
		if err != nil {
			return err
		}
		return c.JSON(members)
	}
}

// GetMemberHandler godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} models.Member
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/members/{id} [get]
func GetMemberHandler(svc *services.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(m)
	}
}

// CreateMemberHandler godoc
// @Summary Create a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.MemberCreateDTO true "Member"
// @Success 201 {object} models.Member
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/members [post]
func CreateMemberHandler(svc *services.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MemberCreateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		m, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// UpdateMemberHandler godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param body body dto.MemberUpdateDTO true "Fields to change"
// @Success 200 {object} models.Member
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/members/{id} [put]
func UpdateMemberHandler(svc *services.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MemberUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		m, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(m)
	}
}

// DeleteMemberHandler godoc
// @Summary Delete a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/members/{id} [delete]
func DeleteMemberHandler(svc *services.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "member deleted"})
	}
}

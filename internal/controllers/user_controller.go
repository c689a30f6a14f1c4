package controllers

import (
	"absss-backend/dto"
	"absss-backend/internal/middleware"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListUsersHandler godoc
// @Summary List back-office accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "admin, moderator or editor"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {array} dto.UserProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users [get]
func ListUsersHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext(), repository.UserFilter{
			Role:     c.Query("role"),
			IsActive: utils.ParseBool(c.Query("isActive")),
		})
		if err != nil {
			return err
		}
		return c.JSON(users)
	}
}

// GetUserHandler godoc
// @Summary Get an account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserProfileDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func GetUserHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// CreateUserHandler godoc
// @Summary Create an account
// @Description Role defaults to editor; permissions default to events, publications, members and contacts
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UserCreateDTO true "New account"
// @Success 201 {object} dto.UserProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/users [post]
func CreateUserHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UserCreateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		u, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// UpdateUserHandler godoc
// @Summary Update an account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body dto.UserUpdateDTO true "Fields to change"
// @Success 200 {object} dto.UserProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func UpdateUserHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UserUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		u, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// DeleteUserHandler godoc
// @Summary Delete an account
// @Description The caller's own account and the last admin cannot be deleted
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func DeleteUserHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "user deleted"})
	}
}

// ToggleUserActiveHandler godoc
// @Summary Activate or deactivate an account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserProfileDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/users/{id}/toggle-status [patch]
func ToggleUserActiveHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		u, err := svc.ToggleActive(c.UserContext(), actor, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

package controllers

import (
	"absss-backend/dto"
	"absss-backend/internal/middleware"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LoginHandler godoc
// @Summary Sign in
// @Description Exchange a username or email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequestDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		res, err := svc.Login(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// GetProfileHandler godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func GetProfileHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		profile, err := svc.GetProfile(c.UserContext(), uid)
		if err != nil {
			return err
		}
		return c.JSON(profile)
	}
}

// UpdateProfileHandler godoc
// @Summary Update own username or email
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ProfileUpdateDTO true "Profile changes"
// @Success 200 {object} dto.UserProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/profile [put]
func UpdateProfileHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.ProfileUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		profile, err := svc.UpdateProfile(c.UserContext(), uid, body)
		if err != nil {
			return err
		}
		return c.JSON(profile)
	}
}

// ChangePasswordHandler godoc
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ChangePasswordDTO true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/change-password [put]
func ChangePasswordHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.ChangePasswordDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		if err := svc.ChangePassword(c.UserContext(), uid, body); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "password updated"})
	}
}

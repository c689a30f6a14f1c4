package controllers

import (
	"fmt"

	"absss-backend/internal/errs"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler godoc
// @Summary Upload an image or a PDF
// @Description image accepts image/* up to 5 MB, pdf accepts application/pdf up to 10 MB
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param kind path string true "image or pdf"
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.UploadResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/upload/{kind} [post]
func UploadHandler(svc *services.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.Enabled() {
			return fmt.Errorf("no media provider configured: %w", errs.ErrStorageUnavailable)
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return errs.NewValidationError(errs.Field("file", "this field is required"))
		}
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload: %w", err)
		}
		defer f.Close()

		res, err := svc.Upload(c.UserContext(), c.Params("kind"), fh.Filename,
			fh.Header.Get(fiber.HeaderContentType), fh.Size, f)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

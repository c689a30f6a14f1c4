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

// ListBlogsHandler godoc
// @Summary List blog posts
// @Description Drafts are only visible to callers holding the blogs capability
// @Tags blogs
// @Produce json
// @Param category query string false "Blog category"
// @Param tag query string false "Tag"
// @Param isPublished query bool false "blogs capability only"
// @Param limit query int false "Maximum number of posts"
// @Success 200 {array} models.Blog
// @Router /api/blogs [get]
func ListBlogsHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := repository.BlogFilter{
			Category: c.Query("category"),
			Tag:      c.Query("tag"),
			Limit:    utils.ParseLimit(c.Query("limit"), 0, maxListLimit),
		}
		if middleware.CanFromLocals(c, models.CapBlogs) {
			f.IsPublished = utils.ParseBool(c.Query("isPublished"))
		} else {
			published := true
			f.IsPublished = &published
		}

		blogs, err := svc.List(c.UserContext(), f)
		if err != nil {
			return err
		}
		return c.JSON(blogs)
	}
}

// PublishedBlogsHandler godoc
// @Summary Latest published posts
// @Tags blogs
// @Produce json
// @Success 200 {array} models.Blog
// @Router /api/blogs/published [get]
func PublishedBlogsHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blogs, err := svc.Published(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(blogs)
	}
}

// RecentBlogsHandler godoc
// @Summary Recent published posts
// @Tags blogs
// @Produce json
// @Success 200 {array} models.Blog
// @Router /api/blogs/recent [get]
func RecentBlogsHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blogs, err := svc.Recent(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(blogs)
	}
}

// BlogsByCategoryHandler godoc
// @Summary Published posts in a category
// @Tags blogs
// @Produce json
// @Param category path string true "Blog category"
// @Success 200 {array} models.Blog
// @Router /api/blogs/category/{category} [get]
func BlogsByCategoryHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blogs, err := svc.ByCategory(c.UserContext(), c.Params("category"))
		if err != nil {
			return err
		}
		return c.JSON(blogs)
	}
}

// GetBlogHandler godoc
// @Summary Get a blog post
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} models.Blog
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.Get(c.UserContext(), c.Params("id"), middleware.CanFromLocals(c, models.CapBlogs))
		if err != nil {
			return err
		}
		return c.JSON(b)
	}
}

// BlogViewHandler godoc
// @Summary Count a read
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogViewsDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/blogs/{id}/view [patch]
func BlogViewHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		views, err := svc.IncrementViews(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(dto.BlogViewsDTO{ID: id, Views: views})
	}
}

// CreateBlogHandler godoc
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.BlogCreateDTO true "Blog post"
// @Success 201 {object} models.Blog
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/blogs [post]
func CreateBlogHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.BlogCreateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		b, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// UpdateBlogHandler godoc
// @Summary Update a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param body body dto.BlogUpdateDTO true "Fields to change"
// @Success 200 {object} models.Blog
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/blogs/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.BlogUpdateDTO
		if err := parseJSON(c, &body); err != nil {
			return err
		}
		b, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(b)
	}
}

// DeleteBlogHandler godoc
// @Summary Delete a blog post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "blog deleted"})
	}
}

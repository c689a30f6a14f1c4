package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"absss-backend/config"
	"absss-backend/dto"
	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/utils"

	"go.uber.org/zap"
)

// SeedAdmin creates the configured administrator unless an account with the
// same username or email already exists. It reports whether an account was
// created.
func SeedAdmin(ctx context.Context, users services.UserRepo, admin config.AdminConfig, log *zap.Logger) (bool, error) {
	if admin.Password == "" {
		return false, errors.New("ADMIN_PASSWORD is required to seed the admin account")
	}

	existing, err := users.FindByIdentifier(ctx, utils.Trim(admin.Username), utils.NormalizeEmail(admin.Email))
	switch {
	case err == nil:
		log.Info("admin account already exists",
			zap.String("username", existing.Username),
			zap.String("email", existing.Email))
		return false, nil
	case !errors.Is(err, errs.ErrNotFound):
		return false, fmt.Errorf("look up admin: %w", err)
	}

	profile, err := services.NewUserService(users).Create(ctx, dto.UserCreateDTO{
		Username:    admin.Username,
		Email:       admin.Email,
		Password:    admin.Password,
		Role:        models.RoleAdmin,
		Permissions: []string{models.CapAll},
	})
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	log.Info("admin account created", zap.String("id", profile.ID), zap.String("username", profile.Username))
	return true, nil
}

// DemoContent is the set of services SeedDemo writes through.
type DemoContent struct {
	Events       *services.EventService
	Publications *services.PublicationService
	Members      *services.MemberService
	Blogs        *services.BlogService
}

// SeedDemo fills empty collections with a few sample documents. Collections
// that already hold data are left alone.
func SeedDemo(ctx context.Context, d DemoContent, log *zap.Logger) error {
	if events, err := d.Events.List(ctx, repository.EventFilter{Limit: 1}); err != nil {
		return err
	} else if len(events) == 0 {
		for _, e := range demoEvents {
			if _, err := d.Events.Create(ctx, e); err != nil {
				return fmt.Errorf("seed event %q: %w", e.Title, err)
			}
		}
		log.Info("seeded events", zap.Int("count", len(demoEvents)))
	}

	if pubs, err := d.Publications.List(ctx, repository.PublicationFilter{Limit: 1}); err != nil {
		return err
	} else if len(pubs) == 0 {
		for _, p := range demoPublications {
			if _, err := d.Publications.Create(ctx, p); err != nil {
				return fmt.Errorf("seed publication %q: %w", p.Title, err)
			}
		}
		log.Info("seeded publications", zap.Int("count", len(demoPublications)))
	}

	if members, err := d.Members.List(ctx, repository.MemberFilter{}); err != nil {
		return err
	} else if len(members) == 0 {
		for _, m := range demoMembers {
			if _, err := d.Members.Create(ctx, m); err != nil {
				return fmt.Errorf("seed member %q: %w", m.Name, err)
			}
		}
		log.Info("seeded members", zap.Int("count", len(demoMembers)))
	}

	if blogs, err := d.Blogs.List(ctx, repository.BlogFilter{Limit: 1}); err != nil {
		return err
	} else if len(blogs) == 0 {
		for _, b := range demoBlogs {
			if _, err := d.Blogs.Create(ctx, b); err != nil {
				return fmt.Errorf("seed blog %q: %w", b.Title, err)
			}
		}
		log.Info("seeded blogs", zap.Int("count", len(demoBlogs)))
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

var demoEvents = []dto.EventCreateDTO{
	{
		Title:       "Annual Research Symposium",
		Description: "A day of talks and posters from faculty and students across the society.",
		Date:        "2026-11-20",
		Category:    models.EventConference,
		Location:    "Main Auditorium",
	},
	{
		Title:       "Data Analysis with R",
		Description: "Hands-on workshop covering data cleaning, modelling and visualisation.",
		Date:        "2026-12-05",
		Category:    models.EventWorkshop,
		Location:    "Computer Lab 2",
	},
	{
		Title:       "Guest Lecture: Field Methods",
		Description: "Visiting faculty discuss survey design for rural studies.",
		Date:        "2026-03-14",
		Category:    models.EventLecture,
		Location:    "Seminar Room B",
	},
}

var demoPublications = []dto.PublicationCreateDTO{
	{
		Title:         "Community Health Outcomes in Rural Districts",
		Authors:       []string{"A. Rahman", "S. Akter"},
		Abstract:      "A cross-sectional study of primary care access and outcomes.",
		PdfURL:        "https://example.org/papers/community-health.pdf",
		Category:      models.PublicationResearch,
		PublishedDate: "2026-02-01",
		Journal:       "Journal of Social Science Studies",
	},
	{
		Title:         "A Review of Microfinance Evaluation Methods",
		Authors:       []string{"M. Hossain"},
		Abstract:      "Survey of experimental and quasi-experimental evaluation designs.",
		PdfURL:        "https://example.org/papers/microfinance-review.pdf",
		Category:      models.PublicationReview,
		PublishedDate: "2025-10-15",
		Journal:       "Development Review",
	},
}

var demoMembers = []dto.MemberCreateDTO{
	{
		Name:        "Dr. Nusrat Jahan",
		Role:        models.MemberFaculty,
		Designation: "Faculty Advisor",
		Email:       "nusrat.jahan@example.org",
		Department:  "Sociology",
		Bio:         "Works on urban migration and labour markets.",
	},
	{
		Name:        "Tanvir Ahmed",
		Role:        models.MemberStudent,
		Designation: "General Secretary",
		Email:       "tanvir.ahmed@example.org",
		Department:  "Economics",
		Bio:         "Final year student interested in development economics.",
	},
}

var demoBlogs = []dto.BlogCreateDTO{
	{
		Title:       "Welcome to the new website",
		Content:     "We have moved our events, publications and member directory to a single place.",
		Excerpt:     "Everything about the society in one place.",
		Author:      "Editorial Team",
		Category:    models.BlogNews,
		Tags:        []string{"announcement"},
		IsPublished: boolPtr(true),
	},
	{
		Title:       "Getting started with survey data",
		Content:     "A short tutorial on loading and cleaning survey exports.",
		Excerpt:     "Load, clean and explore survey exports.",
		Author:      "Tanvir Ahmed",
		Category:    models.BlogTutorial,
		Tags:        []string{"tutorial", "data"},
		IsPublished: boolPtr(false),
	},
}

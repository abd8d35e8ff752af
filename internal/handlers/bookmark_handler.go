package handlers

import (
	"errors"
	"log"

	"bookmarks/internal/middleware"
	"bookmarks/internal/models"
	"bookmarks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookmarkHandler handles HTTP requests for bookmarks. All routes are
// owner-scoped via the user ID injected by the auth middleware.
type BookmarkHandler struct {
	bookmarkService *services.BookmarkService
	validate        *validator.Validate
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(bookmarkService *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the bookmark routes with the Fiber app. The
// router is expected to carry the auth middleware.
func (h *BookmarkHandler) RegisterRoutes(router fiber.Router) {
	bookmarkRoutes := router.Group("/bookmarks")
	bookmarkRoutes.Get("/", h.HandleList)
	bookmarkRoutes.Post("/", h.HandleCreate)
	bookmarkRoutes.Get("/:id", h.HandleGetByID)
	bookmarkRoutes.Patch("/:id", h.HandleEditByID)
	bookmarkRoutes.Delete("/:id", h.HandleDeleteByID)
}

// HandleList returns all bookmarks owned by the authenticated user.
func (h *BookmarkHandler) HandleList(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	bookmarks, err := h.bookmarkService.ListForUser(userID)
	if err != nil {
		log.Printf("Error listing bookmarks for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve bookmarks",
		})
	}
	return c.JSON(bookmarks)
}

// CreateBookmarkRequest represents the request body for creating a
// bookmark.
type CreateBookmarkRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// HandleCreate creates a new bookmark owned by the authenticated user.
func (h *BookmarkHandler) HandleCreate(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req CreateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create bookmark request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	bookmark := models.Bookmark{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}
	created, err := h.bookmarkService.Create(userID, &bookmark)
	if err != nil {
		log.Printf("Error creating bookmark for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create bookmark",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetByID returns a single bookmark owned by the authenticated
// user.
func (h *BookmarkHandler) HandleGetByID(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	bookmarkID := c.Params("id")

	bookmark, err := h.bookmarkService.GetForUser(bookmarkID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Bookmark not found",
			})
		}
		log.Printf("Error getting bookmark %s: %v", bookmarkID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve bookmark",
		})
	}
	return c.JSON(bookmark)
}

// EditBookmarkRequest represents a partial bookmark update. Nil fields
// are left unchanged.
type EditBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// HandleEditByID applies a partial update to a bookmark owned by the
// authenticated user.
func (h *BookmarkHandler) HandleEditByID(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	bookmarkID := c.Params("id")

	var req EditBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing edit bookmark request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	bookmark, err := h.bookmarkService.UpdateForUser(bookmarkID, userID, services.BookmarkPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Bookmark not found",
			})
		}
		log.Printf("Error updating bookmark %s: %v", bookmarkID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update bookmark",
		})
	}
	return c.JSON(bookmark)
}

// HandleDeleteByID removes a bookmark owned by the authenticated user.
func (h *BookmarkHandler) HandleDeleteByID(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	bookmarkID := c.Params("id")

	if err := h.bookmarkService.DeleteForUser(bookmarkID, userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Bookmark not found",
			})
		}
		log.Printf("Error deleting bookmark %s: %v", bookmarkID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete bookmark",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

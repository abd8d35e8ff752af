package repositories

import "bookmarks/internal/models"

// BookmarkRepository defines the interface for bookmark data access.
// Read, update and delete are scoped by the owning user at the query
// level, so a foreign bookmark and a missing one are indistinguishable.
type BookmarkRepository interface {
	GetAllByUser(userID string) ([]models.Bookmark, error)
	GetByIDAndUser(id, userID string) (*models.Bookmark, error)
	Create(bookmark *models.Bookmark) error
	Update(bookmark *models.Bookmark) error
	DeleteByIDAndUser(id, userID string) error
}

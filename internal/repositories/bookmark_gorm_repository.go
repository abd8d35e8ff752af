package repositories

import (
	"errors"
	"fmt"

	"bookmarks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookmarkRepository is a GORM implementation of BookmarkRepository.
type GORMBookmarkRepository struct {
	db *gorm.DB
}

// NewGORMBookmarkRepository creates a new instance of GORMBookmarkRepository.
func NewGORMBookmarkRepository(db *gorm.DB) *GORMBookmarkRepository {
	return &GORMBookmarkRepository{
		db: db,
	}
}

// GetAllByUser retrieves all bookmarks owned by the given user, in
// insertion order.
func (r *GORMBookmarkRepository) GetAllByUser(userID string) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookmarks for user %s: %w", userID, err)
	}
	return bookmarks, nil
}

// GetByIDAndUser retrieves a single bookmark by its ID, scoped to the
// owning user. A bookmark owned by someone else is ErrNotFound.
func (r *GORMBookmarkRepository) GetByIDAndUser(id, userID string) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.First(&bookmark, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bookmark with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bookmark by ID %s: %w", id, err)
	}
	return &bookmark, nil
}

// Create creates a new bookmark in the database.
func (r *GORMBookmarkRepository) Create(bookmark *models.Bookmark) error {
	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}
	if err := r.db.Create(bookmark).Error; err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// Update persists all fields of an existing bookmark.
func (r *GORMBookmarkRepository) Update(bookmark *models.Bookmark) error {
	res := r.db.Save(bookmark)
	if res.Error != nil {
		return fmt.Errorf("failed to update bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bookmark with ID %s: %w", bookmark.ID, ErrNotFound)
	}
	return nil
}

// DeleteByIDAndUser deletes a bookmark by its ID, scoped to the owning
// user.
func (r *GORMBookmarkRepository) DeleteByIDAndUser(id, userID string) error {
	res := r.db.Delete(&models.Bookmark{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bookmark %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bookmark with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

package repositories

import (
	"fmt"
	"sync"

	"bookmarks/internal/models"

	"github.com/google/uuid"
)

// MockBookmarkRepository is an in-memory implementation of BookmarkRepository.
type MockBookmarkRepository struct {
	bookmarks map[string]models.Bookmark
	order     []string // insertion order, so List stays stable across calls
	mu        sync.RWMutex
}

// NewMockBookmarkRepository creates a new instance of MockBookmarkRepository.
func NewMockBookmarkRepository() *MockBookmarkRepository {
	return &MockBookmarkRepository{
		bookmarks: make(map[string]models.Bookmark),
	}
}

// GetAllByUser returns all bookmarks owned by the given user.
func (r *MockBookmarkRepository) GetAllByUser(userID string) ([]models.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Bookmark{}
	for _, id := range r.order {
		if b, ok := r.bookmarks[id]; ok && b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

// GetByIDAndUser returns a bookmark by its ID if owned by the given user.
func (r *MockBookmarkRepository) GetByIDAndUser(id, userID string) (*models.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookmark, ok := r.bookmarks[id]
	if !ok || bookmark.UserID != userID {
		return nil, fmt.Errorf("bookmark with ID %s: %w", id, ErrNotFound)
	}
	return &bookmark, nil
}

// Create adds a new bookmark.
func (r *MockBookmarkRepository) Create(bookmark *models.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}
	r.bookmarks[bookmark.ID] = *bookmark
	r.order = append(r.order, bookmark.ID)
	return nil
}

// Update modifies an existing bookmark.
func (r *MockBookmarkRepository) Update(bookmark *models.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookmarks[bookmark.ID]; !ok {
		return fmt.Errorf("bookmark with ID %s: %w", bookmark.ID, ErrNotFound)
	}
	r.bookmarks[bookmark.ID] = *bookmark
	return nil
}

// DeleteByIDAndUser removes a bookmark by its ID if owned by the given user.
func (r *MockBookmarkRepository) DeleteByIDAndUser(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookmark, ok := r.bookmarks[id]
	if !ok || bookmark.UserID != userID {
		return fmt.Errorf("bookmark with ID %s: %w", id, ErrNotFound)
	}
	delete(r.bookmarks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

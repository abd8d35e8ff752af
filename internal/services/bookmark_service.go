package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"bookmarks/internal/models"
	"bookmarks/internal/repositories"
	"bookmarks/pkg/rabbitmq"
)

// BookmarkPatch carries a partial bookmark update. Nil fields are left
// unchanged.
type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkService handles business logic for bookmarks. Every operation
// is scoped to the owning user; a bookmark owned by someone else is
// indistinguishable from a missing one.
type BookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
	mqClient     *rabbitmq.Client
}

// NewBookmarkService creates a new BookmarkService. mqClient may be
// nil, in which case event publishing is disabled.
func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository, mqClient *rabbitmq.Client) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		mqClient:     mqClient,
	}
}

// ListForUser retrieves all bookmarks owned by the given user.
func (s *BookmarkService) ListForUser(userID string) ([]models.Bookmark, error) {
	return s.bookmarkRepo.GetAllByUser(userID)
}

// Create persists a new bookmark owned by the given user.
func (s *BookmarkService) Create(userID string, bookmark *models.Bookmark) (*models.Bookmark, error) {
	bookmark.UserID = userID
	if err := s.bookmarkRepo.Create(bookmark); err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	s.publishEvent(rabbitmq.BookmarkCreatedKey, map[string]interface{}{
		"bookmarkId": bookmark.ID,
		"userId":     bookmark.UserID,
		"title":      bookmark.Title,
	})
	return bookmark, nil
}

// GetForUser retrieves a single bookmark by ID, scoped to the owning
// user.
func (s *BookmarkService) GetForUser(id, userID string) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return bookmark, nil
}

// UpdateForUser applies a partial update to a bookmark owned by the
// given user.
func (s *BookmarkService) UpdateForUser(id, userID string, patch BookmarkPatch) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	if patch.Title != nil {
		bookmark.Title = *patch.Title
	}
	if patch.Link != nil {
		bookmark.Link = *patch.Link
	}
	if patch.Description != nil {
		bookmark.Description = *patch.Description
	}

	if err := s.bookmarkRepo.Update(bookmark); err != nil {
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}
	return bookmark, nil
}

// DeleteForUser removes a bookmark owned by the given user.
func (s *BookmarkService) DeleteForUser(id, userID string) error {
	if err := s.bookmarkRepo.DeleteByIDAndUser(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	s.publishEvent(rabbitmq.BookmarkDeletedKey, map[string]interface{}{
		"bookmarkId": id,
		"userId":     userID,
	})
	return nil
}

func (s *BookmarkService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

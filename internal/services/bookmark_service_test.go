package services_test

import (
	"testing"

	"bookmarks/internal/models"
	"bookmarks/internal/repositories"
	"bookmarks/internal/services"

	"github.com/stretchr/testify/assert"
)

func newBookmarkService() (*services.BookmarkService, *repositories.MockBookmarkRepository) {
	repo := repositories.NewMockBookmarkRepository()
	return services.NewBookmarkService(repo, nil), repo
}

func TestBookmarkService_CreateAndList(t *testing.T) {
	bookmarkService, _ := newBookmarkService()

	created, err := bookmarkService.Create("owner-1", &models.Bookmark{
		Title: "first bookmark",
		Link:  "https://www.example.org",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.UserID)

	list, err := bookmarkService.ListForUser("owner-1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "first bookmark", list[0].Title)

	// Another owner sees nothing.
	otherList, err := bookmarkService.ListForUser("owner-2")
	assert.NoError(t, err)
	assert.Empty(t, otherList)
}

func TestBookmarkService_OwnerScoping(t *testing.T) {
	bookmarkService, _ := newBookmarkService()

	created, err := bookmarkService.Create("owner-1", &models.Bookmark{
		Title: "mine",
		Link:  "https://www.example.org",
	})
	assert.NoError(t, err)

	// A foreign owner gets the same not-found outcome as a missing ID.
	_, errForeign := bookmarkService.GetForUser(created.ID, "owner-2")
	assert.ErrorIs(t, errForeign, services.ErrNotFound)
	_, errMissing := bookmarkService.GetForUser("no-such-id", "owner-1")
	assert.ErrorIs(t, errMissing, services.ErrNotFound)
	assert.Equal(t, errForeign, errMissing)

	_, err = bookmarkService.UpdateForUser(created.ID, "owner-2", services.BookmarkPatch{Title: strPtr("stolen")})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = bookmarkService.DeleteForUser(created.ID, "owner-2")
	assert.ErrorIs(t, err, services.ErrNotFound)

	// The bookmark is untouched for its owner.
	got, err := bookmarkService.GetForUser(created.ID, "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
}

func TestBookmarkService_PartialUpdate(t *testing.T) {
	bookmarkService, _ := newBookmarkService()

	created, err := bookmarkService.Create("owner-1", &models.Bookmark{
		Title:       "first bookmark",
		Link:        "https://www.example.org",
		Description: "original",
	})
	assert.NoError(t, err)

	updated, err := bookmarkService.UpdateForUser(created.ID, "owner-1", services.BookmarkPatch{
		Title: strPtr("second bookmark"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "second bookmark", updated.Title)
	assert.Equal(t, "https://www.example.org", updated.Link)
	assert.Equal(t, "original", updated.Description)

	// An empty patch is a no-op.
	unchanged, err := bookmarkService.UpdateForUser(created.ID, "owner-1", services.BookmarkPatch{})
	assert.NoError(t, err)
	assert.Equal(t, updated, unchanged)
}

func TestBookmarkService_DeleteRoundTrip(t *testing.T) {
	bookmarkService, _ := newBookmarkService()

	created, err := bookmarkService.Create("owner-1", &models.Bookmark{
		Title: "to delete",
		Link:  "https://www.example.org",
	})
	assert.NoError(t, err)

	assert.NoError(t, bookmarkService.DeleteForUser(created.ID, "owner-1"))

	list, err := bookmarkService.ListForUser("owner-1")
	assert.NoError(t, err)
	assert.Empty(t, list)

	// Deleting again is not found.
	assert.ErrorIs(t, bookmarkService.DeleteForUser(created.ID, "owner-1"), services.ErrNotFound)
}

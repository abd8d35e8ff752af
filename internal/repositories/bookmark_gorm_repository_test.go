package repositories_test

import (
	"fmt"
	"testing"

	"bookmarks/internal/models"
	"bookmarks/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Bookmark{}))
	return db
}

func TestGORMBookmarkRepository_OwnerScoping(t *testing.T) {
	db := setupDB(t, "repo_scoping")
	repo := repositories.NewGORMBookmarkRepository(db)

	mine := &models.Bookmark{UserID: "owner-1", Title: "mine", Link: "https://www.example.org"}
	theirs := &models.Bookmark{UserID: "owner-2", Title: "theirs", Link: "https://www.example.com"}
	assert.NoError(t, repo.Create(mine))
	assert.NoError(t, repo.Create(theirs))
	assert.NotEmpty(t, mine.ID)

	// Listing only sees the owner's rows.
	list, err := repo.GetAllByUser("owner-1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Title)

	// A foreign owner's lookup is the same error as a missing row.
	_, errForeign := repo.GetByIDAndUser(mine.ID, "owner-2")
	assert.ErrorIs(t, errForeign, repositories.ErrNotFound)
	_, errMissing := repo.GetByIDAndUser("no-such-id", "owner-1")
	assert.ErrorIs(t, errMissing, repositories.ErrNotFound)

	// Foreign delete does not touch the row.
	assert.ErrorIs(t, repo.DeleteByIDAndUser(mine.ID, "owner-2"), repositories.ErrNotFound)
	got, err := repo.GetByIDAndUser(mine.ID, "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, "mine", got.Title)

	// Owner delete removes it.
	assert.NoError(t, repo.DeleteByIDAndUser(mine.ID, "owner-1"))
	_, err = repo.GetByIDAndUser(mine.ID, "owner-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_EmailLookup(t *testing.T) {
	db := setupDB(t, "repo_users")
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Email: "ada@example.com", Password: "hashed"}
	assert.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	got, err := repo.GetByEmail("ada@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	got.FirstName = "Ada"
	assert.NoError(t, repo.Update(got))
	reloaded, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ada", reloaded.FirstName)
}

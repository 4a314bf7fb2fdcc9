package services

import (
	"fmt"
	"testing"

	"ebook-share/app/models"
	"ebook-share/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Ebook{}))
	return gdb
}

func testServices(t *testing.T) (*UserService, *EbookService) {
	t.Helper()
	gdb := testDB(t)
	users := repo.NewUserRepository(gdb)
	books := repo.NewEbookRepository(gdb)
	return NewUserService(users, books), NewEbookService(books, users)
}

func signupUser(t *testing.T, users *UserService, username string) *models.User {
	t.Helper()
	require.NoError(t, users.Signup(username, username+"@example.com", "password1", "password1"))
	u, err := users.FindByUsername(username)
	require.NoError(t, err)
	return u
}

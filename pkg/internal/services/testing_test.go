package services

import (
	"testing"

	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}

	// One in-memory SQLite database per connection, so pin the pool to one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unable to unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigration(db); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	database.C = db
	t.Cleanup(func() {
		database.C = nil
		_ = sqlDB.Close()
	})
}

func testAccount(t *testing.T, name string) models.Account {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	account := models.Account{Name: name, Nick: name, PasswordHash: string(hash)}
	if err := database.C.Create(&account).Error; err != nil {
		t.Fatalf("unable to create account %q: %v", name, err)
	}

	return account
}

func testPost(t *testing.T, author models.Account, text string) models.Post {
	t.Helper()

	item, err := NewPost(author, models.Post{Text: text})
	if err != nil {
		t.Fatalf("unable to create post %q: %v", text, err)
	}

	return item
}

func countFollowEdges(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := database.C.Model(&models.Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("unable to count follow edges: %v", err)
	}

	return count
}

package services

import (
	"errors"
	"testing"

	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"gorm.io/gorm"
)

func TestDeleteGroupKeepsPosts(t *testing.T) {
	testDatabase(t)
	author := testAccount(t, "author")

	group, err := NewGroup("gophers", "Gophers", "all things go")
	if err != nil {
		t.Fatalf("unable to create group: %v", err)
	}

	item, err := NewPost(author, models.Post{Text: "grouped post", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}

	if err := DeleteGroup(group); err != nil {
		t.Fatalf("unable to delete group: %v", err)
	}

	if _, err := GetGroup("gophers"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("group should be gone, got err=%v", err)
	}

	var survivor models.Post
	if err := database.C.First(&survivor, item.ID).Error; err != nil {
		t.Fatalf("post must survive group deletion: %v", err)
	}
	if survivor.GroupID != nil {
		t.Fatalf("group reference should be cleared, got %v", *survivor.GroupID)
	}
}

func TestGroupPostsFilter(t *testing.T) {
	testDatabase(t)
	author := testAccount(t, "author")

	group, err := NewGroup("cats", "Cats", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewPost(author, models.Post{Text: "inside", GroupID: &group.ID}); err != nil {
		t.Fatal(err)
	}
	testPost(t, author, "outside")

	items, _, err := ListPostPage(FilterPostWithGroup(database.C, group.ID), 1)
	if err != nil {
		t.Fatalf("group listing failed: %v", err)
	}
	if len(items) != 1 || items[0].Text != "inside" {
		t.Fatalf("group listing should only hold the group's posts, got %d", len(items))
	}
}

func TestNewGroupRejectsDuplicateSlug(t *testing.T) {
	testDatabase(t)

	if _, err := NewGroup("dup", "First", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGroup("dup", "Second", ""); err == nil {
		t.Fatal("duplicate slug must be rejected by the unique index")
	}
}

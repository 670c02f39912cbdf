package services

import (
	"errors"
	"fmt"

	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func GetFollow(followerID, authorID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", followerID, authorID).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

func IsFollowing(followerID, authorID uint) bool {
	follow, err := GetFollow(followerID, authorID)
	return err == nil && follow != nil
}

// FollowAccount creates the directed follow edge. Self-follows and edges that
// already exist are absorbed as no-ops so the operation stays idempotent for
// the caller. The unique index on the pair backstops the existence check
// against concurrent requests.
func FollowAccount(follower, author models.Account) error {
	if follower.ID == author.ID {
		return nil
	}

	if follow, err := GetFollow(follower.ID, author.ID); err != nil {
		return err
	} else if follow != nil {
		return nil
	}

	follow := models.Follow{
		FollowerID: follower.ID,
		AuthorID:   author.ID,
	}
	if err := database.C.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("unable to create follow edge: %v", err)
	}

	return nil
}

// UnfollowAccount removes the edge when present; a missing edge or a
// self-unfollow is not an error.
func UnfollowAccount(follower, author models.Account) error {
	if follower.ID == author.ID {
		return nil
	}

	follow, err := GetFollow(follower.ID, author.ID)
	if err != nil {
		return err
	}
	if follow == nil {
		return nil
	}

	return database.C.Delete(follow).Error
}

func ListFollowing(user models.Account) ([]models.Account, error) {
	var follows []models.Follow
	if err := database.C.Where("follower_id = ?", user.ID).
		Preload("Author").
		Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("unable to list following: %v", err)
	}

	return lo.Map(follows, func(item models.Follow, _ int) models.Account {
		return item.Author
	}), nil
}

func ListFollowers(user models.Account) ([]models.Account, error) {
	var follows []models.Follow
	if err := database.C.Where("author_id = ?", user.ID).
		Preload("Follower").
		Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("unable to list followers: %v", err)
	}

	return lo.Map(follows, func(item models.Follow, _ int) models.Account {
		return item.Follower
	}), nil
}

func CountFollowers(authorID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func CountFollowing(followerID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

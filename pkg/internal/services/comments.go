package services

import (
	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
)

func ListCommentOfPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountCommentOfPost(postID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}

	return comment, nil
}

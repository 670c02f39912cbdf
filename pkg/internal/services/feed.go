package services

import (
	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"gorm.io/gorm"
)

// BuildFeed narrows a post query down to posts authored by accounts the
// viewer follows. Self-follows cannot exist, so the viewer's own posts never
// show up here.
func BuildFeed(viewer models.Account, tx *gorm.DB) *gorm.DB {
	followed := database.C.Model(&models.Follow{}).
		Select("author_id").
		Where("follower_id = ?", viewer.ID)

	return tx.Where("author_id IN (?)", followed)
}

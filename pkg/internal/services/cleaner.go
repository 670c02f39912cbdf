package services

import (
	"os"
	"path/filepath"

	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// DoAutoDatabaseCleanup removes uploaded images that no post references
// anymore, for example after their post or author was deleted.
func DoAutoDatabaseCleanup() {
	root := viper.GetString("content.uploads")
	if len(root) == 0 {
		return
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when scanning uploads directory...")
		return
	}

	var known []string
	if err := database.C.Model(&models.Post{}).
		Where("image <> ''").
		Pluck("image", &known).Error; err != nil {
		log.Warn().Err(err).Msg("An error occurred when listing referenced images...")
		return
	}

	referenced := lo.SliceToMap(known, func(item string) (string, bool) {
		return filepath.Base(item), true
	})

	var count int
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(root, entry.Name())); err == nil {
			count++
		}
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("Removed orphan uploads.")
	}
}

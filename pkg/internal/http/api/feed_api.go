package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/inklets/inklet/pkg/internal/services"
)

// getFeedPage lists the posts of every author the viewer follows,
// newest-first. No follows simply yields an empty first page.
func getFeedPage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	page := c.QueryInt("page", 1)

	tx := services.BuildFeed(user, database.C)
	items, pagination, err := services.ListPostPage(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": pagination,
	})
}

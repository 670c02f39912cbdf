package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/http/exts"
	"github.com/inklets/inklet/pkg/internal/services"
)

func getGroupPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	group, err := services.GetGroup(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	page := c.QueryInt("page", 1)
	tx := services.FilterPostWithGroup(database.C, group.ID)
	items, pagination, err := services.ListPostPage(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group":      group,
		"data":       items,
		"pagination": pagination,
	})
}

func createGroup(c *fiber.Ctx) error {
	var data struct {
		Slug        string `json:"slug" form:"slug" validate:"required,lowercase,alphanum,max=50"`
		Title       string `json:"title" form:"title" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

// deleteGroup drops the community; posts that referenced it survive with the
// reference cleared.
func deleteGroup(c *fiber.Ctx) error {
	slug := c.Params("slug")

	group, err := services.GetGroup(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

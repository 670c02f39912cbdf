package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/inklets/inklet/pkg/internal/services"
)

func getProfilePage(c *fiber.Ctx) error {
	name := c.Params("name")

	account, err := services.GetAccount(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	page := c.QueryInt("page", 1)
	tx := services.FilterPostWithAuthor(database.C, account.ID)
	items, pagination, err := services.ListPostPage(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	following := false
	if viewer, ok := c.Locals("user").(models.Account); ok {
		following = services.IsFollowing(viewer.ID, account.ID)
	}

	return c.JSON(fiber.Map{
		"author":          account,
		"data":            items,
		"pagination":      pagination,
		"following":       following,
		"post_count":      pagination.TotalItems,
		"follower_count":  services.CountFollowers(account.ID),
		"following_count": services.CountFollowing(account.ID),
	})
}

// doFollow and doUnfollow both send the caller back to the profile no matter
// the outcome; self-follows and repeated calls are quietly absorbed.
func doFollow(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	name := c.Params("name")

	account, err := services.GetAccount(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.FollowAccount(user, account); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/"+account.Name, fiber.StatusFound)
}

func doUnfollow(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	name := c.Params("name")

	account, err := services.GetAccount(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, account); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/"+account.Name, fiber.StatusFound)
}

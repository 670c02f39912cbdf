package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/inklets/inklet/pkg/internal/models"
)

// Authenticated guards a route: anonymous callers are redirected to the login
// flow with a return path before the handler body ever runs.
func Authenticated(c *fiber.Ctx) error {
	account, ok := CurrentAccount(c)
	if !ok {
		return c.Redirect(
			"/auth/login?next="+url.QueryEscape(c.OriginalURL()),
			fiber.StatusFound,
		)
	}

	c.Locals("user", account)
	return c.Next()
}

// Visitor attaches the account when one is signed in but never blocks.
func Visitor(c *fiber.Ctx) error {
	if account, ok := CurrentAccount(c); ok {
		c.Locals("user", account)
	}
	return c.Next()
}

// AdminOnly requires an already authenticated caller to carry the admin flag.
func AdminOnly(c *fiber.Ctx) error {
	account, ok := c.Locals("user").(models.Account)
	if !ok || !account.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "this action is limited to administrators")
	}
	return c.Next()
}

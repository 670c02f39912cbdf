package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklets/inklet/pkg/internal/http/auth"
	"github.com/inklets/inklet/pkg/internal/http/exts"
	"github.com/inklets/inklet/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required,alphanum,min=3,max=32"`
		Nick     string `json:"nick" form:"nick" validate:"max=64"`
		Password string `json:"password" form:"password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Name, data.Nick, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := auth.SignIn(c, account); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

// getLoginPage is the target of guard redirects; the frontend collaborator
// renders the actual form out of this payload.
func getLoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"next": c.Query("next", "/"),
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
		Next     string `json:"next" form:"next"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	if err := auth.SignIn(c, account); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	next := data.Next
	if len(next) == 0 {
		next = "/"
	}

	return c.Redirect(next, fiber.StatusFound)
}

func doLogout(c *fiber.Ctx) error {
	if err := auth.SignOut(c); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/", fiber.StatusFound)
}

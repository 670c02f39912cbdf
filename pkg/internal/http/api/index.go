package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklets/inklet/pkg/internal/http/auth"
)

func MapAPIs(app *fiber.App) {
	app.Get("/", getHomePage)
	app.Get("/group/:slug", getGroupPage)
	app.Get("/posts/:postId", getPostDetail)
	app.Get("/profile/:name", auth.Visitor, getProfilePage)

	app.Post("/create", auth.Authenticated, createPost)
	app.Post("/posts/:postId/comment", auth.Authenticated, createComment)
	app.Post("/posts/:postId/edit", auth.Authenticated, editPost)

	app.Get("/follow", auth.Authenticated, getFeedPage)
	app.Get("/profile/:name/follow", auth.Authenticated, doFollow)
	app.Get("/profile/:name/unfollow", auth.Authenticated, doUnfollow)

	accounts := app.Group("/auth")
	accounts.Post("/register", doRegister)
	accounts.Get("/login", getLoginPage)
	accounts.Post("/login", doLogin)
	accounts.Post("/logout", doLogout)

	admin := app.Group("/admin", auth.Authenticated, auth.AdminOnly)
	admin.Post("/groups", createGroup)
	admin.Delete("/groups/:slug", deleteGroup)
}

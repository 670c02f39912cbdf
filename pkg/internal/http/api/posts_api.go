package api

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/http/exts"
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/inklets/inklet/pkg/internal/services"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// getHomePage serves the paginated post listing out of the page cache. The
// payload is viewer-agnostic, so one cached rendering per page number serves
// everybody within the TTL.
func getHomePage(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	payload, hit, err := services.CachedPage(
		services.HomePageCacheKey(page),
		services.HomePageTTL(),
		func() ([]byte, error) {
			items, pagination, err := services.ListPostPage(database.C, page)
			if err != nil {
				return nil, err
			}
			return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(fiber.Map{
				"data":       items,
				"pagination": pagination,
			})
		},
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set("X-Cache", lo.Ternary(hit, "HIT", "MISS"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

func getPostDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListCommentOfPost(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":              item,
		"comments":          comments,
		"author_post_count": services.CountPostOfAuthor(item.AuthorID),
	})
}

func createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Text  string `json:"text" form:"text" validate:"required"`
		Group string `json:"group" form:"group"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text: data.Text,
	}
	if len(data.Group) > 0 {
		group, err := services.GetGroup(data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown group: %s", data.Group))
		}
		item.GroupID = &group.ID
	}

	if file, err := c.FormFile("image"); err == nil {
		image, err := saveUploadedImage(c, file)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		item.Image = image
	}

	item, err := services.NewPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/"+user.Name, fiber.StatusFound)
}

// editPost lets the author update text, group and image; anyone else is
// bounced back to the detail view without touching the post.
func editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	detail := fmt.Sprintf("/posts/%d", item.ID)
	if item.AuthorID != user.ID {
		return c.Redirect(detail, fiber.StatusFound)
	}

	var data struct {
		Text  string `json:"text" form:"text" validate:"required"`
		Group string `json:"group" form:"group"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	if len(data.Group) > 0 {
		group, err := services.GetGroup(data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown group: %s", data.Group))
		}
		item.GroupID = &group.ID
	}

	if file, err := c.FormFile("image"); err == nil {
		image, err := saveUploadedImage(c, file)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		item.Image = image
	}

	if _, err := services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(detail, fiber.StatusFound)
}

func createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `json:"text" form:"text" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewComment(user, item, data.Text); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
}

func saveUploadedImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	root := viper.GetString("content.uploads")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("unable to prepare uploads directory: %v", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(root, name)); err != nil {
		return "", fmt.Errorf("unable to persist uploaded image: %v", err)
	}

	return name, nil
}

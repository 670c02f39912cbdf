package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/inklets/inklet/pkg/internal/services"
)

const sessionAccountKey = "account_id"

var Sessions *session.Store

func SetupSessions() {
	Sessions = session.New(session.Config{
		Expiration:     7 * 24 * time.Hour,
		KeyLookup:      "cookie:inklet_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

func SignIn(c *fiber.Ctx, account models.Account) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionAccountKey, account.ID)
	return sess.Save()
}

func SignOut(c *fiber.Ctx) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CurrentAccount resolves the signed-in account for this request, if any.
func CurrentAccount(c *fiber.Ctx) (models.Account, bool) {
	sess, err := Sessions.Get(c)
	if err != nil {
		return models.Account{}, false
	}

	id, ok := sess.Get(sessionAccountKey).(uint)
	if !ok {
		return models.Account{}, false
	}

	account, err := services.GetAccountWithID(id)
	if err != nil {
		return models.Account{}, false
	}

	return account, true
}

package middleware

import (
	"errors"
	"net/url"
	"ticket_master/config"
	"ticket_master/database"
	"ticket_master/helper"
	"ticket_master/model"
	"ticket_master/service"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SetSession writes the __session cookie for user.
func SetSession(c *fiber.Ctx, user model.User, remember bool) error {
	ttl := helper.SessionTTLFor(remember)
	now := time.Now()
	token, err := helper.GenerateSessionToken(user.ID, user.Role, ttl, now)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   config.IsProduction(),
	})
	return nil
}

func ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   config.IsProduction(),
	})
}

// Session returns the parsed session cookie, or nil when there is none or it is invalid.
func Session(c *fiber.Ctx) *helper.SessionClaims {
	token := c.Cookies(helper.SessionCookie)
	if token == "" {
		return nil
	}
	claims, err := helper.ParseSessionToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring invalid session cookie")
		return nil
	}
	return claims
}

// CurrentUser is the user loaded by RequireRole.
func CurrentUser(c *fiber.Ctx) model.User {
	user, _ := c.Locals("user").(model.User)
	return user
}

func loginRedirect(c *fiber.Ctx) error {
	return c.Redirect("/login?redirectTo="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
}

// RequireRole lets through only sessions of the given role. Anonymous visitors go to
// the login page, other roles go to their own home page.
func RequireRole(role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Session(c)
		if claims == nil {
			return loginRedirect(c)
		}

		user, err := service.GetUserById(database.DB.WithContext(c.UserContext()), claims.UserId)
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			return err
		}
		// a role change since sign-in invalidates the session like a deactivation does
		if err != nil || !user.IsActive || user.Role != claims.UserRole {
			ClearSession(c)
			return c.Redirect("/login", fiber.StatusFound)
		}

		if user.Role != role {
			return c.Redirect(user.Role.Home(), fiber.StatusFound)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in users away from the login and register pages.
func RedirectIfAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Session(c) != nil {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

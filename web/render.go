package web

import (
	"bytes"
	"embed"
	"html/template"
	"ticket_master/database"
	"ticket_master/model"
	"ticket_master/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:embed templates/*.html
var templateFS embed.FS

const dateTimeInput = "2006-01-02T15:04"

var funcMap = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("Mon 02 Jan 2006, 15:04")
	},
	"inputDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(dateTimeInput)
	},
	"roleName": func(r model.Role) string {
		return r.String()
	},
}

var templates = template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))

// Page is the data every template receives.
type Page struct {
	Title  string
	User   *model.User
	Alert  string
	Notice string
	Errors map[string]string
	Form   map[string]string
	Data   map[string]any
}

func render(c *fiber.Ctx, status int, name string, page Page) error {
	if page.Errors == nil {
		page.Errors = map[string]string{}
	}
	if page.Form == nil {
		page.Form = map[string]string{}
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, page); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template error")
		return fiber.NewError(fiber.StatusInternalServerError, "template error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func db(c *fiber.Ctx) *gorm.DB {
	return database.DB.WithContext(c.UserContext())
}

// formValues keeps submitted values so a failed form re-renders filled in.
func formValues(c *fiber.Ctx, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		values[key] = c.FormValue(key)
	}
	return values
}

func fieldErrors(err error) map[string]string {
	if fields := utils.FieldErrors(err); fields != nil {
		return fields
	}
	return map[string]string{}
}

package web

import (
	"errors"
	"strings"
	"ticket_master/handler"
	"ticket_master/helper"
	"ticket_master/middleware"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

type loginForm struct {
	Email      string `form:"email" validate:"required,email"`
	Password   string `form:"password" validate:"required"`
	Role       int    `form:"role" validate:"required,min=1,max=4"`
	Remember   string `form:"remember"`
	RedirectTo string `form:"redirectTo"`
}

type registerForm struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email,max=255"`
	Password        string `form:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

var roleOptions = []model.Role{model.RoleStudent, model.RoleOrganizer, model.RoleAdmin, model.RoleSuperAdmin}

func loginPage(form map[string]string) Page {
	return Page{Title: "Sign in", Form: form, Data: map[string]any{"Roles": roleOptions}}
}

func LoginPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", loginPage(map[string]string{
		"redirectTo": helper.SafeRedirect(c.Query("redirectTo")),
		"role":       "1",
	}))
}

func Login(c *fiber.Ctx) error {
	page := loginPage(formValues(c, "email", "role", "remember", "redirectTo"))

	var form loginForm
	if err := c.BodyParser(&form); err != nil {
		page.Errors = map[string]string{"role": "role is invalid"}
		return render(c, fiber.StatusBadRequest, "login", page)
	}
	if err := utils.Validator().Struct(form); err != nil {
		page.Errors = fieldErrors(err)
		return render(c, fiber.StatusBadRequest, "login", page)
	}

	user, err := service.Authenticate(db(c), model.LoginInput{
		Email:    form.Email,
		Password: strings.TrimSpace(form.Password),
		Role:     model.Role(form.Role),
	})
	if err != nil {
		var svcErr *service.Error
		if !errors.As(err, &svcErr) {
			return err
		}
		page.Alert = svcErr.Message
		return render(c, handler.StatusFor(err), "login", page)
	}

	if err := middleware.SetSession(c, user, form.Remember == "on"); err != nil {
		return err
	}
	target := helper.SafeRedirect(form.RedirectTo)
	if target == "/" {
		target = user.Role.Home()
	}
	return c.Redirect(target, fiber.StatusFound)
}

func RegisterPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "register", Page{Title: "Create an account"})
}

func Register(c *fiber.Ctx) error {
	page := Page{Title: "Create an account", Form: formValues(c, "name", "email")}

	var form registerForm
	if err := c.BodyParser(&form); err != nil {
		page.Alert = "Could not read the form"
		return render(c, fiber.StatusBadRequest, "register", page)
	}
	form.Password = strings.TrimSpace(form.Password)
	form.ConfirmPassword = strings.TrimSpace(form.ConfirmPassword)
	if err := utils.Validator().Struct(form); err != nil {
		page.Errors = fieldErrors(err)
		if _, mismatch := page.Errors["confirmPassword"]; mismatch && form.ConfirmPassword != "" {
			page.Errors["confirmPassword"] = "Passwords do not match"
		}
		return render(c, fiber.StatusBadRequest, "register", page)
	}

	id, err := service.CreateUser(db(c), model.CreateUserInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     model.RoleStudent,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			page.Errors = map[string]string{"email": "An account with this email already exists"}
			return render(c, fiber.StatusConflict, "register", page)
		}
		return err
	}
	user, err := service.GetUserById(db(c), id)
	if err != nil {
		return err
	}
	if err := middleware.SetSession(c, user, false); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

func Logout(c *fiber.Ctx) error {
	middleware.ClearSession(c)
	return c.Redirect("/login", fiber.StatusFound)
}

package validate

import (
	"ticket_master/model"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return body[model.CreateUserInput]("inputCreateUser")
}

func UpdateUser() fiber.Handler {
	return body[model.UpdateUserInput]("inputUpdateUser")
}

func UserActive() fiber.Handler {
	return body[model.UserActiveInput]("inputUserActive")
}

func Login() fiber.Handler {
	return body[model.LoginInput]("inputLogin")
}

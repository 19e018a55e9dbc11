package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

var userMessages = messages{notFound: "User not found", conflict: "User Exist!"}

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	var req service.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	user, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, userMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req service.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	user, err := h.service.Update(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, userMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) RemoveUser(c *fiber.Ctx) error {
	var req struct {
		Number   string `json:"number"`
		UserCode string `json:"user_code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	n, err := h.service.Delete(c.UserContext(), req.Number, req.UserCode)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"affectedRows": n,
		"number":       req.Number,
		"user_code":    req.UserCode,
	})
}

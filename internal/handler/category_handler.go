package handler

import (
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

var categoryMessages = messages{notFound: "Category not found", conflict: "Category Exist!"}

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.service.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return respond(c, err, categoryMessages)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return badJSON(c)
	}

	created, err := h.service.Create(c.UserContext(), &category)
	if err != nil {
		return respond(c, err, categoryMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return badJSON(c)
	}

	updated, err := h.service.Update(c.UserContext(), &category)
	if err != nil {
		return respond(c, err, categoryMessages)
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) RemoveCategory(c *fiber.Ctx) error {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	n, err := h.service.Delete(c.UserContext(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"affectedRows": n, "code": req.Code})
}

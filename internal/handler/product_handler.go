package handler

import (
	"errors"

	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

var productMessages = messages{notFound: "Product not found", conflict: "ID Exist!"}

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GetProduct answers 200 with an empty body for an unknown code.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetByCode(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusOK).Send(nil)
	}
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetByCategory(c.UserContext(), c.Params("categoryCode"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	product, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, productMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	product, err := h.service.Update(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, productMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) RemoveProduct(c *fiber.Ctx) error {
	var req struct {
		ProductCode string `json:"product_code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	n, err := h.service.Delete(c.UserContext(), req.ProductCode)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"affectedRows": n, "product_code": req.ProductCode})
}

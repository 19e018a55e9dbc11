package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

var saleMessages = messages{notFound: "Product not found"}

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

func (h *SaleHandler) GetSoldProducts(c *fiber.Ctx) error {
	sales, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(sales)
}

func (h *SaleHandler) SellProduct(c *fiber.Ctx) error {
	var req service.SellRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	res, err := h.service.Sell(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, saleMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *SaleHandler) UpdatePaymentDetails(c *fiber.Ctx) error {
	var req service.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	res, err := h.service.UpdatePaymentDetails(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, saleMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

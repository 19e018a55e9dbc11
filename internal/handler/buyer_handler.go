package handler

import (
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BuyerHandler struct {
	service service.BuyerService
}

func NewBuyerHandler(s service.BuyerService) *BuyerHandler {
	return &BuyerHandler{service: s}
}

func (h *BuyerHandler) GetBuyers(c *fiber.Ctx) error {
	buyers, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(buyers)
}

func (h *BuyerHandler) AddBuyer(c *fiber.Ctx) error {
	var buyer model.Buyer
	if err := c.BodyParser(&buyer); err != nil {
		return badJSON(c)
	}

	created, err := h.service.Create(c.UserContext(), &buyer)
	if err != nil {
		return respond(c, err, messages{})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

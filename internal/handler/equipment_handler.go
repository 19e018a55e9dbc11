package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

var equipmentMessages = messages{notFound: "Equipment not found", conflict: "Serial Number Exist!"}

type EquipmentHandler struct {
	service service.EquipmentService
}

func NewEquipmentHandler(s service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: s}
}

func (h *EquipmentHandler) GetEquipments(c *fiber.Ctx) error {
	items, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *EquipmentHandler) GetEquipment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": equipmentMessages.notFound})
	}

	item, err := h.service.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return respond(c, err, equipmentMessages)
	}
	return c.JSON(item)
}

func (h *EquipmentHandler) CreateEquipment(c *fiber.Ctx) error {
	var req service.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	item, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, equipmentMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *EquipmentHandler) UpdateEquipment(c *fiber.Ctx) error {
	var req service.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	item, err := h.service.Update(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, equipmentMessages)
	}
	return c.JSON(item)
}

func (h *EquipmentHandler) RemoveEquipment(c *fiber.Ctx) error {
	var req struct {
		ObjectID uint `json:"object_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	n, err := h.service.Delete(c.UserContext(), req.ObjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"affectedRows": n, "object_id": req.ObjectID})
}

package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

var towerMessages = messages{notFound: "Tower not found", conflict: "Tower Exist!"}

type TowerHandler struct {
	service service.TowerService
}

func NewTowerHandler(s service.TowerService) *TowerHandler {
	return &TowerHandler{service: s}
}

func (h *TowerHandler) GetTowers(c *fiber.Ctx) error {
	towers, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(towers)
}

func (h *TowerHandler) GetTower(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": towerMessages.notFound})
	}

	tower, err := h.service.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return respond(c, err, towerMessages)
	}
	return c.JSON(tower)
}

func (h *TowerHandler) CreateTower(c *fiber.Ctx) error {
	var req service.TowerRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	tower, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, towerMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(tower)
}

func (h *TowerHandler) UpdateTower(c *fiber.Ctx) error {
	var req service.TowerRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	tower, err := h.service.Update(c.UserContext(), &req)
	if err != nil {
		return respond(c, err, towerMessages)
	}
	return c.JSON(tower)
}

func (h *TowerHandler) RemoveTower(c *fiber.Ctx) error {
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

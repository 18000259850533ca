package controllers

import (
	"errors"

	"rice-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BrokerController struct {
	DB *gorm.DB
}

func NewBrokerController(db *gorm.DB) *BrokerController {
	return &BrokerController{DB: db}
}

func (c *BrokerController) CreateBroker(ctx *fiber.Ctx) error {

	var broker models.Broker

	if err := ctx.BodyParser(&broker); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	broker.CreatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Create(&broker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Broker created successfully", "data": broker})
}

func (c *BrokerController) GetAllBrokers(ctx *fiber.Ctx) error {

	var brokers []models.Broker
	if err := c.DB.Find(&brokers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Brokers found", "data": brokers})
}

func (c *BrokerController) GetBrokerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Broker
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Broker found", "data": result})
}

func (c *BrokerController) UpdateBroker(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var broker models.Broker
	if err := ctx.BodyParser(&broker); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	broker.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Model(&broker).Where("id = ?", id).Updates(broker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Broker updated successfully", "data": broker})
}

func (c *BrokerController) DeleteBroker(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var broker models.Broker
	if err := c.DB.First(&broker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	broker.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&broker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&broker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Broker deleted successfully", "data": broker})
}

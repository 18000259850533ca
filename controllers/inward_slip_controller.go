package controllers

import (
	"errors"

	"rice-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InwardSlipController struct {
	DB *gorm.DB
}

func NewInwardSlipController(db *gorm.DB) *InwardSlipController {
	return &InwardSlipController{DB: db}
}

type FormInwardSlipLot struct {
	LotNo          string  `json:"lot_no" validate:"required"`
	Item           string  `json:"item" validate:"required"`
	Bags           int     `json:"bags" validate:"required,min=1"`
	BillWeight     float64 `json:"bill_weight"`
	ReceivedWeight float64 `json:"received_weight" validate:"required,gt=0"`
	Rate           float64 `json:"rate" validate:"required,gt=0"`
}

type FormInwardSlip struct {
	SlipNo    string              `json:"slip_no" validate:"required"`
	SaudaID   string              `json:"sauda_id" validate:"required"`
	VehicleNo string              `json:"vehicle_no" validate:"required"`
	PartyName string              `json:"party_name" validate:"required"`
	SlipDate  string              `json:"slip_date"`
	Remarks   string              `json:"remarks"`
	Lots      []FormInwardSlipLot `json:"lots" validate:"required,min=1,dive"`
}

func (c *InwardSlipController) CreateInwardSlip(ctx *fiber.Ctx) error {

	var input FormInwardSlip
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var saudaID models.Sauda
	if err := c.DB.First(&saudaID, "id = ?", input.SaudaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sauda not found"})
	}

	// One inward slip per sauda, the unique index backs this up
	var existing models.InwardSlipPass
	if err := c.DB.Where("sauda_id = ?", input.SaudaID).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An inward slip already exists for this sauda",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	slip := models.InwardSlipPass{
		SlipNo:    input.SlipNo,
		SaudaID:   saudaID.ID,
		VehicleNo: input.VehicleNo,
		PartyName: input.PartyName,
		SlipDate:  input.SlipDate,
		Remarks:   input.Remarks,
		CreatedBy: userID,
	}

	for _, l := range input.Lots {
		slip.Lots = append(slip.Lots, models.InwardSlipLot{
			LotNo:          l.LotNo,
			Item:           l.Item,
			Bags:           l.Bags,
			BillWeight:     l.BillWeight,
			ReceivedWeight: l.ReceivedWeight,
			Rate:           l.Rate,
			Amount:         models.LotAmount(l.ReceivedWeight, l.Rate),
			CreatedBy:      userID,
		})
	}

	if err := c.DB.Create(&slip).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward slip created successfully", "data": slip})
}

func (c *InwardSlipController) GetAllInwardSlips(ctx *fiber.Ctx) error {

	saudaID, err := querySnowflake(ctx, "sauda_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sauda_id"})
	}

	query := c.DB.Preload("Lots").Order("created_at DESC")
	if saudaID != 0 {
		query = query.Where("sauda_id = ?", saudaID)
	}

	var slips []models.InwardSlipPass
	if err := query.Find(&slips).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward slips found", "data": slips})
}

func (c *InwardSlipController) GetInwardSlipByID(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.InwardSlipPass
	if err := c.DB.Preload("Lots").First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inward slip not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward slip found", "data": result})
}

func (c *InwardSlipController) UpdateInwardSlip(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input FormInwardSlip
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var slip models.InwardSlipPass
	if err := c.DB.First(&slip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inward slip not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	slip.SlipNo = input.SlipNo
	slip.VehicleNo = input.VehicleNo
	slip.PartyName = input.PartyName
	slip.SlipDate = input.SlipDate
	slip.Remarks = input.Remarks
	slip.UpdatedBy = userID

	// Replace the lot list wholesale, partial lot edits come in as a full list
	if len(input.Lots) > 0 {
		if err := c.DB.Where("slip_id = ?", slip.ID).Delete(&models.InwardSlipLot{}).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		slip.Lots = nil
		for _, l := range input.Lots {
			slip.Lots = append(slip.Lots, models.InwardSlipLot{
				SlipID:         slip.ID,
				LotNo:          l.LotNo,
				Item:           l.Item,
				Bags:           l.Bags,
				BillWeight:     l.BillWeight,
				ReceivedWeight: l.ReceivedWeight,
				Rate:           l.Rate,
				Amount:         models.LotAmount(l.ReceivedWeight, l.Rate),
				CreatedBy:      userID,
			})
		}
	}

	if err := c.DB.Save(&slip).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward slip updated successfully", "data": slip})
}

func (c *InwardSlipController) DeleteInwardSlip(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var slip models.InwardSlipPass
	if err := c.DB.First(&slip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inward slip not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	slip.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&slip).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&slip).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward slip deleted successfully", "data": slip})
}

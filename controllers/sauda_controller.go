package controllers

import (
	"errors"
	"strconv"

	"rice-app/models"
	"rice-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// paramSnowflake parses a snowflake path parameter
func paramSnowflake(ctx *fiber.Ctx, name string) (types.SnowflakeID, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return types.SnowflakeID(id), nil
}

// querySnowflake parses a snowflake query parameter, zero when absent
func querySnowflake(ctx *fiber.Ctx, name string) (types.SnowflakeID, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return types.SnowflakeID(id), nil
}

type SaudaController struct {
	DB *gorm.DB
}

func NewSaudaController(db *gorm.DB) *SaudaController {
	return &SaudaController{DB: db}
}

type FormSauda struct {
	SaudaNo          string  `json:"sauda_no" validate:"required"`
	Type             string  `json:"type" validate:"required"`
	RiceQuality      string  `json:"rice_quality" validate:"required"`
	Rate             float64 `json:"rate" validate:"required,gt=0"`
	QuantityQuintals float64 `json:"quantity_quintals" validate:"required,gt=0"`
	Purchaser        string  `json:"purchaser" validate:"required"`
	VendorID         *uint   `json:"vendor_id"`
	BrokerID         *uint   `json:"broker_id"`
	TransporterID    *uint   `json:"transporter_id"`
	Commission       float64 `json:"commission"`
	TransportCost    float64 `json:"transportation_cost"`
	CashDiscount     float64 `json:"cash_discount"`
	SaudaDate        string  `json:"sauda_date"`
	Remarks          string  `json:"remarks"`
}

func (c *SaudaController) CreateSauda(ctx *fiber.Ctx) error {

	var input FormSauda
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.IsValidSaudaType(input.Type) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type must be 'xgodown' or 'for'"})
	}

	if input.BrokerID != nil {
		var broker models.Broker
		if err := c.DB.First(&broker, *input.BrokerID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broker not found"})
		}
	}

	if input.TransporterID != nil {
		var transporter models.Transporter
		if err := c.DB.First(&transporter, *input.TransporterID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transporter not found"})
		}
	}

	sauda := models.Sauda{
		SaudaNo:          input.SaudaNo,
		Type:             input.Type,
		RiceQuality:      input.RiceQuality,
		Rate:             input.Rate,
		QuantityQuintals: input.QuantityQuintals,
		Purchaser:        input.Purchaser,
		VendorID:         input.VendorID,
		BrokerID:         input.BrokerID,
		TransporterID:    input.TransporterID,
		Commission:       input.Commission,
		TransportCost:    input.TransportCost,
		CashDiscount:     input.CashDiscount,
		SaudaDate:        input.SaudaDate,
		Remarks:          input.Remarks,
		CreatedBy:        int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&sauda).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sauda created successfully", "data": sauda})
}

func (c *SaudaController) GetAllSaudas(ctx *fiber.Ctx) error {

	query := c.DB.Order("created_at DESC")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var saudas []models.Sauda
	if err := query.Find(&saudas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Saudas found", "data": saudas})
}

func (c *SaudaController) GetSaudaByID(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Sauda
	if err := c.DB.First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sauda not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sauda found", "data": result})
}

func (c *SaudaController) UpdateSauda(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input FormSauda
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sauda := models.Sauda{
		SaudaNo:          input.SaudaNo,
		Type:             input.Type,
		RiceQuality:      input.RiceQuality,
		Rate:             input.Rate,
		QuantityQuintals: input.QuantityQuintals,
		Purchaser:        input.Purchaser,
		VendorID:         input.VendorID,
		BrokerID:         input.BrokerID,
		TransporterID:    input.TransporterID,
		Commission:       input.Commission,
		TransportCost:    input.TransportCost,
		CashDiscount:     input.CashDiscount,
		SaudaDate:        input.SaudaDate,
		Remarks:          input.Remarks,
		UpdatedBy:        int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&models.Sauda{}).Where("id = ?", id).Updates(sauda).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sauda updated successfully", "data": sauda})
}

func (c *SaudaController) UpdateSaudaStatus(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sauda models.Sauda
	if err := c.DB.First(&sauda, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sauda not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.CanTransitionSaudaStatus(sauda.Status, input.Status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot change status from " + sauda.Status + " to " + input.Status,
		})
	}

	sauda.Status = input.Status
	sauda.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&sauda).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sauda status updated", "data": sauda})
}

func (c *SaudaController) DeleteSauda(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sauda models.Sauda
	if err := c.DB.First(&sauda, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sauda not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Refuse to delete a sauda with downstream documents
	var slipCount int64
	c.DB.Model(&models.InwardSlipPass{}).Where("sauda_id = ?", id).Count(&slipCount)
	var purchaseCount int64
	c.DB.Model(&models.Purchase{}).Where("sauda_id = ?", id).Count(&purchaseCount)
	if slipCount > 0 || purchaseCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Sauda has inward slips or purchases and cannot be deleted",
		})
	}

	sauda.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&sauda).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&sauda).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sauda deleted successfully", "data": sauda})
}

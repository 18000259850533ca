package controllers

import (
	"errors"

	"rice-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseController struct {
	DB *gorm.DB
}

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

type FormPurchase struct {
	PurchaseNo    string  `json:"purchase_no" validate:"required"`
	SaudaID       string  `json:"sauda_id" validate:"required"`
	VendorID      uint    `json:"vendor_id" validate:"required"`
	InwardSlipID  string  `json:"inward_slip_id"`
	Rate          float64 `json:"rate" validate:"required,gt=0"`
	TotalWeight   float64 `json:"total_weight"`
	TotalAmount   float64 `json:"total_amount"`
	IgstPercent   float64 `json:"igst_percent"`
	PurchaseDate  string  `json:"purchase_date"`
	TransportBill string  `json:"transportation_bill_url"`
	PurchaseBill  string  `json:"purchase_bill_url"`
	Bilti         string  `json:"bilti_url"`
	EwayBill      string  `json:"eway_bill_url"`
	Remarks       string  `json:"remarks"`
}

func (c *PurchaseController) CreatePurchase(ctx *fiber.Ctx) error {

	var input FormPurchase
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sauda models.Sauda
	if err := c.DB.First(&sauda, "id = ?", input.SaudaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sauda not found"})
	}

	var vendor models.Vendor
	if err := c.DB.First(&vendor, input.VendorID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var existing models.Purchase
	if err := c.DB.Where("sauda_id = ?", sauda.ID).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A purchase already exists for this sauda",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	purchase := models.Purchase{
		PurchaseNo:    input.PurchaseNo,
		SaudaID:       sauda.ID,
		VendorID:      input.VendorID,
		Rate:          input.Rate,
		TotalWeight:   input.TotalWeight,
		TotalAmount:   input.TotalAmount,
		IgstPercent:   input.IgstPercent,
		PurchaseDate:  input.PurchaseDate,
		TransportBill: input.TransportBill,
		PurchaseBill:  input.PurchaseBill,
		Bilti:         input.Bilti,
		EwayBill:      input.EwayBill,
		Remarks:       input.Remarks,
		CreatedBy:     userID,
	}

	if input.InwardSlipID != "" {
		var slip models.InwardSlipPass
		if err := c.DB.Preload("Lots").First(&slip, "id = ?", input.InwardSlipID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inward slip not found"})
		}
		purchase.InwardSlipID = &slip.ID

		// Weight and amount come forward from the slip when the form leaves them blank
		if purchase.TotalWeight == 0 || purchase.TotalAmount == 0 {
			weight, amount := models.SlipTotals(slip.Lots)
			if purchase.TotalWeight == 0 {
				purchase.TotalWeight = weight
			}
			if purchase.TotalAmount == 0 {
				purchase.TotalAmount = amount
			}
		}
	}

	purchase.IgstAmount = models.PurchaseIgst(purchase.TotalAmount, purchase.IgstPercent)

	if err := c.DB.Create(&purchase).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase created successfully", "data": purchase})
}

func (c *PurchaseController) GetAllPurchases(ctx *fiber.Ctx) error {

	saudaID, err := querySnowflake(ctx, "sauda_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sauda_id"})
	}

	query := c.DB.Order("created_at DESC")
	if saudaID != 0 {
		query = query.Where("sauda_id = ?", saudaID)
	}

	var purchases []models.Purchase
	if err := query.Find(&purchases).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchases found", "data": purchases})
}

func (c *PurchaseController) GetPurchaseByID(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Purchase
	if err := c.DB.First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase found", "data": result})
}

func (c *PurchaseController) UpdatePurchase(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input FormPurchase
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var purchase models.Purchase
	if err := c.DB.First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	purchase.PurchaseNo = input.PurchaseNo
	purchase.Rate = input.Rate
	purchase.TotalWeight = input.TotalWeight
	purchase.TotalAmount = input.TotalAmount
	purchase.IgstPercent = input.IgstPercent
	purchase.IgstAmount = models.PurchaseIgst(input.TotalAmount, input.IgstPercent)
	purchase.PurchaseDate = input.PurchaseDate
	purchase.TransportBill = input.TransportBill
	purchase.PurchaseBill = input.PurchaseBill
	purchase.Bilti = input.Bilti
	purchase.EwayBill = input.EwayBill
	purchase.Remarks = input.Remarks
	purchase.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&purchase).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase updated successfully", "data": purchase})
}

func (c *PurchaseController) DeletePurchase(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var purchase models.Purchase
	if err := c.DB.First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var adviceCount int64
	c.DB.Model(&models.PaymentAdvice{}).Where("purchase_id = ?", id).Count(&adviceCount)
	if adviceCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Purchase has payment advices and cannot be deleted",
		})
	}

	purchase.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&purchase).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&purchase).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase deleted successfully", "data": purchase})
}

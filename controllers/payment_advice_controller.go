package controllers

import (
	"errors"
	"fmt"

	"rice-app/models"
	"rice-app/services"
	"rice-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PaymentAdviceController struct {
	DB     *gorm.DB
	Mailer *services.Mailer
}

func NewPaymentAdviceController(db *gorm.DB, mailer *services.Mailer) *PaymentAdviceController {
	return &PaymentAdviceController{DB: db, Mailer: mailer}
}

type FormPaymentCharge struct {
	ChargeName string  `json:"charge_name" validate:"required"`
	ChargeType string  `json:"charge_type" validate:"required"`
	Value      float64 `json:"value" validate:"required,gt=0"`
}

type FormPaymentAdvice struct {
	AdviceNo       string              `json:"advice_no" validate:"required"`
	PurchaseID     string              `json:"purchase_id" validate:"required"`
	Amount         float64             `json:"amount" validate:"required,gt=0"`
	AdviceDate     string              `json:"advice_date"`
	PaymentSlipURL string              `json:"payment_slip_url"`
	Remarks        string              `json:"remarks"`
	Charges        []FormPaymentCharge `json:"charges" validate:"dive"`
}

func (c *PaymentAdviceController) CreatePaymentAdvice(ctx *fiber.Ctx) error {

	var input FormPaymentAdvice
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, ch := range input.Charges {
		if !models.IsValidChargeType(ch.ChargeType) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "charge_type must be 'fixed' or 'percentage'"})
		}
	}

	var purchase models.Purchase
	if err := c.DB.First(&purchase, "id = ?", input.PurchaseID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	var existing models.PaymentAdvice
	if err := c.DB.Where("purchase_id = ?", purchase.ID).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A payment advice already exists for this purchase",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	advice := models.PaymentAdvice{
		AdviceNo:       input.AdviceNo,
		PurchaseID:     purchase.ID,
		Amount:         input.Amount,
		AdviceDate:     input.AdviceDate,
		PaymentSlipURL: input.PaymentSlipURL,
		Remarks:        input.Remarks,
		CreatedBy:      userID,
	}

	for _, ch := range input.Charges {
		advice.Charges = append(advice.Charges, models.PaymentCharge{
			ChargeName: ch.ChargeName,
			ChargeType: ch.ChargeType,
			Value:      ch.Value,
			CreatedBy:  userID,
		})
	}

	advice.NetPayable = models.ComputeNetPayable(advice.Amount, advice.Charges)

	if err := c.DB.Create(&advice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Notify the vendor when mail is configured
	if c.Mailer != nil {
		var vendor models.Vendor
		if err := c.DB.First(&vendor, purchase.VendorID).Error; err == nil && vendor.VendorEmail != "" {
			if err := c.Mailer.SendPaymentAdviceCreated(vendor.VendorEmail, advice.AdviceNo, advice.NetPayable); err != nil {
				fmt.Println("Warning: failed to send payment advice mail:", err)
			}
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment advice created successfully", "data": advice})
}

func (c *PaymentAdviceController) GetAllPaymentAdvices(ctx *fiber.Ctx) error {

	purchaseID, err := querySnowflake(ctx, "purchase_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase_id"})
	}

	query := c.DB.Preload("Charges").Order("created_at DESC")
	if purchaseID != 0 {
		query = query.Where("purchase_id = ?", purchaseID)
	}

	var advices []models.PaymentAdvice
	if err := query.Find(&advices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment advices found", "data": advices})
}

func (c *PaymentAdviceController) GetPaymentAdviceByID(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.PaymentAdvice
	if err := c.DB.Preload("Charges").First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment advice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment advice found", "data": result})
}

func (c *PaymentAdviceController) UpdatePaymentAdviceStatus(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status         string `json:"status"`
		PaymentSlipURL string `json:"payment_slip_url"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.IsValidAdviceStatus(input.Status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be 'pending', 'completed' or 'failed'"})
	}

	var advice models.PaymentAdvice
	if err := c.DB.First(&advice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment advice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	advice.Status = input.Status
	if input.PaymentSlipURL != "" {
		advice.PaymentSlipURL = input.PaymentSlipURL
	}
	advice.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&advice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment advice status updated", "data": advice})
}

// GetPaymentAdvicePDF renders the advice as a printable PDF
func (c *PaymentAdviceController) GetPaymentAdvicePDF(ctx *fiber.Ctx) error {
	id, err := paramSnowflake(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var advice models.PaymentAdvice
	if err := c.DB.Preload("Charges").First(&advice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment advice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var purchase models.Purchase
	if err := c.DB.First(&purchase, "id = ?", advice.PurchaseID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var vendor models.Vendor
	c.DB.First(&vendor, purchase.VendorID)

	var sauda models.Sauda
	c.DB.First(&sauda, "id = ?", purchase.SaudaID)

	pdfBytes, err := utils.GeneratePaymentAdvicePDF(utils.PaymentAdvicePDFData{
		Advice:          advice,
		Purchase:        purchase,
		Vendor:          vendor,
		Sauda:           sauda,
		NetPayableWords: utils.NumberToCurrencyWords(advice.NetPayable),
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", "inline; filename=payment-advice-"+advice.AdviceNo+".pdf")
	return ctx.Send(pdfBytes)
}

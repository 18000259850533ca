package controllers

import (
	"errors"
	"fmt"
	"strings"

	"rice-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type VendorController struct {
	DB *gorm.DB
}

var vendorInput struct {
	VendorCode    string `json:"vendor_code"`
	VendorName    string `json:"vendor_name"`
	VendorAddress string `json:"vendor_address"`
	VendorCity    string `json:"vendor_city"`
	Gstin         string `json:"gstin"`
	VendorPhone   string `json:"vendor_phone"`
	VendorEmail   string `json:"vendor_email"`
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{DB: db}
}

func (c *VendorController) CreateVendor(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&vendorInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vendor := models.Vendor{
		VendorCode:    vendorInput.VendorCode,
		VendorName:    vendorInput.VendorName,
		VendorAddress: vendorInput.VendorAddress,
		VendorCity:    vendorInput.VendorCity,
		Gstin:         vendorInput.Gstin,
		VendorPhone:   vendorInput.VendorPhone,
		VendorEmail:   vendorInput.VendorEmail,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&vendor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendor created successfully", "data": vendor})
}

func (c *VendorController) GetAllVendors(ctx *fiber.Ctx) error {
	var vendors []models.Vendor
	if err := c.DB.Find(&vendors).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendors found", "data": vendors})
}

func (c *VendorController) GetVendorByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Vendor
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendor found", "data": result})
}

func (c *VendorController) UpdateVendor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&vendorInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vendor := models.Vendor{
		VendorCode:    vendorInput.VendorCode,
		VendorName:    vendorInput.VendorName,
		VendorAddress: vendorInput.VendorAddress,
		VendorCity:    vendorInput.VendorCity,
		Gstin:         vendorInput.Gstin,
		VendorPhone:   vendorInput.VendorPhone,
		VendorEmail:   vendorInput.VendorEmail,
		UpdatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&vendor).Where("id = ?", id).Updates(vendor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendor updated successfully", "data": vendor})
}

func (c *VendorController) DeleteVendor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var vendor models.Vendor
	if err := c.DB.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	vendor.DeletedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&vendor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&vendor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendor deleted successfully", "data": vendor})
}

// upload vendors from excel file

type VendorUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

func (c *VendorController) CreateVendorFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := VendorUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Columns: code, name, address, city, gstin, phone, email
	for i, row := range rows[1:] {
		rowNum := i + 2 // Excel row number (header is row 1)

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 7 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected 7)", rowNum))
			continue
		}

		code := strings.TrimSpace(row[0])

		var existing models.Vendor
		if err := tx.Where("vendor_code = ?", code).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, code)
			continue
		}

		vendor := models.Vendor{
			VendorCode:    code,
			VendorName:    strings.TrimSpace(row[1]),
			VendorAddress: strings.TrimSpace(row[2]),
			VendorCity:    strings.TrimSpace(row[3]),
			Gstin:         strings.TrimSpace(row[4]),
			VendorPhone:   strings.TrimSpace(row[5]),
			VendorEmail:   strings.TrimSpace(row[6]),
			CreatedBy:     userID,
		}

		if err := tx.Create(&vendor).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Vendor upload processed",
		"data":    result,
	})
}

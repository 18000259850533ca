package controllers

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"rice-app/models"
	"rice-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadController struct {
	DB *gorm.DB
}

func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{DB: db}
}

var allowedDocTypes = map[string]bool{
	"inward_slip":         true,
	"transportation_bill": true,
	"purchase_bill":       true,
	"bilti":               true,
	"eway_bill":           true,
	"payment_slip":        true,
}

// UploadDocument stores a multipart document in R2 and records the URL
func (c *UploadController) UploadDocument(ctx *fiber.Ctx) error {

	docType := ctx.FormValue("doc_type")
	if !allowedDocTypes[docType] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid doc_type"})
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Random prefix keeps repeated filenames from clobbering each other
	ext := filepath.Ext(fileHeader.Filename)
	base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
	storedName := base + "_" + uuid.New().String()[:8] + ext

	fileURL, err := utils.UploadToR2(fileBytes, docType, storedName, contentType)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	upload := models.DocumentUpload{
		DocType:   docType,
		FileName:  fileHeader.Filename,
		FileURL:   fileURL,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}
	if err := c.DB.Create(&upload).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Document uploaded successfully", "data": fiber.Map{
		"id":          upload.ID,
		"doc_type":    upload.DocType,
		"file_name":   upload.FileName,
		"file_url":    upload.FileURL,
		"uploaded_at": upload.CreatedAt.Format(time.RFC3339),
	}})
}

package controllers

import (
	"fmt"
	"time"

	"rice-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB   *gorm.DB
	Repo *repositories.LeaderboardRepository
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Repo: repositories.NewLeaderboardRepository(db)}
}

// GetLeaderboard returns purchasers ranked by purchase value
func (c *DashboardController) GetLeaderboard(ctx *fiber.Ctx) error {

	fromDate := ctx.Query("from")
	toDate := ctx.Query("to")

	rows, err := c.Repo.GetLeaderboard(fromDate, toDate)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Leaderboard found", "data": rows})
}

// GetMonthlySummary returns per month pipeline totals
func (c *DashboardController) GetMonthlySummary(ctx *fiber.Ctx) error {

	year := ctx.Query("year")

	rows, err := c.Repo.GetMonthlySummary(year)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Monthly summary found", "data": rows})
}

// ExportLeaderboard streams the leaderboard as an Excel workbook
func (c *DashboardController) ExportLeaderboard(ctx *fiber.Ctx) error {

	fromDate := ctx.Query("from")
	toDate := ctx.Query("to")

	rows, err := c.Repo.GetLeaderboard(fromDate, toDate)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leaderboard"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Rank", "Purchaser", "Saudas", "Quantity (Qtl)", "Purchases", "Purchase Amount", "Net Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			i + 1,
			row.Purchaser,
			row.SaudaCount,
			row.TotalQuantity,
			row.PurchaseCount,
			row.PurchaseAmount,
			row.NetPaid,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("leaderboard_%s.xlsx", time.Now().Format("20060102"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+filename)
	return ctx.Send(buf.Bytes())
}

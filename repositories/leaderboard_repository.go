package repositories

import (
	"gorm.io/gorm"
)

type LeaderboardRepository struct {
	DB *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

type LeaderboardRow struct {
	Purchaser      string  `json:"purchaser"`
	SaudaCount     int64   `json:"sauda_count"`
	TotalQuantity  float64 `json:"total_quantity"`
	PurchaseCount  int64   `json:"purchase_count"`
	PurchaseAmount float64 `json:"purchase_amount"`
	NetPaid        float64 `json:"net_paid"`
}

type MonthlySummaryRow struct {
	Month          string  `json:"month"`
	SaudaCount     int64   `json:"sauda_count"`
	PurchaseCount  int64   `json:"purchase_count"`
	PurchaseAmount float64 `json:"purchase_amount"`
	NetPaid        float64 `json:"net_paid"`
}

// GetLeaderboard ranks purchasers by completed purchase value within an
// optional date range. Dates arrive as YYYY-MM-DD strings from the UI.
func (r *LeaderboardRepository) GetLeaderboard(fromDate, toDate string) ([]LeaderboardRow, error) {
	query := `
		SELECT
			s.purchaser AS purchaser,
			COUNT(DISTINCT s.id) AS sauda_count,
			COALESCE(SUM(s.quantity_quintals), 0) AS total_quantity,
			COUNT(DISTINCT p.id) AS purchase_count,
			COALESCE(SUM(p.total_amount), 0) AS purchase_amount,
			COALESCE(SUM(pa.net_payable), 0) AS net_paid
		FROM saudas s
		LEFT JOIN purchases p ON p.sauda_id = s.id AND p.deleted_at IS NULL
		LEFT JOIN payment_advices pa ON pa.purchase_id = p.id AND pa.status = 'completed' AND pa.deleted_at IS NULL
		WHERE s.deleted_at IS NULL AND s.status <> 'cancelled'`

	args := []interface{}{}
	if fromDate != "" {
		query += " AND s.sauda_date >= ?"
		args = append(args, fromDate)
	}
	if toDate != "" {
		query += " AND s.sauda_date <= ?"
		args = append(args, toDate)
	}

	query += `
		GROUP BY s.purchaser
		ORDER BY purchase_amount DESC, sauda_count DESC`

	var rows []LeaderboardRow
	if err := r.DB.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetMonthlySummary aggregates the pipeline per calendar month of sauda date
func (r *LeaderboardRepository) GetMonthlySummary(year string) ([]MonthlySummaryRow, error) {
	query := `
		SELECT
			SUBSTRING(CAST(s.sauda_date AS VARCHAR(10)), 1, 7) AS month,
			COUNT(DISTINCT s.id) AS sauda_count,
			COUNT(DISTINCT p.id) AS purchase_count,
			COALESCE(SUM(p.total_amount), 0) AS purchase_amount,
			COALESCE(SUM(pa.net_payable), 0) AS net_paid
		FROM saudas s
		LEFT JOIN purchases p ON p.sauda_id = s.id AND p.deleted_at IS NULL
		LEFT JOIN payment_advices pa ON pa.purchase_id = p.id AND pa.status = 'completed' AND pa.deleted_at IS NULL
		WHERE s.deleted_at IS NULL AND s.status <> 'cancelled'`

	args := []interface{}{}
	if year != "" {
		query += " AND SUBSTRING(CAST(s.sauda_date AS VARCHAR(10)), 1, 4) = ?"
		args = append(args, year)
	}

	query += `
		GROUP BY SUBSTRING(CAST(s.sauda_date AS VARCHAR(10)), 1, 7)
		ORDER BY month`

	var rows []MonthlySummaryRow
	if err := r.DB.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

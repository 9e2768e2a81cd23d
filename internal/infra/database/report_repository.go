package database

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// ReportRepository concentra as agregações tipadas que alimentam os
// relatórios exportados; o dashboard consome os mesmos números.
type ReportRepository struct {
	DB *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) CountClientsByStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, `SELECT status, COUNT(*) FROM clients GROUP BY status`)
}

func (r *ReportRepository) CountMentorshipsByStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, `SELECT status, COUNT(*) FROM mentorships GROUP BY status`)
}

func (r *ReportRepository) CountInitiativesByStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, `SELECT status, COUNT(*) FROM initiatives GROUP BY status`)
}

type FinancialTotals struct {
	PixPaid      decimal.Decimal
	PixPending   decimal.Decimal
	CardApproved decimal.Decimal
}

func (r *ReportRepository) FinancialTotals(ctx context.Context) (FinancialTotals, error) {
	var totals FinancialTotals

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM pix_charges
	`
	err := r.DB.QueryRowContext(ctx, query).Scan(&totals.PixPaid, &totals.PixPending)
	if err != nil {
		return totals, err
	}

	query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM card_transactions
		WHERE status = 'approved'
	`
	err = r.DB.QueryRowContext(ctx, query).Scan(&totals.CardApproved)
	if err != nil {
		return totals, err
	}

	return totals, nil
}

func (r *ReportRepository) countByStatus(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

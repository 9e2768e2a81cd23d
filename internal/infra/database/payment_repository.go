package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) CreatePixCharge(ctx context.Context, charge *entity.PixCharge) error {
	query := `
		INSERT INTO pix_charges (reference, amount, description, client_id, service_id,
			pix_key, qr_code_url, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		charge.Reference, charge.Amount, charge.Description, charge.ClientID, charge.ServiceID,
		charge.PixKey, charge.QRCodeURL, charge.Status, charge.ExpiresAt, charge.CreatedAt,
	)
	return err
}

func (r *PaymentRepository) FindPixChargeByReference(ctx context.Context, reference string) (*entity.PixCharge, error) {
	query := `
		SELECT reference, amount, description, client_id, service_id,
			pix_key, qr_code_url, status, paid_at, expires_at, created_at
		FROM pix_charges
		WHERE reference = $1
	`

	var charge entity.PixCharge
	err := r.DB.QueryRowContext(ctx, query, reference).Scan(
		&charge.Reference, &charge.Amount, &charge.Description, &charge.ClientID, &charge.ServiceID,
		&charge.PixKey, &charge.QRCodeURL, &charge.Status, &charge.PaidAt, &charge.ExpiresAt, &charge.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return &charge, nil
}

func (r *PaymentRepository) UpdatePixChargeStatus(ctx context.Context, reference, status string) error {
	var query string
	if status == entity.PixStatusPaid {
		query = `UPDATE pix_charges SET status = $1, paid_at = NOW() WHERE reference = $2`
	} else {
		query = `UPDATE pix_charges SET status = $1 WHERE reference = $2`
	}

	_, err := r.DB.ExecContext(ctx, query, status, reference)
	return err
}

// ExpireStalePixCharges marca como expiradas as cobranças pendentes
// cujo prazo venceu e devolve quantas foram afetadas.
func (r *PaymentRepository) ExpireStalePixCharges(ctx context.Context) (int64, error) {
	query := `
		UPDATE pix_charges
		SET status = 'expired'
		WHERE status = 'pending' AND expires_at < NOW()
	`

	res, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *PaymentRepository) CreateCardTransaction(ctx context.Context, tx *entity.CardTransaction) error {
	query := `
		INSERT INTO card_transactions (transaction_id, amount, description, client_id, service_id,
			card_brand, last_digits, installments, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		tx.TransactionID, tx.Amount, tx.Description, tx.ClientID, tx.ServiceID,
		tx.CardBrand, tx.LastDigits, tx.Installments, tx.Status, tx.CreatedAt,
	)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// PostgresDiscountRepository implements DiscountRepository using PostgreSQL.
type PostgresDiscountRepository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewPostgresDiscountRepository(db *sql.DB, logger *zap.SugaredLogger) *PostgresDiscountRepository {
	return &PostgresDiscountRepository{db: db, logger: logger}
}

// GetCodeByValue looks a discount code up by its user-facing code string.
// Codes are matched case-insensitively.
func (r *PostgresDiscountRepository) GetCodeByValue(ctx context.Context, code string) (*models.DiscountCode, error) {
	query := `
		SELECT id, code, percentage, applies_to, active, valid_from, valid_until
		FROM discount_codes
		WHERE lower(code) = lower($1)
	`

	var dc models.DiscountCode
	var appliesTo pq.StringArray

	err := r.db.QueryRowContext(ctx, query, strings.TrimSpace(code)).Scan(
		&dc.ID,
		&dc.Code,
		&dc.Percentage,
		&appliesTo,
		&dc.Active,
		&dc.ValidFrom,
		&dc.ValidUntil,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Errorw("failed to fetch discount code", "error", err)
		return nil, err
	}

	dc.AppliesTo = make([]models.FeeBucket, 0, len(appliesTo))
	for _, s := range appliesTo {
		bucket, err := models.ParseFeeBucket(s)
		if err != nil {
			// Unknown buckets in stored data are skipped rather than
			// failing the lookup.
			r.logger.Warnw("skipping unknown fee bucket on discount code",
				"code_id", dc.ID, "bucket", s)
			continue
		}
		dc.AppliesTo = append(dc.AppliesTo, bucket)
	}

	return &dc, nil
}

// GetCompany fetches a company with its flat discount percentage.
func (r *PostgresDiscountRepository) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	query := `SELECT id, name, discount_percentage FROM companies WHERE id = $1`

	var c models.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.DiscountPercentage)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// CompanyDiscountForUser resolves the discount percentage of the company the
// user belongs to. Users without a company get a zero percentage.
func (r *PostgresDiscountRepository) CompanyDiscountForUser(ctx context.Context, userID string) (string, decimal.Decimal, error) {
	query := `
		SELECT c.id, c.discount_percentage
		FROM users u
		JOIN companies c ON c.id = u.company_id
		WHERE u.id = $1
	`

	var companyID string
	var pct decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&companyID, &pct)
	if err == sql.ErrNoRows {
		return "", decimal.Zero, nil
	}
	if err != nil {
		r.logger.Errorw("failed to resolve company discount", "user_id", userID, "error", err)
		return "", decimal.Zero, err
	}

	return companyID, pct, nil
}

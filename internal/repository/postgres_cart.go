package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// PostgresCartRepository implements CartRepository using PostgreSQL.
type PostgresCartRepository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewPostgresCartRepository(db *sql.DB, logger *zap.SugaredLogger) *PostgresCartRepository {
	return &PostgresCartRepository{db: db, logger: logger}
}

const cartItemColumns = `
	id, user_id, menu_id, menu_name, quantity, selected_add_on_ids,
	unit_price, created_at, updated_at
`

// GetByUserID returns all cart items for a user, oldest first.
func (r *PostgresCartRepository) GetByUserID(ctx context.Context, userID string) ([]*models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.CartItem, 0)
	for rows.Next() {
		item, err := scanCartItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetItem fetches one cart item, scoped to the owning user.
func (r *PostgresCartRepository) GetItem(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1 AND user_id = $2`

	item, err := scanCartItem(r.db.QueryRowContext(ctx, query, itemID, userID).Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func scanCartItem(scan func(dest ...interface{}) error) (*models.CartItem, error) {
	var item models.CartItem
	var selected pq.StringArray

	err := scan(
		&item.ID,
		&item.UserID,
		&item.MenuID,
		&item.MenuName,
		&item.Quantity,
		&selected,
		&item.UnitPrice,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.SelectedAddOnIDs = []string(selected)
	return &item, nil
}

// AddItem inserts a cart item with its frozen unit price.
func (r *PostgresCartRepository) AddItem(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, menu_id, menu_name, quantity,
		                        selected_add_on_ids, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.UserID,
		item.MenuID,
		item.MenuName,
		item.Quantity,
		pq.Array(item.SelectedAddOnIDs),
		item.UnitPrice,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		r.logger.Errorw("failed to add cart item", "user_id", item.UserID, "menu_id", item.MenuID, "error", err)
		return err
	}

	return nil
}

// UpdateQuantity changes the quantity of a cart item. The unit price is
// deliberately not touched.
func (r *PostgresCartRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, itemID, userID, quantity, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteItem removes one item from the user's cart.
func (r *PostgresCartRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Clear empties the user's cart, typically after checkout.
func (r *PostgresCartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Errorw("failed to clear cart", "user_id", userID, "error", err)
	}
	return err
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL.
// Line items, the delivery address and the tax breakdown are stored as
// JSONB: the breakdown is written verbatim at checkout and never derived
// again, so historical orders are immune to rate-table changes.
type PostgresOrderRepository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewPostgresOrderRepository(db *sql.DB, logger *zap.SugaredLogger) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db, logger: logger}
}

// GetByID retrieves an order by its unique identifier.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT id, user_id, company_id, status, items, breakdown, discount_code,
		       delivery_address, delivery_date, contact_name, contact_email,
		       contact_phone, invoice_id, created_at, updated_at
		FROM orders
		WHERE id = $1 AND deleted_at IS NULL
	`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Errorw("failed to fetch order", "order_id", id, "error", err)
		return nil, err
	}

	return order, nil
}

func scanOrder(scan func(dest ...interface{}) error) (*models.Order, error) {
	var order models.Order
	var itemsJSON, breakdownJSON, addressJSON []byte
	var companyID, discountCode, contactPhone, invoiceID sql.NullString

	err := scan(
		&order.ID,
		&order.UserID,
		&companyID,
		&order.Status,
		&itemsJSON,
		&breakdownJSON,
		&discountCode,
		&addressJSON,
		&order.DeliveryDate,
		&order.ContactName,
		&order.ContactEmail,
		&contactPhone,
		&invoiceID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(breakdownJSON, &order.Breakdown); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addressJSON, &order.DeliveryAddress); err != nil {
		return nil, err
	}

	if companyID.Valid {
		order.CompanyID = companyID.String
	}
	if discountCode.Valid {
		order.DiscountCode = discountCode.String
	}
	if contactPhone.Valid {
		order.ContactPhone = contactPhone.String
	}
	if invoiceID.Valid {
		order.InvoiceID = invoiceID.String
	}

	return &order, nil
}

// Create persists a placed order. The order, including its breakdown, is
// built by the caller; this method only stores it.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	breakdownJSON, err := json.Marshal(order.Breakdown)
	if err != nil {
		return err
	}
	addressJSON, err := json.Marshal(order.DeliveryAddress)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (id, user_id, company_id, status, items, breakdown,
		                    discount_code, delivery_address, delivery_date,
		                    contact_name, contact_email, contact_phone,
		                    created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, NULLIF($12, ''), $13, $14)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.ID,
		order.UserID,
		order.CompanyID,
		order.Status,
		itemsJSON,
		breakdownJSON,
		order.DiscountCode,
		addressJSON,
		order.DeliveryDate,
		order.ContactName,
		order.ContactEmail,
		order.ContactPhone,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Errorw("failed to create order", "user_id", order.UserID, "error", err)
		return err
	}

	r.logger.Infow("order created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total", order.Breakdown.TotalAmount)
	return nil
}

// List retrieves orders matching the filter plus the total match count.
func (r *PostgresOrderRepository) List(ctx context.Context, filter *models.OrderListFilter) ([]*models.Order, int, error) {
	baseQuery := ` FROM orders WHERE deleted_at IS NULL`
	args := make([]interface{}, 0)

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		baseQuery += " AND user_id = $" + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		baseQuery += " AND status = $" + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	selectQuery := `
		SELECT id, user_id, company_id, status, items, breakdown, discount_code,
		       delivery_address, delivery_date, contact_name, contact_email,
		       contact_phone, invoice_id, created_at, updated_at
	` + baseQuery + " ORDER BY created_at DESC" +
		" LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, rows.Err()
}

// UpdateStatus moves an order to a new status and returns the fresh record.
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var returnedID string
	err := r.db.QueryRowContext(ctx, query, id, req.Status, time.Now()).Scan(&returnedID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Errorw("failed to update order status", "order_id", id, "error", err)
		return nil, err
	}

	r.logger.Infow("order status updated", "order_id", id, "new_status", req.Status)
	return r.GetByID(ctx, id)
}

// SetInvoiceID records the invoice generated downstream for an order.
func (r *PostgresOrderRepository) SetInvoiceID(ctx context.Context, orderID, invoiceID string) error {
	query := `
		UPDATE orders
		SET invoice_id = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, orderID, invoiceID, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	r.logger.Infow("invoice recorded", "order_id", orderID, "invoice_id", invoiceID)
	return nil
}

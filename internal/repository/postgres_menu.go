package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// PostgresMenuRepository implements MenuRepository using PostgreSQL.
type PostgresMenuRepository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewPostgresMenuRepository(db *sql.DB, logger *zap.SugaredLogger) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db, logger: logger}
}

// GetByID fetches one menu offering with its full add-on catalog, including
// the per-offering is_default flag from the join table.
func (r *PostgresMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuOffering, error) {
	query := `
		SELECT id, name, description, base_price, minimum_quantity, vegan,
		       created_at, updated_at
		FROM menus
		WHERE id = $1 AND deleted_at IS NULL
	`

	var menu models.MenuOffering
	var description sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&menu.ID,
		&menu.Name,
		&description,
		&menu.BasePrice,
		&menu.MinimumQuantity,
		&menu.Vegan,
		&menu.CreatedAt,
		&menu.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Errorw("failed to fetch menu", "menu_id", id, "error", err)
		return nil, err
	}
	if description.Valid {
		menu.Description = description.String
	}

	addOns, err := r.addOnsForMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	menu.AddOns = addOns

	return &menu, nil
}

func (r *PostgresMenuRepository) addOnsForMenu(ctx context.Context, menuID string) ([]models.AddOnOption, error) {
	query := `
		SELECT a.id, a.name, a.description, a.price, a.vegan, a.category, ma.is_default
		FROM add_ons a
		JOIN menu_add_ons ma ON ma.add_on_id = a.id
		WHERE ma.menu_id = $1
		ORDER BY ma.position, a.name
	`

	rows, err := r.db.QueryContext(ctx, query, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addOns := make([]models.AddOnOption, 0)
	for rows.Next() {
		var a models.AddOnOption
		var description sql.NullString
		var category sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &description, &a.Price, &a.Vegan, &category, &a.IsDefault); err != nil {
			return nil, err
		}
		if description.Valid {
			a.Description = description.String
		}
		if category.Valid {
			a.Category = &category.String
		}
		addOns = append(addOns, a)
	}

	return addOns, rows.Err()
}

// List returns all live menu offerings without their add-on catalogs.
func (r *PostgresMenuRepository) List(ctx context.Context) ([]*models.MenuOffering, error) {
	query := `
		SELECT id, name, description, base_price, minimum_quantity, vegan,
		       created_at, updated_at
		FROM menus
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]*models.MenuOffering, 0)
	for rows.Next() {
		var menu models.MenuOffering
		var description sql.NullString
		if err := rows.Scan(
			&menu.ID,
			&menu.Name,
			&description,
			&menu.BasePrice,
			&menu.MinimumQuantity,
			&menu.Vegan,
			&menu.CreatedAt,
			&menu.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if description.Valid {
			menu.Description = description.String
		}
		menus = append(menus, &menu)
	}

	return menus, rows.Err()
}

// Create inserts a new menu offering.
func (r *PostgresMenuRepository) Create(ctx context.Context, req *models.CreateMenuRequest) (*models.MenuOffering, error) {
	now := time.Now()
	menu := &models.MenuOffering{
		ID:              "menu_" + uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		MinimumQuantity: req.MinimumQuantity,
		Vegan:           req.Vegan,
		AddOns:          []models.AddOnOption{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	query := `
		INSERT INTO menus (id, name, description, base_price, minimum_quantity, vegan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		menu.ID,
		menu.Name,
		menu.Description,
		menu.BasePrice,
		menu.MinimumQuantity,
		menu.Vegan,
		menu.CreatedAt,
		menu.UpdatedAt,
	)
	if err != nil {
		r.logger.Errorw("failed to create menu", "name", req.Name, "error", err)
		return nil, err
	}

	r.logger.Infow("menu created", "menu_id", menu.ID, "name", menu.Name)
	return menu, nil
}

// Update edits a menu offering.
func (r *PostgresMenuRepository) Update(ctx context.Context, id string, req *models.UpdateMenuRequest) (*models.MenuOffering, error) {
	query := `
		UPDATE menus
		SET name = $2, description = $3, base_price = $4, minimum_quantity = $5,
		    vegan = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var returnedID string
	err := r.db.QueryRowContext(ctx, query,
		id, req.Name, req.Description, req.BasePrice, req.MinimumQuantity, req.Vegan, time.Now(),
	).Scan(&returnedID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Errorw("failed to update menu", "menu_id", id, "error", err)
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete soft-deletes a menu offering. Existing cart and order line items
// keep their frozen prices and are unaffected.
func (r *PostgresMenuRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE menus
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	r.logger.Infow("menu deleted", "menu_id", id)
	return nil
}

// ReplaceAddOns swaps the full add-on set of a menu in one transaction.
func (r *PostgresMenuRepository) ReplaceAddOns(ctx context.Context, menuID string, addOns []models.AddOnAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM menus WHERE id = $1 AND deleted_at IS NULL)`, menuID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_add_ons WHERE menu_id = $1`, menuID); err != nil {
		return err
	}

	for i, a := range addOns {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO menu_add_ons (menu_id, add_on_id, is_default, position) VALUES ($1, $2, $3, $4)`,
			menuID, a.AddOnID, a.IsDefault, i,
		)
		if err != nil {
			r.logger.Errorw("failed to attach add-on", "menu_id", menuID, "add_on_id", a.AddOnID, "error", err)
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE menus SET updated_at = $2 WHERE id = $1`, menuID, time.Now(),
	); err != nil {
		return err
	}

	return tx.Commit()
}

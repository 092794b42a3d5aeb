package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// testConfig has caching and email receipts off so services never touch the
// cache or spawn goroutines in tests.
func testConfig() *config.Config {
	return &config.Config{
		Features: config.FeatureFlags{
			EnableOrderEvents: true,
		},
	}
}

type fakeMenuRepo struct {
	menus map[string]*models.MenuOffering
}

func (r *fakeMenuRepo) GetByID(_ context.Context, id string) (*models.MenuOffering, error) {
	menu, ok := r.menus[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return menu, nil
}

func (r *fakeMenuRepo) List(_ context.Context) ([]*models.MenuOffering, error) {
	out := make([]*models.MenuOffering, 0, len(r.menus))
	for _, m := range r.menus {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMenuRepo) Create(_ context.Context, req *models.CreateMenuRequest) (*models.MenuOffering, error) {
	menu := &models.MenuOffering{
		ID:              "menu_test",
		Name:            req.Name,
		BasePrice:       req.BasePrice,
		MinimumQuantity: req.MinimumQuantity,
	}
	r.menus[menu.ID] = menu
	return menu, nil
}

func (r *fakeMenuRepo) Update(_ context.Context, id string, req *models.UpdateMenuRequest) (*models.MenuOffering, error) {
	menu, ok := r.menus[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	menu.Name = req.Name
	menu.BasePrice = req.BasePrice
	menu.MinimumQuantity = req.MinimumQuantity
	return menu, nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.menus[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.menus, id)
	return nil
}

func (r *fakeMenuRepo) ReplaceAddOns(_ context.Context, menuID string, _ []models.AddOnAssignment) error {
	if _, ok := r.menus[menuID]; !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	items map[string][]*models.CartItem // keyed by user id
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string][]*models.CartItem)}
}

func (r *fakeCartRepo) GetByUserID(_ context.Context, userID string) ([]*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.CartItem(nil), r.items[userID]...), nil
}

func (r *fakeCartRepo) GetItem(_ context.Context, userID, itemID string) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items[userID] {
		if item.ID == itemID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCartRepo) AddItem(_ context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.UserID] = append(r.items[item.UserID], item)
	return nil
}

func (r *fakeCartRepo) UpdateQuantity(_ context.Context, userID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items[userID] {
		if item.ID == itemID {
			item.Quantity = quantity
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[userID]
	for i, item := range items {
		if item.ID == itemID {
			r.items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeCartRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, userID)
	return nil
}

type fakeDiscountRepo struct {
	codes      map[string]*models.DiscountCode // keyed by lowercase code
	companyID  string
	companyPct decimal.Decimal
}

func (r *fakeDiscountRepo) GetCodeByValue(_ context.Context, code string) (*models.DiscountCode, error) {
	dc, ok := r.codes[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return dc, nil
}

func (r *fakeDiscountRepo) GetCompany(_ context.Context, id string) (*models.Company, error) {
	if id != r.companyID {
		return nil, apperrors.ErrNotFound
	}
	return &models.Company{ID: r.companyID, DiscountPercentage: r.companyPct}, nil
}

func (r *fakeDiscountRepo) CompanyDiscountForUser(_ context.Context, _ string) (string, decimal.Decimal, error) {
	return r.companyID, r.companyPct, nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, filter *models.OrderListFilter) ([]*models.Order, int, error) {
	out := make([]*models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		out = append(out, o)
	}
	return out, len(out), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	order.Status = req.Status
	return order, nil
}

func (r *fakeOrderRepo) SetInvoiceID(_ context.Context, orderID, invoiceID string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return apperrors.ErrNotFound
	}
	order.InvoiceID = invoiceID
	return nil
}

type fakePublisher struct {
	created   []string
	statuses  []string
	cancelled []string
}

func (p *fakePublisher) PublishOrderCreated(_ context.Context, order *models.Order) error {
	p.created = append(p.created, order.ID)
	return nil
}

func (p *fakePublisher) PublishOrderStatusChanged(_ context.Context, order *models.Order, _ models.OrderStatus) error {
	p.statuses = append(p.statuses, order.ID)
	return nil
}

func (p *fakePublisher) PublishOrderCancelled(_ context.Context, order *models.Order, _ string) error {
	p.cancelled = append(p.cancelled, order.ID)
	return nil
}

type fakeNotifier struct{}

func (fakeNotifier) SendOrderConfirmation(_ context.Context, _ *models.Order) error {
	return nil
}

package repository

import (
	"testing"
)

func TestPostgresMenuRepository_GetByID(t *testing.T) {
	t.Skip("Integration test - requires database")
}

func TestPostgresMenuRepository_ReplaceAddOns(t *testing.T) {
	t.Skip("Integration test - requires database")
}

func TestPostgresDiscountRepository_GetCodeByValue(t *testing.T) {
	t.Skip("Integration test - requires database")
}

func TestPostgresCartRepository_AddItem(t *testing.T) {
	t.Skip("Integration test - requires database")
}

func TestPostgresOrderRepository_Create(t *testing.T) {
	t.Skip("Integration test - requires database")
}

func TestPostgresOrderRepository_List(t *testing.T) {
	t.Skip("Integration test - requires database")
}

func TestRedisCatalogCache_MenuRoundTrip(t *testing.T) {
	t.Skip("Integration test - requires redis")
}

package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"id", "user_id", "items", "address", "subtotal", "shipping", "total", "payment_method", "status", "created_at", "updated_at",
}

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))

	order := &entity.Order{
		UserID:   uuid.New(),
		Items:    []entity.OrderLine{{ProductID: "p1", Name: "Runner", Price: decimal.NewFromInt(100), Quantity: 2}},
		Address:  entity.ShippingAddress{Name: "A", City: "Pune"},
		Subtotal: decimal.NewFromInt(200),
		Shipping: decimal.NewFromInt(10),
		Total:    decimal.NewFromInt(210),
		Status:   entity.OrderStatusCreated,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestOrderRepository_ListByUser_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	userID := uuid.New()
	newer, older := uuid.New(), uuid.New()
	now := time.Now()
	items := `[{"productId":"p1","name":"Runner","price":"100","quantity":2,"size":9,"image":"x"}]`
	address := `{"name":"A","city":"Pune","country":"IN"}`

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(newer.String(), userID.String(), items, address, "200", "10", "210", "cod", "created", now, now).
			AddRow(older.String(), userID.String(), items, address, "200", "10", "210", "cod", "created", now.Add(-time.Hour), now))

	orders, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, newer, orders[0].ID)
	assert.Equal(t, older, orders[1].ID)
	assert.Equal(t, "Pune", orders[0].Address.City)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(210)))
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

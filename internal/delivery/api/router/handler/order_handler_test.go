package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: slog.New(slog.DiscardHandler)}), orderUC
}

func sampleOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.OrderLine{
			{ProductID: "p1", Name: "Air Runner", Price: decimal.RequireFromString("49.99"), Quantity: 2, Size: 9},
		},
		Address:       entity.ShippingAddress{Name: "Alice", City: "Pune", Pincode: "411001"},
		Subtotal:      decimal.RequireFromString("99.98"),
		Shipping:      decimal.RequireFromString("5"),
		Total:         decimal.RequireFromString("104.98"),
		PaymentMethod: "cod",
		Status:        entity.OrderStatusCreated,
		CreatedAt:     time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	body := `{
		"items": [
			{"productId": "p1", "name": "Air Runner", "price": 49.99, "quantity": 2, "size": 9},
			{"productId": "p2", "name": "Slide", "price": "10.50"}
		],
		"address": {"name": "Alice", "city": "Pune", "pincode": "411001"},
		"subtotal": 110.48,
		"shipping": 5,
		"total": "115.48",
		"paymentMethod": "cod"
	}`

	t.Run("passes raw items and client totals", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		userID := uuid.New()
		order := sampleOrder(userID)

		orderUC.EXPECT().CreateOrder(mock.Anything, userID, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
			return len(in.Items) == 2 &&
				in.Items[0].Price == 49.99 && in.Items[0].Quantity == 2.0 &&
				in.Items[1].Price == "10.50" && in.Items[1].Quantity == nil &&
				in.Subtotal != nil && in.Subtotal.Equal(decimal.RequireFromString("110.48")) &&
				in.Total != nil && in.Total.Equal(decimal.RequireFromString("115.48")) &&
				in.Shipping.Equal(decimal.NewFromInt(5)) &&
				in.Address.City == "Pune" && in.PaymentMethod == "cod"
		})).Return(order, nil)

		c, rec := newAuthedContext(userID, http.MethodPost, "/api/orders", body)
		require.NoError(t, h.CreateOrder(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var data OrderEnvelope
		decodeData(t, rec, &data)
		assert.Equal(t, order.ID.String(), data.Order.ID)
		assert.Equal(t, userID.String(), data.Order.User)
		assert.Equal(t, 104.98, data.Order.Total)
		assert.Equal(t, "created", data.Order.Status)
		require.Len(t, data.Order.Items, 1)
		assert.Equal(t, 49.99, data.Order.Items[0].Price)
	})

	t.Run("total mismatch", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderTotalMismatch)

		c, rec := newAuthedContext(uuid.New(), http.MethodPost, "/api/orders", body)
		require.NoError(t, h.CreateOrder(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ORDER_TOTAL_MISMATCH", decodeErrorCode(t, rec))
	})

	t.Run("invalid address email", func(t *testing.T) {
		h, _ := createTestOrderHandler(t)

		c, rec := newAuthedContext(uuid.New(), http.MethodPost, "/api/orders",
			`{"items":[{"productId":"p1","price":1}],"address":{"email":"nope"}}`)
		require.NoError(t, h.CreateOrder(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, map[string]any{"address.email": "email"}, env.Error.Details)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)
	userID := uuid.New()
	orderUC.EXPECT().ListOrders(mock.Anything, userID).Return([]*entity.Order{sampleOrder(userID), sampleOrder(userID)}, nil)

	c, rec := newAuthedContext(userID, http.MethodGet, "/api/orders", "")
	require.NoError(t, h.ListOrders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var data OrdersEnvelope
	decodeData(t, rec, &data)
	assert.Len(t, data.Orders, 2)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "owner", wantStatus: http.StatusOK},
		{name: "other owner", err: domainerrors.ErrOrderForbidden, wantStatus: http.StatusForbidden, wantCode: "ORDER_FORBIDDEN"},
		{name: "missing", err: domainerrors.ErrOrderNotFound, wantStatus: http.StatusNotFound, wantCode: "ORDER_NOT_FOUND"},
		{name: "malformed id", err: domainerrors.ErrOrderInvalidID, wantStatus: http.StatusBadRequest, wantCode: "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderUC := createTestOrderHandler(t)
			userID := uuid.New()
			order := sampleOrder(userID)
			if tt.err != nil {
				orderUC.EXPECT().GetOrder(mock.Anything, userID, "some-id").Return(nil, tt.err)
			} else {
				orderUC.EXPECT().GetOrder(mock.Anything, userID, "some-id").Return(order, nil)
			}

			c, rec := newAuthedContext(userID, http.MethodGet, "/api/orders/some-id", "")
			c.SetParamNames("id")
			c.SetParamValues("some-id")
			require.NoError(t, h.GetOrder(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))

				return
			}
			var data OrderEnvelope
			decodeData(t, rec, &data)
			assert.Equal(t, order.ID.String(), data.Order.ID)
		})
	}
}

func TestOrderHandler_GetOrderQR(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)
	userID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	orderUC.EXPECT().OrderReceiptQR(mock.Anything, userID, "order-1").Return(png, nil)

	c, rec := newAuthedContext(userID, http.MethodGet, "/api/orders/order-1/qr", "")
	c.SetParamNames("id")
	c.SetParamValues("order-1")
	require.NoError(t, h.GetOrderQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

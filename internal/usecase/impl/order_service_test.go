package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
	qrService *mockSvc.MockQRCodeService
	metrics   *mockSvc.MockStoreMetrics
	userID    uuid.UUID
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		qrService: mockSvc.NewMockQRCodeService(t),
		metrics:   mockSvc.NewMockStoreMetrics(t),
		userID:    uuid.New(),
	}

	fx.service = NewOrderService(OrderServiceParams{
		OrderRepo: fx.orderRepo,
		UserRepo:  fx.userRepo,
		Publisher: fx.publisher,
		QRService: fx.qrService,
		Metrics:   fx.metrics,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func sampleOrderInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p1", Name: "Runner", Price: 49.99, Quantity: 2.0, Size: 9},
			{ProductID: "p2", Name: "Slide", Price: "10.50", Quantity: nil, Size: 8},
		},
		Address:       entity.ShippingAddress{Name: "Alice", City: "Pune", Pincode: "411001"},
		Subtotal:      decimalPtr("110.48"),
		Shipping:      decimal.RequireFromString("5"),
		Total:         decimalPtr("115.48"),
		PaymentMethod: "cod",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	orderID := uuid.New()

	var stored *entity.Order
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
			stored = order
		}).
		Return(nil)
	fx.metrics.EXPECT().OrderCreated("cod").Return()
	fx.userRepo.EXPECT().AppendOrder(ctx, fx.userID, orderID).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.MatchedBy(func(event *service.OrderCreatedEvent) bool {
			return event.OrderID == orderID.String() &&
				event.RequestID == "req-1" &&
				event.ItemCount == 2 &&
				event.Total == "115.48"
		})).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, fx.userID, sampleOrderInput())
	require.NoError(t, err)
	require.Same(t, stored, order)

	assert.Equal(t, entity.OrderStatusCreated, order.Status)
	assert.Equal(t, fx.userID, order.UserID)
	assert.Equal(t, "110.48", order.Subtotal.StringFixed(2))
	assert.Equal(t, "115.48", order.Total.StringFixed(2))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, "10.5", order.Items[1].Price.String())
}

func TestOrderService_CreateOrder_SideEffectFailuresDoNotFail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	input := sampleOrderInput()
	input.Subtotal = nil
	input.Total = nil

	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.metrics.EXPECT().OrderCreated("cod").Return()
	fx.userRepo.EXPECT().AppendOrder(ctx, fx.userID, mock.AnythingOfType("uuid.UUID")).Return(repository.ErrUserNotFound)
	fx.publisher.EXPECT().PublishOrderCreated(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.CreateOrder(ctx, fx.userID, input)
	require.NoError(t, err)
	assert.Equal(t, "115.48", order.Total.StringFixed(2))
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(in *usecase.CreateOrderInput)
		wantErr error
	}{
		{
			name:    "no items",
			mutate:  func(in *usecase.CreateOrderInput) { in.Items = nil },
			wantErr: domainerrors.ErrOrderNoItems,
		},
		{
			name:    "negative price",
			mutate:  func(in *usecase.CreateOrderInput) { in.Items[0].Price = -1.0 },
			wantErr: domainerrors.ErrOrderInvalidItem,
		},
		{
			name:    "total off by more than a cent",
			mutate:  func(in *usecase.CreateOrderInput) { in.Total = decimalPtr("100.00") },
			wantErr: domainerrors.ErrOrderTotalMismatch,
		},
		{
			name:    "subtotal off by more than a cent",
			mutate:  func(in *usecase.CreateOrderInput) { in.Subtotal = decimalPtr("110.50") },
			wantErr: domainerrors.ErrOrderTotalMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			input := sampleOrderInput()
			tt.mutate(&input)

			order, err := fx.service.CreateOrder(ctx, fx.userID, input)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_CreateOrder_AcceptsRoundingWithinTolerance(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	input := sampleOrderInput()
	input.Subtotal = decimalPtr("110.49")
	input.Total = decimalPtr("115.47")

	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.metrics.EXPECT().OrderCreated("cod").Return()
	fx.userRepo.EXPECT().AppendOrder(ctx, fx.userID, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderCreated(ctx, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(ctx, fx.userID, input)
	require.NoError(t, err)
	assert.Equal(t, "115.48", order.Total.StringFixed(2))
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.GetOrder(ctx, fx.userID, "not-a-uuid")
		assert.ErrorIs(t, err, domainerrors.ErrOrderInvalidID)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestOrderService(t)
		orderID := uuid.New()
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.GetOrder(ctx, fx.userID, orderID.String())
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("other owner", func(t *testing.T) {
		fx := createTestOrderService(t)
		orderID := uuid.New()
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

		_, err := fx.service.GetOrder(ctx, fx.userID, orderID.String())
		assert.ErrorIs(t, err, domainerrors.ErrOrderForbidden)
	})

	t.Run("owner", func(t *testing.T) {
		fx := createTestOrderService(t)
		orderID := uuid.New()
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: fx.userID}, nil)

		order, err := fx.service.GetOrder(ctx, fx.userID, orderID.String())
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), CreatedAt: time.Now()},
		{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.orderRepo.EXPECT().ListByUser(ctx, fx.userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_OrderReceiptQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: fx.userID}, nil)
	fx.qrService.EXPECT().GenerateOrderQR(orderID).Return([]byte("png"), nil)

	png, err := fx.service.OrderReceiptQR(ctx, fx.userID, orderID.String())
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "float", input: 19.99, want: "19.99"},
		{name: "numeric string", input: " 25.5 ", want: "25.5"},
		{name: "json number", input: json.Number("12"), want: "12"},
		{name: "garbage string", input: "abc", want: "0"},
		{name: "missing", input: nil, want: "0"},
		{name: "bool", input: true, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coercePrice(tt.input).String())
		})
	}
}

func TestCoerceQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "whole number", input: 3.0, want: 3},
		{name: "fraction truncated", input: 2.7, want: 2},
		{name: "numeric string", input: "4", want: 4},
		{name: "zero", input: 0.0, want: 1},
		{name: "negative", input: -2.0, want: 1},
		{name: "garbage", input: "many", want: 1},
		{name: "missing", input: nil, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceQuantity(tt.input))
		})
	}
}

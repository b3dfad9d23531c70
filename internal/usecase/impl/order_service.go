package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultTotalTolerance = 0.01

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	qrService service.QRCodeService
	metrics   service.StoreMetrics
	tolerance decimal.Decimal
	now       func() time.Time
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Metrics   service.StoreMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	tolerance := defaultTotalTolerance
	if params.Config != nil && params.Config.Order.TotalTolerance > 0 {
		tolerance = params.Config.Order.TotalTolerance
	}

	return &orderService{
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		metrics:   params.Metrics,
		tolerance: decimal.NewFromFloat(tolerance),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder stores the order with server-computed totals, then links it to the user and
// publishes an event. Failures of those follow-ups are logged and do not fail the order.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderNoItems
	}

	lines := make([]entity.OrderLine, 0, len(input.Items))
	for _, item := range input.Items {
		line, err := normalizeOrderItem(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if input.Shipping.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shipping must not be negative")
	}

	subtotal, total := entity.CalculateTotals(lines, input.Shipping)
	if !srv.withinTolerance(input.Subtotal, subtotal) || !srv.withinTolerance(input.Total, total) {
		srv.log(ctx).Warn("Order totals mismatch",
			slog.String("subtotal", subtotal.StringFixed(2)),
			slog.String("total", total.StringFixed(2)),
		)

		return nil, domainerrors.ErrOrderTotalMismatch
	}

	now := srv.now()
	order := &entity.Order{
		UserID:        userID,
		Items:         lines,
		Address:       input.Address,
		Subtotal:      subtotal,
		Shipping:      input.Shipping,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Status:        entity.OrderStatusCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	srv.metrics.OrderCreated(order.PaymentMethod)
	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.String("total", total.StringFixed(2)),
	)

	if err := srv.userRepo.AppendOrder(ctx, userID, order.ID); err != nil {
		srv.log(ctx).Warn("Could not link order to user", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	event := &service.OrderCreatedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		UserID:        userID.String(),
		ItemCount:     len(order.Items),
		Total:         total.StringFixed(2),
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     now,
	}
	if err := srv.publisher.PublishOrderCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Could not publish order created event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	return order, nil
}

// withinTolerance accepts an absent client figure.
func (srv *orderService) withinTolerance(claimed *decimal.Decimal, computed decimal.Decimal) bool {
	if claimed == nil {
		return true
	}

	return claimed.Sub(computed).Abs().LessThanOrEqual(srv.tolerance)
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID uuid.UUID, rawID string) (*entity.Order, error) {
	orderID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.ErrOrderInvalidID
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	if !order.OwnedBy(userID) {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", orderID), slog.Any("userID", userID))

		return nil, domainerrors.ErrOrderForbidden
	}

	return order, nil
}

func (srv *orderService) OrderReceiptQR(ctx context.Context, userID uuid.UUID, rawID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, rawID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func normalizeOrderItem(item usecase.OrderItemInput) (entity.OrderLine, error) {
	price := coercePrice(item.Price)
	if price.IsNegative() {
		return entity.OrderLine{}, domainerrors.ErrOrderInvalidItem.WrapMessage("price must not be negative")
	}

	return entity.OrderLine{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     price,
		Quantity:  coerceQuantity(item.Quantity),
		Size:      item.Size,
		ImageURL:  item.ImageURL,
	}, nil
}

// coercePrice accepts numbers and numeric strings. Anything else is zero.
func coercePrice(v any) decimal.Decimal {
	switch p := v.(type) {
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return decimal.Zero
		}

		return decimal.NewFromFloat(p)
	case int:
		return decimal.NewFromInt(int64(p))
	case json.Number:
		d, err := decimal.NewFromString(p.String())
		if err != nil {
			return decimal.Zero
		}

		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return decimal.Zero
		}

		return d
	default:
		return decimal.Zero
	}
}

// coerceQuantity truncates numeric values. Missing, invalid and non-positive values become 1.
func coerceQuantity(v any) int {
	var q float64
	switch n := v.(type) {
	case float64:
		q = n
	case int:
		q = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 1
		}
		q = f
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return 1
		}
		q = d.InexactFloat64()
	default:
		return 1
	}

	if math.IsNaN(q) || q < 1 || q > math.MaxInt32 {
		return 1
	}

	return int(q)
}

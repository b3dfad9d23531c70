package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns the GORM backed OrderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	items := make([]entity.OrderLine, 0, len(orderM.Items))
	for _, item := range orderM.Items {
		items = append(items, entity.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			ImageURL:  item.ImageURL,
		})
	}

	address := orderM.Address.Data()

	return &entity.Order{
		ID:     orderM.ID,
		UserID: orderM.UserID,
		Items:  items,
		Address: entity.ShippingAddress{
			Name:    address.Name,
			Email:   address.Email,
			Phone:   address.Phone,
			Line1:   address.Line1,
			Line2:   address.Line2,
			City:    address.City,
			State:   address.State,
			Pincode: address.Pincode,
			Country: address.Country,
		},
		Subtotal:      orderM.Subtotal,
		Shipping:      orderM.Shipping,
		Total:         orderM.Total,
		PaymentMethod: orderM.PaymentMethod,
		Status:        orderM.Status,
		CreatedAt:     orderM.CreatedAt,
		UpdatedAt:     orderM.UpdatedAt,
	}
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := make([]model.OrderLineModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderLineModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			ImageURL:  item.ImageURL,
		})
	}

	return &model.OrderModel{
		ID:     order.ID,
		UserID: order.UserID,
		Items:  datatypes.NewJSONSlice(items),
		Address: datatypes.NewJSONType(model.AddressModel{
			Name:    order.Address.Name,
			Email:   order.Address.Email,
			Phone:   order.Address.Phone,
			Line1:   order.Address.Line1,
			Line2:   order.Address.Line2,
			City:    order.Address.City,
			State:   order.Address.State,
			Pincode: order.Address.Pincode,
			Country: order.Address.Country,
		}),
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

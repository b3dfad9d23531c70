package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the GORM backed UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create inserts a user. A missing id is generated.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required user information")
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateCart writes the cart only while cart_version still equals expectedVersion.
func (repo *userRepository) UpdateCart(ctx context.Context, userID uuid.UUID, expectedVersion int64, cart entity.Cart) (int64, error) {
	nextVersion := expectedVersion + 1

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND cart_version = ?", userID, expectedVersion).
		Updates(map[string]any{
			"cart":         fromCartDomain(cart),
			"cart_version": nextVersion,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update cart")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrCartVersionConflict
	}

	return nextVersion, nil
}

// AppendOrder appends orderID to users.order_ids in a single statement.
func (repo *userRepository) AppendOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	ref, err := json.Marshal([]uuid.UUID{orderID})
	if err != nil {
		return errors.WithStack(err)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("order_ids", gorm.Expr("order_ids || ?::jsonb", string(ref)))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to append order reference")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	cart := make(entity.Cart, 0, len(userM.Cart))
	for _, line := range userM.Cart {
		cart = append(cart, entity.CartLine{
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		Name:         userM.Name,
		PasswordHash: userM.PasswordHash,
		Cart:         cart,
		CartVersion:  userM.CartVersion,
		OrderIDs:     append([]uuid.UUID{}, userM.OrderIDs...),
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	orderIDs := user.OrderIDs
	if orderIDs == nil {
		orderIDs = []uuid.UUID{}
	}

	return &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Cart:         fromCartDomain(user.Cart),
		CartVersion:  user.CartVersion,
		OrderIDs:     datatypes.NewJSONSlice(orderIDs),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// fromCartDomain always returns a non-nil slice so an empty cart is stored as [] rather than null.
func fromCartDomain(cart entity.Cart) datatypes.JSONSlice[model.CartLineModel] {
	lines := make([]model.CartLineModel, 0, len(cart))
	for _, line := range cart {
		lines = append(lines, model.CartLineModel{
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return datatypes.NewJSONSlice(lines)
}

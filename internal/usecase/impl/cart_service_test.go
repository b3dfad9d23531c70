package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	userID      uuid.UUID
	product     *entity.Product
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	cfg := &config.Config{}
	cfg.Cart.MaxRetries = 2

	svc := NewCartService(CartServiceParams{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return cartServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		productRepo: productRepo,
		userID:      uuid.New(),
		product:     &entity.Product{ID: uuid.New(), Name: "Runner"},
	}
}

func TestCartService_GetCart_DropsMissingProducts(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	goneID := uuid.New()

	cart := entity.Cart{
		{ProductID: fx.product.ID, Size: 9, Quantity: 1},
		{ProductID: goneID, Size: 8, Quantity: 2},
	}
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, Cart: cart}, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{fx.product.ID, goneID}).
		Return([]*entity.Product{fx.product}, nil)

	items, err := fx.service.GetCart(ctx, fx.userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fx.product.ID, items[0].ProductID)
	assert.Same(t, fx.product, items[0].Product)
	assert.Equal(t, 9.0, items[0].Size)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID}, nil)

	items, err := fx.service.GetCart(ctx, fx.userID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	stored := entity.Cart{{ProductID: fx.product.ID, Size: 9, Quantity: 1}}
	fx.productRepo.EXPECT().FindByID(ctx, fx.product.ID).Return(fx.product, nil)
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, Cart: stored, CartVersion: 4}, nil)
	fx.userRepo.EXPECT().
		UpdateCart(ctx, fx.userID, int64(4), entity.Cart{{ProductID: fx.product.ID, Size: 9, Quantity: 3}}).
		Return(int64(5), nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{fx.product.ID}).Return([]*entity.Product{fx.product}, nil)

	items, err := fx.service.AddItem(ctx, fx.userID, usecase.CartLineInput{ProductID: fx.product.ID, Size: 9, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity below one", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(ctx, fx.userID, usecase.CartLineInput{ProductID: fx.product.ID, Size: 9, Quantity: 0})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.productRepo.EXPECT().FindByID(ctx, fx.product.ID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.AddItem(ctx, fx.userID, usecase.CartLineInput{ProductID: fx.product.ID, Size: 9, Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCartService_AddItem_RetriesOnConflict(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	otherID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, fx.product.ID).Return(fx.product, nil)

	// The first read loses a race against a concurrent add of another product.
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, CartVersion: 1}, nil).Once()
	fx.userRepo.EXPECT().
		UpdateCart(ctx, fx.userID, int64(1), mock.Anything).
		Return(int64(0), repository.ErrCartVersionConflict).Once()

	concurrent := entity.Cart{{ProductID: otherID, Size: 7, Quantity: 1}}
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, Cart: concurrent, CartVersion: 2}, nil).Once()
	fx.userRepo.EXPECT().
		UpdateCart(ctx, fx.userID, int64(2), entity.Cart{
			{ProductID: otherID, Size: 7, Quantity: 1},
			{ProductID: fx.product.ID, Size: 9, Quantity: 1},
		}).
		Return(int64(3), nil).Once()
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{otherID, fx.product.ID}).
		Return([]*entity.Product{{ID: otherID}, fx.product}, nil)

	items, err := fx.service.AddItem(ctx, fx.userID, usecase.CartLineInput{ProductID: fx.product.ID, Size: 9, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCartService_UpdateQuantity_GivesUpAfterRetries(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, CartVersion: 1}, nil).Times(3)
	fx.userRepo.EXPECT().
		UpdateCart(ctx, fx.userID, int64(1), mock.Anything).
		Return(int64(0), repository.ErrCartVersionConflict).Times(3)

	_, err := fx.service.UpdateQuantity(ctx, fx.userID, usecase.CartLineInput{ProductID: fx.product.ID, Size: 9, Quantity: 2})
	assert.ErrorIs(t, err, domainerrors.ErrCartConflict)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	stored := entity.Cart{{ProductID: fx.product.ID, Size: 9, Quantity: 2}}
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, Cart: stored}, nil)
	fx.userRepo.EXPECT().UpdateCart(ctx, fx.userID, int64(0), entity.Cart{}).Return(int64(1), nil)

	items, err := fx.service.UpdateQuantity(ctx, fx.userID, usecase.CartLineInput{ProductID: fx.product.ID, Size: 9, Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_RemoveItem_MissingLineIsNoop(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	stored := entity.Cart{{ProductID: fx.product.ID, Size: 9, Quantity: 2}}
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, Cart: stored}, nil)
	fx.userRepo.EXPECT().UpdateCart(ctx, fx.userID, int64(0), stored).Return(int64(1), nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{fx.product.ID}).Return([]*entity.Product{fx.product}, nil)

	items, err := fx.service.RemoveItem(ctx, fx.userID, fx.product.ID, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	stored := entity.Cart{{ProductID: fx.product.ID, Size: 9, Quantity: 2}}
	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(&entity.User{ID: fx.userID, Cart: stored, CartVersion: 7}, nil)
	fx.userRepo.EXPECT().UpdateCart(ctx, fx.userID, int64(7), entity.Cart{}).Return(int64(8), nil)

	require.NoError(t, fx.service.ClearCart(ctx, fx.userID))
}

func TestCartService_DatabaseFailure(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, fx.userID).Return(nil, errors.New("connection refused"))

	_, err := fx.service.GetCart(ctx, fx.userID)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

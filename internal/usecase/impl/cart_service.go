package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultCartMaxRetries = 3

// cartService implements the CartUsecase interface.
// Writes are optimistic: read the cart, transform it, store it only if the version is unchanged.
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	maxRetries  int
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	maxRetries := defaultCartMaxRetries
	if params.Config != nil && params.Config.Cart.MaxRetries > 0 {
		maxRetries = params.Config.Cart.MaxRetries
	}

	return &cartService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		maxRetries:  maxRetries,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*usecase.CartItem, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.join(ctx, user.Cart)
}

func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input usecase.CartLineInput) ([]*usecase.CartItem, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	cart, err := srv.mutate(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.Add(input.ProductID, input.Size, input.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return srv.join(ctx, cart)
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, input usecase.CartLineInput) ([]*usecase.CartItem, error) {
	cart, err := srv.mutate(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.SetQuantity(input.ProductID, input.Size, input.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return srv.join(ctx, cart)
}

func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID, size float64) ([]*usecase.CartItem, error) {
	cart, err := srv.mutate(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.Remove(productID, size)
	})
	if err != nil {
		return nil, err
	}

	return srv.join(ctx, cart)
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	_, err := srv.mutate(ctx, userID, func(entity.Cart) entity.Cart {
		return entity.Cart{}
	})

	return err
}

// mutate applies fn to the stored cart with compare-and-swap, re-reading on version conflicts.
func (srv *cartService) mutate(ctx context.Context, userID uuid.UUID, fn func(entity.Cart) entity.Cart) (entity.Cart, error) {
	for attempt := 0; attempt <= srv.maxRetries; attempt++ {
		user, err := srv.findUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		next := fn(user.Cart)
		if _, err := srv.userRepo.UpdateCart(ctx, userID, user.CartVersion, next); err != nil {
			if errors.Is(err, repository.ErrCartVersionConflict) {
				srv.log(ctx).Debug("Cart version conflict, retrying", slog.Any("userID", userID), slog.Int("attempt", attempt+1))

				continue
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update cart")
		}

		return next, nil
	}

	srv.log(ctx).Warn("Cart update gave up after repeated conflicts", slog.Any("userID", userID))

	return nil, domainerrors.ErrCartConflict
}

func (srv *cartService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}

// join attaches products to cart lines. Lines whose product is gone are left out.
func (srv *cartService) join(ctx context.Context, cart entity.Cart) ([]*usecase.CartItem, error) {
	items := make([]*usecase.CartItem, 0, len(cart))
	if len(cart) == 0 {
		return items, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	for _, line := range cart {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		items = append(items, &usecase.CartItem{
			ProductID: line.ProductID,
			Product:   product,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return items, nil
}

package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const productInsertBatchSize = 100

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns the GORM backed ProductRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List applies exact filters, a case-insensitive name search and the requested ordering.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Trending != nil {
		query = query.Where("trending = ?", *filter.Trending)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}

	switch filter.Sort {
	case entity.ProductSortLowToHigh:
		query = query.Order("price ASC")
	case entity.ProductSortHighToLow:
		query = query.Order("price DESC")
	case entity.ProductSortBrand:
		query = query.Order("brand ASC")
	default:
		query = query.Order("created_at ASC")
	}

	var productMs []*model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *productRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(productMs), nil
}

// ReplaceAll empties the products table and inserts products. Callers run it inside a transaction.
func (repo *productRepository) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("1 = 1").Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear products")
	}
	if len(products) == 0 {
		return nil
	}

	productMs := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		if product.ID == uuid.Nil {
			product.ID = uuid.New()
		}
		productMs = append(productMs, fromProductDomain(product))
	}

	if err := db.CreateInBatches(productMs, productInsertBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "duplicate sku or slug")
		}

		return errors.Wrap(err, "failed to insert products")
	}

	return nil
}

// escapeLike makes user input literal inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toProductDomains(productMs []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          productM.ID,
		SKU:         productM.SKU,
		Name:        productM.Name,
		Brand:       productM.Brand,
		Category:    productM.Category,
		Gender:      productM.Gender,
		Price:       productM.Price,
		ImageURL:    productM.ImageURL,
		Sizes:       append([]float64{}, productM.Sizes...),
		Rating:      productM.Rating,
		Reviews:     productM.Reviews,
		Description: productM.Description,
		Slug:        productM.Slug,
		Trending:    productM.Trending,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	sizes := product.Sizes
	if sizes == nil {
		sizes = []float64{}
	}

	return &model.ProductModel{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Brand:       product.Brand,
		Category:    product.Category,
		Gender:      product.Gender,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Sizes:       datatypes.NewJSONSlice(sizes),
		Rating:      product.Rating,
		Reviews:     product.Reviews,
		Description: product.Description,
		Slug:        product.Slug,
		Trending:    product.Trending,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

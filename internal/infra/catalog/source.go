// Package catalog loads the product seed document from blob storage.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	defaultKey    = "products.json"
	defaultRating = 4.0
)

// ErrDocumentNotFound is returned when the bucket has no object at the configured key.
var ErrDocumentNotFound = errors.New("catalog document not found")

// productDocument is one entry of the seed file.
type productDocument struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Gender      string          `json:"gender"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageURL"`
	Sizes       []float64       `json:"sizes"`
	Rating      *float64        `json:"rating"`
	Reviews     int             `json:"reviews"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Trending    bool            `json:"trending"`
}

// Source reads products from a bucket URL understood by gocloud.dev/blob.
type Source struct {
	bucketURL  string
	key        string
	logger     *slog.Logger
	openBucket func(ctx context.Context, url string) (*blob.Bucket, error)
}

// NewSource reads the bucket and key from the catalog configuration.
func NewSource(cfg *config.Config, logger *slog.Logger) *Source {
	key := cfg.Catalog.Key
	if key == "" {
		key = defaultKey
	}

	return &Source{
		bucketURL:  cfg.Catalog.BucketURL,
		key:        key,
		logger:     logger,
		openBucket: blob.OpenBucket,
	}
}

// Load fetches and parses the catalog document.
func (s *Source) Load(ctx context.Context) ([]*entity.Product, error) {
	if s.bucketURL == "" {
		return nil, errors.New("catalog bucket URL is not configured")
	}

	bucket, err := s.openBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", s.bucketURL)
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil {
			s.logger.Warn("Failed to close catalog bucket", slog.Any("error", closeErr))
		}
	}()

	data, err := bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(ErrDocumentNotFound, "key %s", s.key)
		}

		return nil, errors.Wrapf(err, "read %s", s.key)
	}

	products, err := Parse(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded catalog document",
		slog.String("bucket", s.bucketURL),
		slog.String("key", s.key),
		slog.Int("products", len(products)),
	)

	return products, nil
}

// Parse decodes a JSON array of products. Keys the catalog does not store are ignored.
func Parse(data []byte) ([]*entity.Product, error) {
	var docs []productDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toEntity())
	}

	return products, nil
}

func (d productDocument) toEntity() *entity.Product {
	rating := defaultRating
	if d.Rating != nil {
		rating = *d.Rating
	}

	return &entity.Product{
		SKU:         d.SKU,
		Name:        d.Name,
		Brand:       d.Brand,
		Category:    d.Category,
		Gender:      d.Gender,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		Sizes:       d.Sizes,
		Rating:      rating,
		Reviews:     d.Reviews,
		Description: d.Description,
		Slug:        d.Slug,
		Trending:    d.Trending,
	}
}

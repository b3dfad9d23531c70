package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository returns the GORM backed OtpRepository.
func NewOtpRepository(db *gorm.DB) repository.OtpRepository {
	return &otpRepository{db: db}
}

func (repo *otpRepository) Create(ctx context.Context, otp *entity.Otp) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	otpM := &model.OtpModel{
		ID:        otp.ID,
		Email:     otp.Email,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
		Used:      otp.Used,
	}

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return errors.Wrap(err, "failed to create otp")
	}

	otp.CreatedAt = otpM.CreatedAt
	otp.UpdatedAt = otpM.UpdatedAt

	return nil
}

func (repo *otpRepository) FindLatestUnused(ctx context.Context, email, code string) (*entity.Otp, error) {
	var otpM model.OtpModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND code = ? AND used = ?", email, code, false).
		Order("created_at DESC").
		First(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp")
	}

	return &entity.Otp{
		ID:        otpM.ID,
		Email:     otpM.Email,
		Code:      otpM.Code,
		ExpiresAt: otpM.ExpiresAt,
		Used:      otpM.Used,
		CreatedAt: otpM.CreatedAt,
		UpdatedAt: otpM.UpdatedAt,
	}, nil
}

// MarkUsed flips used to true only on a still unused row, so two concurrent verifications cannot both succeed.
func (repo *otpRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OtpModel{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark otp used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOtpNotFound
	}

	return nil
}

// Consume deletes the verified row for email. Only the first caller sees a deleted row.
func (repo *otpRepository) Consume(ctx context.Context, id uuid.UUID, email string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND email = ? AND used = ?", id, email, true).
		Delete(&model.OtpModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume otp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOtpNotFound
	}

	return nil
}

func (repo *otpRepository) DeleteUnusedByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("email = ? AND used = ?", email, false).
		Delete(&model.OtpModel{}).Error

	return errors.Wrap(err, "failed to delete pending otps")
}

func (repo *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.OtpModel{}).Error

	return errors.Wrap(err, "failed to delete otps")
}

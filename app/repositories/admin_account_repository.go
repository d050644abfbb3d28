package repositories

import (
	"context"
	"strings"

	"github.com/lunarbrew/go-cafe/app/models"
	"gorm.io/gorm"
)

type AdminAccountRepositoryImpl interface {
	Create(ctx context.Context, account *models.AdminAccount) error
	GetByID(ctx context.Context, id string) (*models.AdminAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	GetAll(ctx context.Context) ([]models.AdminAccount, error)
	Update(ctx context.Context, account *models.AdminAccount) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type adminAccountRepository struct {
	db *gorm.DB
}

func NewAdminAccountRepository(db *gorm.DB) AdminAccountRepositoryImpl {
	return &adminAccountRepository{db: db}
}

// Emails are stored lower-cased so the allow-list comparison is always
// case-insensitive.
func (r *adminAccountRepository) Create(ctx context.Context, account *models.AdminAccount) error {
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *adminAccountRepository) GetByID(ctx context.Context, id string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *adminAccountRepository) FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.db.WithContext(ctx).First(&account, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *adminAccountRepository) FindActiveByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *adminAccountRepository) GetAll(ctx context.Context) ([]models.AdminAccount, error) {
	var accounts []models.AdminAccount
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *adminAccountRepository) Update(ctx context.Context, account *models.AdminAccount) error {
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *adminAccountRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.AdminAccount{}, "id = ?", id).Error
}

func (r *adminAccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&models.AdminAccount{}).Where("id = ?", id).Update("active", active).Error
}

package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
	"github.com/calebsoh/menucard/pkg/logger"
	"github.com/calebsoh/menucard/pkg/metrics"
)

// ErrEmailTaken indicates another account already uses the email.
var ErrEmailTaken = errors.New("account service: email already registered")

// AccountService creates owner accounts and performs user lookups.
type AccountService struct {
	db           *gorm.DB
	verification *VerificationService
	log          *zap.Logger
}

// NewAccountService constructs an account service with the provided dependencies.
func NewAccountService(db *gorm.DB, verification *VerificationService) (*AccountService, error) {
	if db == nil {
		return nil, errors.New("account service: db is required")
	}
	if verification == nil {
		return nil, errors.New("account service: verification service is required")
	}

	return &AccountService{
		db:           db,
		verification: verification,
		log:          logger.WithModule("accounts"),
	}, nil
}

// Register creates an unverified account with its first verification code
// baked into the insert, then emails the code. An email failure here is
// tolerated: the account and code are already stored, so the code is logged
// as a fallback delivery channel and registration still succeeds.
func (s *AccountService) Register(ctx context.Context, email, fullName, country string) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("account service: check email: %w", err)
	}

	code, expiry, err := s.verification.GenerateCode()
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:                  email,
		FullName:               fullName,
		Country:                country,
		VerificationCode:       &code,
		VerificationCodeExpiry: &expiry,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("account service: create user: %w", err)
	}

	metrics.VerificationCodesIssued.WithLabelValues("register").Inc()

	if err := s.verification.SendCode(ctx, email, code, fullName); err != nil {
		s.log.Warn("verification email failed during registration; code retained",
			zap.String("email", email),
			zap.String("code", code),
			zap.Error(err),
		)
	}

	return &user, nil
}

// RequestCode issues a fresh code for an existing account. Unlike
// registration, a delivery failure here is fatal and surfaces to the caller.
func (s *AccountService) RequestCode(ctx context.Context, email string) error {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.verification.IssueCode(ctx, user); err != nil {
		return err
	}

	metrics.VerificationCodesIssued.WithLabelValues("request_code").Inc()
	return nil
}

// FindByEmail loads an account by its email address.
func (s *AccountService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("account service: find by email: %w", err)
	}
	return &user, nil
}

// FindByID loads an account by id.
func (s *AccountService) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("account service: find by id: %w", err)
	}
	return &user, nil
}

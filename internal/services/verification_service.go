package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
	"github.com/calebsoh/menucard/pkg/crypto"
	"github.com/calebsoh/menucard/pkg/mail"
	"github.com/calebsoh/menucard/pkg/metrics"
)

// Codes are valid for a fixed ten-minute window.
const verificationCodeTTL = 10 * time.Minute

var (
	// ErrUserNotFound indicates no account exists for the given email.
	ErrUserNotFound = errors.New("verification: user not found")
	// ErrNotVerified indicates the account has not confirmed its email yet.
	ErrNotVerified = errors.New("verification: user not verified")
	// ErrCodeInvalid indicates no code is outstanding or the digits do not match.
	ErrCodeInvalid = errors.New("verification: invalid code")
	// ErrCodeExpired indicates the code was correct but past its expiry.
	ErrCodeExpired = errors.New("verification: code expired")
	// ErrEmailDelivery indicates the code was stored but the email could not be sent.
	ErrEmailDelivery = errors.New("verification: email delivery failed")
)

// VerificationOption customises the VerificationService.
type VerificationOption func(*VerificationService)

// WithClock injects a custom time source.
func WithClock(clock func() time.Time) VerificationOption {
	return func(s *VerificationService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// VerificationService issues one-time codes and validates submitted ones.
//
// Issuing overwrites any outstanding code, so at most one code per account
// is live at a time. Validation check order is fixed: existence, verified
// state (login only), code equality, expiry. Callers rely on the order to
// render precise messages.
type VerificationService struct {
	db     *gorm.DB
	mailer mail.Mailer
	now    func() time.Time
}

// NewVerificationService constructs a verification service with the provided dependencies.
func NewVerificationService(db *gorm.DB, mailer mail.Mailer, opts ...VerificationOption) (*VerificationService, error) {
	if db == nil {
		return nil, errors.New("verification service: db is required")
	}

	service := &VerificationService{
		db:     db,
		mailer: mailer,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// GenerateCode returns a fresh 6-digit code and its expiry without touching
// the store. Registration uses this to bake the first code into the insert.
func (s *VerificationService) GenerateCode() (string, time.Time, error) {
	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("verification service: %w", err)
	}
	return code, s.now().Add(verificationCodeTTL), nil
}

// IssueCode stores a new code on an existing user, replacing any prior one,
// and dispatches it by email. When only the email fails the code remains
// stored and usable; the returned error wraps ErrEmailDelivery so the
// caller can decide whether that is fatal.
func (s *VerificationService) IssueCode(ctx context.Context, user *models.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("verification service: user is required")
	}

	code, expiry, err := s.GenerateCode()
	if err != nil {
		return "", err
	}

	update := map[string]any{
		"verification_code":        code,
		"verification_code_expiry": expiry,
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(update).Error; err != nil {
		return "", fmt.Errorf("verification service: store code: %w", err)
	}
	user.VerificationCode = &code
	user.VerificationCodeExpiry = &expiry

	if err := s.SendCode(ctx, user.Email, code, user.FullName); err != nil {
		return code, err
	}

	return code, nil
}

// SendCode emails a code to the given address. Failures wrap ErrEmailDelivery.
func (s *VerificationService) SendCode(ctx context.Context, email, code, fullName string) error {
	if s.mailer == nil {
		return fmt.Errorf("%w: no mailer configured", ErrEmailDelivery)
	}

	msg := mail.Message{
		To:      email,
		Subject: fmt.Sprintf("Your Verification Code: %s", code),
		Body:    verificationBody(code, fullName),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.EmailSendFailures.Inc()
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	return nil
}

// ConfirmRegistration validates a code for the verify flow. On success the
// account flips to verified and the code is consumed: both code columns are
// cleared in the same update, so a code confirms at most once.
func (s *VerificationService) ConfirmRegistration(ctx context.Context, email, code string) (*models.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.checkCode(user, code); err != nil {
		return nil, err
	}

	update := map[string]any{
		"verified":                 true,
		"verification_code":        nil,
		"verification_code_expiry": nil,
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(update).Error; err != nil {
		return nil, fmt.Errorf("verification service: mark verified: %w", err)
	}

	user.Verified = true
	user.VerificationCode = nil
	user.VerificationCodeExpiry = nil
	return user, nil
}

// Authenticate validates a code for the login flow. The account must
// already be verified, and the code is deliberately NOT consumed: it stays
// usable until it expires or a newer code overwrites it.
func (s *VerificationService) Authenticate(ctx context.Context, email, code string) (*models.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.Verified {
		return nil, ErrNotVerified
	}

	if err := s.checkCode(user, code); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *VerificationService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("verification service: find user: %w", err)
	}
	return &user, nil
}

// checkCode enforces equality before expiry so an expired-but-wrong code
// reads as invalid, matching the message order clients expect.
func (s *VerificationService) checkCode(user *models.User, submitted string) error {
	if user.VerificationCode == nil || *user.VerificationCode != submitted {
		return ErrCodeInvalid
	}

	if user.VerificationCodeExpiry != nil && user.VerificationCodeExpiry.Before(s.now()) {
		return ErrCodeExpired
	}

	return nil
}

func verificationBody(code, fullName string) string {
	displayName := "there"
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		displayName = strings.Fields(trimmed)[0]
	}

	return fmt.Sprintf(`Hi %s,

Your verification code is:

%s

This code will expire in 10 minutes.
If you didn't request this, please ignore this email.

Thanks,
Digital Menu Team
`, displayName, code)
}

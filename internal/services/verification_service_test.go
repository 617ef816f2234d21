package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/calebsoh/menucard/internal/database/testutil"
	"github.com/calebsoh/menucard/internal/models"
)

func seedUser(t *testing.T, svc *VerificationService, verified bool) *models.User {
	t.Helper()

	user := models.User{
		Email:    "ana@example.com",
		FullName: "Ana Iyer",
		Country:  "IN",
		Verified: verified,
	}
	require.NoError(t, svc.db.Create(&user).Error)
	return &user
}

func TestIssueCodeStoresCodeAndExpiry(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	mailer := &mockMailer{}

	svc, err := NewVerificationService(db, mailer, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, false)

	code, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, code, 6)

	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 100000)
	require.LessOrEqual(t, n, 999999)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NotNil(t, stored.VerificationCode)
	require.Equal(t, code, *stored.VerificationCode)
	require.NotNil(t, stored.VerificationCodeExpiry)
	require.Equal(t, clock.Now().Add(10*time.Minute).Unix(), stored.VerificationCodeExpiry.Unix())

	require.Len(t, mailer.sent, 1)
	require.Equal(t, "ana@example.com", mailer.sent[0].To)
	require.Contains(t, mailer.sent[0].Subject, code)
	require.Contains(t, mailer.sent[0].Body, "Hi Ana,")
	require.Contains(t, mailer.sent[0].Body, code)
	require.Contains(t, mailer.sent[0].Body, "expire in 10 minutes")
}

func TestIssueCodeOverwritesOutstandingCode(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}

	svc, err := NewVerificationService(db, &mockMailer{}, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, true)

	first, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	second, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	if first == second {
		t.Skip("collision between two random codes; re-run")
	}

	// The earlier code is dead once overwritten.
	_, err = svc.Authenticate(context.Background(), user.Email, first)
	require.ErrorIs(t, err, ErrCodeInvalid)

	authed, err := svc.Authenticate(context.Background(), user.Email, second)
	require.NoError(t, err)
	require.Equal(t, user.ID, authed.ID)
}

func TestConfirmRegistrationConsumesCode(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}

	svc, err := NewVerificationService(db, &mockMailer{}, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, false)
	code, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	confirmed, err := svc.ConfirmRegistration(context.Background(), user.Email, code)
	require.NoError(t, err)
	require.True(t, confirmed.Verified)
	require.Nil(t, confirmed.VerificationCode)
	require.Nil(t, confirmed.VerificationCodeExpiry)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.True(t, stored.Verified)
	require.Nil(t, stored.VerificationCode)
	require.Nil(t, stored.VerificationCodeExpiry)

	// The code was cleared, so a second confirmation attempt fails.
	_, err = svc.ConfirmRegistration(context.Background(), user.Email, code)
	require.ErrorIs(t, err, ErrCodeInvalid)
}

func TestConfirmRegistrationWrongCodeLeavesUserUntouched(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}

	svc, err := NewVerificationService(db, &mockMailer{}, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, false)
	code, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err = svc.ConfirmRegistration(context.Background(), user.Email, wrong)
	require.ErrorIs(t, err, ErrCodeInvalid)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.False(t, stored.Verified)
	require.NotNil(t, stored.VerificationCode)
	require.Equal(t, code, *stored.VerificationCode)
}

func TestConfirmRegistrationExpiredCode(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}

	svc, err := NewVerificationService(db, &mockMailer{}, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, false)
	code, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	clock.Advance(10*time.Minute + time.Second)

	_, err = svc.ConfirmRegistration(context.Background(), user.Email, code)
	require.ErrorIs(t, err, ErrCodeExpired)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.False(t, stored.Verified)
}

func TestConfirmRegistrationUnknownEmail(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	svc, err := NewVerificationService(db, &mockMailer{})
	require.NoError(t, err)

	_, err = svc.ConfirmRegistration(context.Background(), "ghost@example.com", "123456")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticateKeepsCodeReusable(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}

	svc, err := NewVerificationService(db, &mockMailer{}, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, true)
	code, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	// Login does not consume the code: it works repeatedly until expiry.
	for i := 0; i < 3; i++ {
		authed, err := svc.Authenticate(context.Background(), user.Email, code)
		require.NoError(t, err)
		require.Equal(t, user.ID, authed.ID)
	}

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NotNil(t, stored.VerificationCode)
	require.Equal(t, code, *stored.VerificationCode)

	clock.Advance(11 * time.Minute)
	_, err = svc.Authenticate(context.Background(), user.Email, code)
	require.ErrorIs(t, err, ErrCodeExpired)
}

func TestAuthenticateRejectsUnverified(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}

	svc, err := NewVerificationService(db, &mockMailer{}, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, false)
	code, err := svc.IssueCode(context.Background(), user)
	require.NoError(t, err)

	// Verified-state check comes before the code check, so even the right
	// code cannot log in an unverified account.
	_, err = svc.Authenticate(context.Background(), user.Email, code)
	require.ErrorIs(t, err, ErrNotVerified)
}

func TestIssueCodeEmailFailureKeepsCodeStored(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	clock := &fixedClock{t: time.Now()}
	mailer := &mockMailer{err: context.DeadlineExceeded}

	svc, err := NewVerificationService(db, mailer, WithClock(clock.Now))
	require.NoError(t, err)

	user := seedUser(t, svc, true)

	code, err := svc.IssueCode(context.Background(), user)
	require.ErrorIs(t, err, ErrEmailDelivery)
	require.NotEmpty(t, code)

	// The stored code is still valid despite the delivery failure.
	authed, authErr := svc.Authenticate(context.Background(), user.Email, code)
	require.NoError(t, authErr)
	require.Equal(t, user.ID, authed.ID)
}

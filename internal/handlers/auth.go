package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	iauth "github.com/calebsoh/menucard/internal/auth"
	"github.com/calebsoh/menucard/internal/services"
	appErrors "github.com/calebsoh/menucard/pkg/errors"
	"github.com/calebsoh/menucard/pkg/metrics"
	"github.com/calebsoh/menucard/pkg/response"
)

// AuthHandler manages the email verification-code flows: register,
// request-code, verify, login, and logout.
type AuthHandler struct {
	accounts     *services.AccountService
	verification *services.VerificationService
	sessions     *iauth.SessionService
}

func NewAuthHandler(accounts *services.AccountService, verification *services.VerificationService, sessions *iauth.SessionService) *AuthHandler {
	return &AuthHandler{accounts: accounts, verification: verification, sessions: sessions}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type codeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.accounts.Register(requestContext(c), req.Email, req.FullName, req.Country)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(c, appErrors.ErrEmailTaken)
			return
		}
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"userId":  user.ID,
		"message": "Verification code sent to your email",
	})
}

type requestCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// POST /api/auth/request-code
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req requestCodeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.accounts.RequestCode(requestContext(c), req.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Error(c, appErrors.ErrNotFound.WithMessage("No account found for this email"))
			return
		}
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.Message(c, http.StatusOK, "Verification code sent to your email")
}

// POST /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req codeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.verification.ConfirmRegistration(requestContext(c), req.Email, req.Code)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("verify", "failure").Inc()
		response.Error(c, verifyError(err))
		return
	}

	metrics.AuthAttempts.WithLabelValues("verify", "success").Inc()
	h.sessions.Issue(c, user.ID)
	response.JSON(c, http.StatusOK, gin.H{"userId": user.ID})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req codeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.verification.Authenticate(requestContext(c), req.Email, req.Code)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		// Unknown email and unverified account read identically so the
		// endpoint does not reveal which addresses are registered.
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrNotVerified) {
			response.Error(c, appErrors.ErrUnauthorized.WithMessage("Account not found or not verified"))
			return
		}
		response.Error(c, verifyError(err))
		return
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	h.sessions.Issue(c, user.ID)
	response.JSON(c, http.StatusOK, gin.H{"userId": user.ID})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	response.Message(c, http.StatusOK, "Logged out")
}

// verifyError maps code validation failures onto client-facing errors.
func verifyError(err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return appErrors.ErrNotFound.WithMessage("No account found for this email")
	case errors.Is(err, services.ErrCodeInvalid):
		return appErrors.NewBadRequest("Invalid verification code")
	case errors.Is(err, services.ErrCodeExpired):
		return appErrors.NewBadRequest("Verification code has expired")
	default:
		return appErrors.ErrInternalServer.WithInternal(err)
	}
}

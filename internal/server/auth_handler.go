package server

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-nest/internal/server/middleware"
	"github.com/jonathan/resume-nest/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   newValidator(),
		logger:      logger,
	}
}

// Signup handles user registration requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, h.logger, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "user registered", slog.String("user_id", user.ID.String()))
	h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		errorResponse(w, h.logger, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.respondWithToken(w, r, http.StatusOK, user)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.userService.Me(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	jsonResponse(w, h.logger, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to generate token", slog.String("error", err.Error()))
		errorResponse(w, h.logger, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, h.logger, status, types.AuthResponse{
		Token: token,
		User:  user,
	})
}

package handler

import (
	"encoding/json"
	"errors"
	"fastauth/internal/core"
	"fastauth/internal/http/handler/middleware"
	"fastauth/internal/http/payload"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var (
	Hello           = "GET /{$}"
	Register        = "POST /register"
	Login           = "POST /login"
	UserProfile     = "GET /user-profile"
	UpdateProfile   = "PUT /users"
	DeleteAccount   = "DELETE /users"
	RecoverPassword = "POST /recover-password"
	ResetPassword   = "POST /reset-password"
)

var errMissingToken = errors.New("authorization header with a bearer token is required")

type AuthHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
}

func NewAuthHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService) *AuthHandler {
	return &AuthHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             authService,
	}
}

// Routes registers every endpoint on the mux.
func (h *AuthHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc(Hello, h.HandleHello)
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(UserProfile, h.HandleProfile)
	mux.HandleFunc(UpdateProfile, h.HandleUpdateProfile)
	mux.HandleFunc(DeleteAccount, h.HandleDeleteAccount)
	mux.HandleFunc(RecoverPassword, h.HandleRecoverPassword)
	mux.HandleFunc(ResetPassword, h.HandleResetPassword)
}

func (h *AuthHandler) HandleHello(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	h.respond(w, Response{Message: "Hello World"}, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not register", err, Register, requestId)
		return
	}

	err := h.auth.Register(r.Context(), payload.ToMessage())
	if err != nil {
		h.fail(w, "Registration failed", err, Register, requestId)
		return
	}

	h.logs.Infow("user registered",
		"handler", Register,
		"request_id", requestId)

	h.respond(w, Response{Message: "User registered successfully"}, http.StatusCreated, requestId)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not authenticate", err, Login, requestId)
		return
	}

	token, err := h.auth.Login(r.Context(), payload.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Login, requestId)
		return
	}

	h.respond(w, LoginResponse{
		Message:         "Login successful",
		Token:           token,
		IsAuthenticated: true,
	}, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, err := bearerToken(r)
	if err != nil {
		h.fail(w, "Authentication failed", err, UserProfile, requestId)
		return
	}

	user, err := h.auth.Profile(r.Context(), token)
	if err != nil {
		h.fail(w, "Could not retrieve profile", err, UserProfile, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, err := bearerToken(r)
	if err != nil {
		h.fail(w, "Authentication failed", err, UpdateProfile, requestId)
		return
	}

	var payload payload.UpdateRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not update profile", err, UpdateProfile, requestId)
		return
	}

	newToken, err := h.auth.UpdateProfile(r.Context(), token, payload.ToMessage())
	if err != nil {
		h.fail(w, "Could not update profile", err, UpdateProfile, requestId)
		return
	}

	h.respond(w, TokenResponse{
		Message: "Profile updated successfully",
		Token:   newToken,
	}, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, err := bearerToken(r)
	if err != nil {
		h.fail(w, "Authentication failed", err, DeleteAccount, requestId)
		return
	}

	if err := h.auth.DeleteAccount(r.Context(), token); err != nil {
		h.fail(w, "Could not delete account", err, DeleteAccount, requestId)
		return
	}

	h.respond(w, Response{Message: "Account deleted successfully"}, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleRecoverPassword(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.RecoverRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not recover password", err, RecoverPassword, requestId)
		return
	}

	if err := h.auth.RecoverPassword(r.Context(), payload.Email); err != nil {
		h.fail(w, "Could not recover password", err, RecoverPassword, requestId)
		return
	}

	h.respond(w, SuccessResponse{
		Success: true,
		Message: "If the email is registered, a reset link is on its way",
	}, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.ResetRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not reset password", err, ResetPassword, requestId)
		return
	}

	if err := h.auth.ResetPassword(r.Context(), payload.ToMessage()); err != nil {
		h.fail(w, "Could not reset password", err, ResetPassword, requestId)
		return
	}

	h.respond(w, SuccessResponse{
		Success: true,
		Message: "Password updated successfully",
	}, http.StatusOK, requestId)
}

func (h *AuthHandler) badRequest(w http.ResponseWriter, message string, err error, handlerName string, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

// fail maps a service error to its status code. Unexpected errors are logged and hidden from the caller.
func (h *AuthHandler) fail(w http.ResponseWriter, message string, err error, handlerName string, requestId string) {
	resp := Response{
		Message: message,
	}

	var httpCode int
	switch {
	case errors.Is(err, errMissingToken):
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
	case errors.Is(err, core.ErrInvalidToken):
		httpCode = http.StatusUnauthorized
		resp.Error = core.ErrInvalidToken.Error()
	case errors.Is(err, core.ErrIncorrectPassword):
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
	case errors.Is(err, core.ErrUserNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrEmailTaken):
		httpCode = http.StatusConflict
		resp.Error = err.Error()
	case errors.Is(err, core.ErrPasswordTooLong):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		httpCode = http.StatusInternalServerError
		resp.Message = oopsErr
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", httpCode,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *AuthHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errMissingToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

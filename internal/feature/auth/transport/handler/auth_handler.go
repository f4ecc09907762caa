// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime/types"

	"wellbeing_backend/internal/api"
	"wellbeing_backend/internal/feature/auth/transport/http/dto"
	"wellbeing_backend/internal/feature/auth/usecase"
	"wellbeing_backend/internal/platform/metrics"
)

const (
	msgInvalidBody         = "Invalid request body."
	msgCredentialsRequired = "Email and password are required."
	msgPasswordTooLong     = "Password must be at most 72 bytes."
	msgAccountExists       = "An account with this email already exists."
	msgSignupFailed        = "Failed to create account."
	msgInvalidCredentials  = "Invalid login credentials."
	msgLoginFailed         = "Login request failed."
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し、永続化されたユーザーを返します。
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.AuthResult, error)
	// Login はユーザーを認証し、成功時にユーザーを返します。
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupRequestにバインド
// - 必須項目の欠落時は400を返却
// - JSONやメール形式が不正な場合は400 "Invalid request body." を返却
// - メール重複時は409を返却
// - ストレージ障害時は500を返却（詳細は公開しない）
// - 成功時は201で {user} を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: bindErrorMessage(err, req.Email)})
		return
	}

	in := usecase.SignupInput{
		Name:     req.Name,
		Email:    string(req.Email),
		Password: req.Password,
	}
	if req.EmailTips != nil {
		in.EmailTips = *req.EmailTips
	}

	res, err := h.auth.Signup(c.Request.Context(), in)
	if err != nil {
		status, msg := signupError(err)
		if status == http.StatusInternalServerError {
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		} else {
			slog.Warn("signup rejected", "error", err, "remote_addr", c.ClientIP())
		}
		c.JSON(status, api.ErrorResponse{Message: msg})
		return
	}

	slog.Info("user signup successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	metrics.RecordEvent(metrics.EventSignup)
	c.JSON(http.StatusCreated, dto.NewUserResponse(res))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginRequestにバインド
// - 必須項目の欠落時は400を返却
// - 認証失敗時は401を返却（メールとパスワードのどちらが誤りかは区別しない）
// - 認証成功時は200で {user} を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: bindErrorMessage(err, req.Email)})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgCredentialsRequired})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msgInvalidCredentials})
		default:
			slog.Error("login request failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgLoginFailed})
		}
		return
	}

	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	metrics.RecordEvent(metrics.EventLogin)
	c.JSON(http.StatusOK, dto.NewUserResponse(res))
}

// signupError はサインアップのエラーをHTTPステータスとメッセージに変換します。
func signupError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return http.StatusBadRequest, msgCredentialsRequired
	case errors.Is(err, usecase.ErrPasswordTooLong):
		return http.StatusBadRequest, msgPasswordTooLong
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return http.StatusConflict, msgAccountExists
	default:
		return http.StatusInternalServerError, msgSignupFailed
	}
}

// bindErrorMessage はバインド失敗を応答メッセージに変換します。
// 必須項目の欠落（空のメールを含む）と、形式が不正なボディを区別します。
func bindErrorMessage(err error, email types.Email) string {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return msgCredentialsRequired
	case errors.Is(err, types.ErrValidationEmail) && email == "":
		return msgCredentialsRequired
	default:
		return msgInvalidBody
	}
}

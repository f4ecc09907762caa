// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wellbeing_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong はbcryptが扱える長さ（72バイト）を超えるパスワードに対して返されます。
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// maxPasswordBytes はbcryptが受け付けるパスワードの最大バイト数です。
const maxPasswordBytes = 72

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenGenerator はアクセストークン生成のインターフェースを定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// SignupInput はサインアップに必要な入力値です。
type SignupInput struct {
	Name      *string
	Email     string
	Password  string
	EmailTips bool
}

// AuthResult はサインアップ・ログイン成功時の結果です。
// Token はトークン生成器が設定されていない場合は空文字です。
type AuthResult struct {
	User  *entity.User
	Token string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// tokens がnilの場合、トークンは発行されません。
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、永続化されたユーザーを返します。
// 事前のメールアドレス検索は高速パスであり、重複の最終判定はストレージのユニーク制約が行います。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	existing, err := u.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrEmailAlreadyExists
	case err != nil && !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashed),
		EmailTips: in.EmailTips,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &AuthResult{User: user, Token: u.issueToken(user)}, nil
}

// Login はユーザーを認証し、成功時に永続化されたユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return &AuthResult{User: user, Token: u.issueToken(user)}, nil
}

// issueToken はトークンを発行します。
// ユーザーの書き込みは既に完了しているため、生成失敗はリクエストを失敗させずに記録のみ行います。
func (u *authUsecase) issueToken(user *entity.User) string {
	if u.tokens == nil {
		return ""
	}
	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.Warn("token generation failed", "error", err, "user_id", user.ID)
		return ""
	}
	return token
}

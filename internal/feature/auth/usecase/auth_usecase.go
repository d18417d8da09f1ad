package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"dividend_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength はパスワードの最低文字数です。
const minPasswordLength = 8

// dummyHash はユーザーが存在しない場合の比較用です。タイミング攻撃を防ぐため常にbcrypt比較を1回行います。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーの永続化層を抽象化します。
type UserRepository interface {
	// Create は新しいユーザーを保存します。メールアドレスが重複する場合は ErrEmailAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail は一致するユーザーがいない場合 ErrUserNotFound を返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID は一致するユーザーがいない場合 ErrUserNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースです。
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	hashCost     int
}

// NewAuthUsecase wires the auth use cases.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.Create(ctx, &entity.User{Email: normalizeEmail(email), Password: string(hashed)})
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

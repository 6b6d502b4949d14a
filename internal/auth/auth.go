package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetAdminByID(id int64) (*AdminUser, error)
	HashPassword(password string) (string, error)
}

type RepositoryAPI interface {
	GetByEmail(email string) (*AdminUser, error)
	GetByID(id int64) (*AdminUser, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	GenerateRefreshToken(userID int64, email string) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

// AdminUser is an account allowed to use the admin surface. The public site
// has no user accounts; every authenticated caller is an admin.
type AdminUser struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ctxKey string

const contextUserKey ctxKey = "adminUser"

func ContextWithUser(ctx context.Context, u *AdminUser) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}

func UserFromContext(ctx context.Context) (*AdminUser, bool) {
	u, ok := ctx.Value(contextUserKey).(*AdminUser)
	return u, ok
}

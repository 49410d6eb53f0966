// Package auth 提供管理后台的口令登录与令牌校验
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashwinyue/toolhub/internal/config"
)

const adminSubject = "admin"

var (
	// ErrLoginDisabled 未配置登录口令
	ErrLoginDisabled = errors.New("admin login is not configured")
	// ErrInvalidCredentials 口令错误
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrInvalidToken 令牌无效
	ErrInvalidToken = errors.New("invalid or expired token")
)

// RevocationStore 已注销令牌的存储
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Service 认证服务
// 静态令牌（admin.token）既可以直接作为 Bearer 使用，也是签发 JWT 的密钥
type Service struct {
	token        string
	password     string
	passwordHash string
	ttl          time.Duration
	revocations  RevocationStore
	now          func() time.Time
}

// NewService 创建认证服务
func NewService(cfg config.AdminConfig, revocations RevocationStore) *Service {
	return &Service{
		token:        cfg.Token,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
		ttl:          cfg.TokenTTLDuration(),
		revocations:  revocations,
		now:          time.Now,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login 校验口令并签发令牌
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	if s.token == "" || (s.password == "" && s.passwordHash == "") {
		return nil, ErrLoginDisabled
	}
	if !s.checkPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken()
}

func (s *Service) checkPassword(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

func (s *Service) issueToken() (*LoginResponse, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.token))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateToken 校验 Bearer 令牌
// 接受与配置完全一致的静态令牌，或由静态令牌签名、未过期且未注销的 JWT
func (s *Service) ValidateToken(ctx context.Context, bearer string) error {
	if s.token == "" || bearer == "" {
		return ErrInvalidToken
	}
	if s.isStaticToken(bearer) {
		return nil
	}

	claims, err := s.parse(bearer)
	if err != nil {
		return err
	}
	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		// 无法确认时按无效处理
		if err != nil || revoked {
			return ErrInvalidToken
		}
	}
	return nil
}

// Logout 注销登录令牌，静态令牌无法注销，直接忽略
func (s *Service) Logout(ctx context.Context, bearer string) error {
	if s.token == "" || bearer == "" {
		return ErrInvalidToken
	}
	if s.isStaticToken(bearer) {
		return nil
	}

	claims, err := s.parse(bearer)
	if err != nil {
		return err
	}
	if s.revocations == nil {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *Service) isStaticToken(bearer string) bool {
	return subtle.ConstantTimeCompare([]byte(s.token), []byte(bearer)) == 1
}

func (s *Service) parse(bearer string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(bearer, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.token), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithSubject(adminSubject), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword 生成 bcrypt 口令哈希，用于填写 admin.passwordHash
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

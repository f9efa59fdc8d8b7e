// ============================================================================
// JWT Token 工具
// ============================================================================

package jwt

import (
	"context"
	"errors"
	"time"

	"sportmeet/common/cache"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidConfig = errors.New("invalid auth config")
	ErrInvalidToken  = errors.New("invalid token")
)

// AuthConfig JWT 签发配置
type AuthConfig struct {
	Secret string
	Expire int64 // 有效期（秒）
}

// Claims 业务载荷
// userId 会被 go-zero rest.WithJwt 注入请求上下文
type Claims struct {
	UserId int64  `json:"userId"`
	JwtId  string `json:"jwtId"`
	jwt.RegisteredClaims
}

// TokenResult 签发结果
type TokenResult struct {
	Token    string
	ExpireAt int64
}

// GenerateToken 签发访问 Token
func GenerateToken(userId int64, cfg AuthConfig, jwtId string) (TokenResult, error) {
	return generateToken(userId, cfg, time.Now(), jwtId)
}

func generateToken(userId int64, cfg AuthConfig, now time.Time, jwtId string) (TokenResult, error) {
	if cfg.Secret == "" || cfg.Expire <= 0 {
		return TokenResult{}, ErrInvalidConfig
	}

	expireAt := now.Add(time.Duration(cfg.Expire) * time.Second)
	claims := Claims{
		UserId: userId,
		JwtId:  jwtId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expireAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return TokenResult{}, err
	}

	return TokenResult{
		Token:    signed,
		ExpireAt: claims.ExpiresAt.Unix(),
	}, nil
}

// ParseToken 解析并校验 Token
func ParseToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// BlacklistToken 将 Token 加入黑名单（登出）
// 黑名单 Key 按 Token 剩余有效期过期，自动清理
func BlacklistToken(ctx context.Context, rdb *redis.Client, tokenStr string, secret string) error {
	claims, err := ParseToken(tokenStr, secret)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, cache.TokenBlacklistKey(claims.JwtId), 1, ttl).Err()
}

// CheckTokenBlacklist 检查 Token 是否在黑名单中
func CheckTokenBlacklist(ctx context.Context, rdb *redis.Client, tokenStr string, secret string) (bool, error) {
	claims, err := ParseToken(tokenStr, secret)
	if err != nil {
		return false, err
	}

	exists, err := rdb.Exists(ctx, cache.TokenBlacklistKey(claims.JwtId)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

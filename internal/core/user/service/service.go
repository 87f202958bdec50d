package userapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yatube/internal/config"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "yatube"

// TokenTTL is how long a login session lasts.
const TokenTTL = 24 * time.Hour

// UserService manages accounts and session tokens.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// LoginUser checks the password and issues a session token.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, userEntity.ErrNotFound) {
			return nil, err
		}
		config.Logger.Info("Login for unknown user", zap.String("username", username))
		return nil, userEntity.ErrInvalidLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		config.Logger.Info("Invalid password", zap.String("username", username))
		return nil, userEntity.ErrInvalidLogin
	}

	return s.IssueToken(user)
}

// IssueToken signs a session token for user.
func (s *UserService) IssueToken(user *userEntity.User) (*userPort.LoginResponse, error) {
	now := time.Now()
	expiresAt := now.Add(TokenTTL).Unix()
	claims := &tokenClaims{
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ParseToken validates a session token and returns who it belongs to.
func (s *UserService) ParseToken(raw string) (*userPort.Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}

	return &userPort.Claims{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}

// RegisterUser creates an account with a bcrypt password hash.
func (s *UserService) RegisterUser(ctx context.Context, name, family, username, email, password string) (*userEntity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, errors.New("username is required")
	}

	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil && existing != nil:
		return nil, userEntity.ErrUsernameTaken
	case err != nil && !errors.Is(err, userEntity.ErrNotFound):
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		Name:     strings.TrimSpace(name),
		Family:   strings.TrimSpace(family),
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	u, err := s.UserRepository.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	config.Logger.Info("User registered", zap.String("username", u.Username), zap.String("userID", u.ID.String()))
	return u, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*userEntity.User, error) {
	return s.UserRepository.FindByUsername(ctx, username)
}

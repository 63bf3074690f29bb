package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

type RegisterInput struct {
	Name              string
	Email             string
	Password          string
	ConfirmPassword   string
	Year              string
	Major             string
	Skills            string
	Interests         string
	XFactor           string
	CanTeach          string
	WantsToLearn      string
	AccommodationNeed string
}

type AuthService interface {
	RegisterUser(ctx context.Context, input RegisterInput) (*types.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	log           *logger.Logger
	userStore     csvstore.UserStore
	credStore     csvstore.CredentialStore
	avatarService AvatarService
	jwtSecretKey  string
	accessTTL     time.Duration
}

func NewAuthService(
	log *logger.Logger,
	userStore csvstore.UserStore,
	credStore csvstore.CredentialStore,
	avatarService AvatarService,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		log:           log.With("service", "AuthService"),
		userStore:     userStore,
		credStore:     credStore,
		avatarService: avatarService,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, input RegisterInput) (*types.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := as.validateRegistration(ctx, input); err != nil {
		return nil, err
	}

	user := types.User{
		Name:              input.Name,
		Email:             input.Email,
		Year:              strings.TrimSpace(input.Year),
		Major:             strings.TrimSpace(input.Major),
		Skills:            strings.TrimSpace(input.Skills),
		Interests:         strings.TrimSpace(input.Interests),
		XFactor:           strings.TrimSpace(input.XFactor),
		CanTeach:          strings.TrimSpace(input.CanTeach),
		WantsToLearn:      strings.TrimSpace(input.WantsToLearn),
		AccommodationNeed: strings.TrimSpace(input.AccommodationNeed),
	}
	if user.CanTeach == "" {
		user.CanTeach = types.CanTeachNone
	}
	if user.WantsToLearn == "" {
		user.WantsToLearn = types.WantsToLearnUnset
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("Failed to hash password: %w", err)
	}

	id, err := as.userStore.Append(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("Failed to store user: %w", err)
	}
	user.ID = id

	if err := as.credStore.Append(ctx, types.Credential{Email: user.Email, PasswordHash: string(hashed)}); err != nil {
		return nil, fmt.Errorf("Failed to store credentials: %w", err)
	}

	if as.avatarService != nil {
		if err := as.avatarService.CreateUserAvatar(ctx, user); err != nil {
			as.log.Warn("Could not generate user avatar (ignored)", "user_id", user.ID, "error", err)
		}
	}

	as.log.Info("User registered", "user_id", user.ID)
	return &user, nil
}

func (as *authService) validateRegistration(ctx context.Context, input RegisterInput) error {
	if input.Name == "" {
		return fmt.Errorf("A name is required to sign up")
	}
	if input.Email == "" {
		return fmt.Errorf("An email is required to sign up")
	}
	if input.Password == "" {
		return fmt.Errorf("A password is required to sign up")
	}
	if input.Password != input.ConfirmPassword {
		return fmt.Errorf("Passwords do not match")
	}
	exists, err := as.credStore.EmailExists(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("Failed to check email: %w", err)
	}
	if exists {
		return fmt.Errorf("Email is already in use")
	}
	return nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("Email is required to login")
	}
	if password == "" {
		return "", fmt.Errorf("Password is required to login")
	}

	ok, err := as.credStore.Verify(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("Failed to verify credentials: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("Invalid email or password")
	}

	user, err := as.userStore.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("Failed to load user: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("Invalid email or password")
	}

	token, err := as.generateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("Failed to generate access token: %w", err)
	}
	as.log.Info("User logged in", "user_id", user.ID)
	return token, nil
}

func (as *authService) generateAccessToken(userID int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(userID),
		"sid": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("Invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("Invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.Atoi(sub)
	if err != nil || userID <= 0 {
		return ctx, fmt.Errorf("Invalid subject claim")
	}
	sid, _ := claims["sid"].(string)
	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return ctx, fmt.Errorf("Invalid session claim")
	}

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:    userID,
		SessionID: sessionID,
	}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sparetime/domain"
	redisrepo "sparetime/internal/repository/redis"
	"sparetime/pkg/logger"
	"sparetime/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateInterests(ctx context.Context, id uint, interests domain.StringList) error
}

// ProfileRepository creates the empty recommendation profile at
// registration time.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
}

// SessionRepository is the redis-backed token store.
type SessionRepository interface {
	StoreToken(ctx context.Context, userID, token string, data redisrepo.SessionData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	sessionRepo SessionRepository
	validate    *validator.Validate
}

func NewUserService(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	sessionRepo SessionRepository,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		validate:    validate,
	}
}

const RoleMember = "member"

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	interests := user.Interests
	if interests == nil {
		interests = domain.StringList{}
	}

	newUser := domain.User{
		FullName:  user.FullName,
		Email:     user.Email,
		Password:  passwordHash,
		Role:      RoleMember,
		Interests: interests,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user")
		return domain.User{}, err
	}

	// Every user starts with an empty recommendation profile.
	profile := domain.NewUserProfile(newUser.ID)
	if err := s.profileRepo.Create(ctx, &profile); err != nil {
		logger.Error("Failed to create user profile", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, err
	}

	ok := utils.CheckPassword(password, user.Password)
	if !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("incorrect password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	now := time.Now()
	session := redisrepo.SessionData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(utils.TokenTTL),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := s.sessionRepo.StoreToken(ctx, userIDStr, token, session, utils.TokenTTL); err != nil {
		logger.Error("Failed to store session", err)
		return "", domain.User{}, errors.New("failed to store session")
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	if err := s.sessionRepo.DeleteToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to delete session", err)
		return err
	}

	return nil
}

// ValidateTokenFromRedis lets the auth middleware reject tokens that
// were logged out before their JWT expiry.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return s.sessionRepo.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

// UpdateInterests replaces the user's declared interest topics. The
// learned rating profile is untouched; only the interest scorer sees
// this list.
func (s *userService) UpdateInterests(ctx context.Context, id uint, interests domain.StringList) (domain.User, error) {
	if interests == nil {
		interests = domain.StringList{}
	}

	if err := s.userRepo.UpdateInterests(ctx, id, interests); err != nil {
		logger.Error("Failed to update interests", err)
		return domain.User{}, err
	}

	return s.GetUserByID(ctx, id)
}

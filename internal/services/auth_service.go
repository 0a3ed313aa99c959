package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripmigo/internal/models/db_models"
	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
	"tripmigo/internal/repositories"
	"tripmigo/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (response_models.UserResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (response_models.UserResponse, error)
	Logout(ctx context.Context, sessionID string) error
	VerifyToken(ctx context.Context, token string) response_models.TokenVerificationResponse
}

type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	signer      *utils.TokenSigner
	logger      *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	signer *utils.TokenSigner,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		signer:      signer,
		logger:      logger.Named("auth"),
	}
}

func (a *AuthService) Register(ctx context.Context, req request_models.RegisterRequest) (response_models.UserResponse, error) {
	user := &db_models.User{
		Email: req.Email,
		Profile: db_models.UserProfile{
			Name:     req.Name,
			Initials: db_models.Initials(req.Name),
			Location: req.Location,
		},
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return response_models.UserResponse{}, err
		}
		user.PasswordHash = hash
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return response_models.UserResponse{}, err
	}

	a.logger.Info("user registered", zap.String("user_id", user.ID))
	return toUserResponse(user), nil
}

// Login accepts an email alone for accounts registered without a password.
func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return response_models.LoginResponse{}, err
	}
	if user == nil {
		return response_models.LoginResponse{}, utils.ErrUserNotFound
	}

	if user.PasswordHash != "" {
		if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
			return response_models.LoginResponse{}, utils.ErrUnauthorized
		}
	}

	token, err := a.signer.CreateToken(user.ID, user.Email)
	if err != nil {
		return response_models.LoginResponse{}, err
	}

	now := utils.NowUTC()
	user.LastLogin = &now
	if err := a.userRepo.Update(ctx, user); err != nil {
		return response_models.LoginResponse{}, err
	}

	session := &db_models.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		AccessToken: token,
		ExpiresAt:   now.Add(a.signer.TTL()),
	}
	if err := a.sessionRepo.Save(ctx, session); err != nil {
		return response_models.LoginResponse{}, err
	}

	a.logger.Info("user logged in", zap.String("user_id", user.ID), zap.Duration("took", time.Since(startTime)))

	return response_models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
		SessionID:   session.ID,
	}, nil
}

func (a *AuthService) GetProfile(ctx context.Context, userID string) (response_models.ProfileResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return response_models.ProfileResponse{}, err
	}

	resp := response_models.ProfileResponse{
		User:      toUserResponse(user),
		CreatedAt: utils.FormatRFC3339(user.CreatedAt),
	}
	if user.LastLogin != nil {
		resp.LastLogin = utils.FormatRFC3339(*user.LastLogin)
	}
	return resp, nil
}

// UpdateProfile changes only the fields that are set. A new name recomputes
// the initials.
func (a *AuthService) UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return response_models.UserResponse{}, err
	}

	if req.Name != "" {
		user.Profile.Name = req.Name
		user.Profile.Initials = db_models.Initials(req.Name)
	}
	if req.Location != "" {
		user.Profile.Location = req.Location
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return response_models.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// Logout is idempotent: unknown sessions are not an error.
func (a *AuthService) Logout(ctx context.Context, sessionID string) error {
	return a.sessionRepo.Delete(ctx, sessionID)
}

func (a *AuthService) VerifyToken(ctx context.Context, token string) response_models.TokenVerificationResponse {
	claims, err := a.signer.ValidateToken(token)
	if err != nil {
		if utils.IsTokenExpired(err) {
			return response_models.TokenVerificationResponse{Valid: false, Error: "Token expired"}
		}
		return response_models.TokenVerificationResponse{Valid: false, Error: "Invalid token"}
	}

	user, err := a.userRepo.FindById(ctx, claims.Subject)
	if err != nil || user == nil {
		return response_models.TokenVerificationResponse{Valid: false}
	}

	resp := toUserResponse(user)
	return response_models.TokenVerificationResponse{Valid: true, User: &resp}
}

func (a *AuthService) findUser(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID: user.ID,
		Profile: response_models.UserProfile{
			Name:     user.Profile.Name,
			Avatar:   user.Profile.Avatar,
			Initials: user.Profile.Initials,
			Location: user.Profile.Location,
		},
	}
}

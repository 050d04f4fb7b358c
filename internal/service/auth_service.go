package service

import (
	"errors"
	"time"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/pkg/jwt"
	"go-stockpilot/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthResult bundles the tokens and user returned at login/signup/refresh.
type AuthResult struct {
	Token        string             `json:"token"`
	RefreshToken string             `json:"refresh_token"`
	User         model.UserResponse `json:"user"`
}

type AuthService interface {
	Signup(req *model.SignupRequest) (*AuthResult, error)
	Login(req *model.LoginRequest) (*AuthResult, error)
	Refresh(refreshToken string) (*AuthResult, error)
	CurrentUser(id uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Signup(req *model.SignupRequest) (*AuthResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	count, err := s.userRepo.CountByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DuplicateValue("A user with this email already exists")
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req *model.LoginRequest) (*AuthResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("User account is inactive")
	}
	if !user.CheckPassword(req.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("User account is inactive")
	}

	return s.issueTokens(user)
}

func (s *authService) CurrentUser(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.UserNotFound()
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) issueTokens(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user.ToResponse(),
	}, nil
}

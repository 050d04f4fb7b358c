package service

import (
	"errors"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService covers the admin-only user management surface.
type UserService interface {
	List() ([]model.UserResponse, error)
	Create(req *model.SignupRequest) (*model.UserResponse, error)
	Update(id uuid.UUID, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Delete(actorID, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List() ([]model.UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

func (s *userService) Create(req *model.SignupRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	count, err := s.repo.CountByEmail(req.Email)
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
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	response := user.ToResponse()
	return &response, nil
}

func (s *userService) Update(id uuid.UUID, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.UserNotFound()
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		count, err := s.repo.CountByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.DuplicateValue("A user with this email already exists")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	response := user.ToResponse()
	return &response, nil
}

func (s *userService) Delete(actorID, id uuid.UUID) error {
	if actorID == id {
		return apperr.BadRequest("INVALID_INPUT", "You cannot delete your own account")
	}
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.UserNotFound()
		}
		return err
	}
	return s.repo.Delete(id)
}

package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/auth"
	"github.com/aleksej-tulko/drf-foodgram/internal/media"
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

var (
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrUsernameTaken = errors.New("a user with this username already exists")
	ErrWrongPassword = errors.New("incorrect current password")
	ErrSamePassword  = errors.New("the new password must not be the same as the old one")
	ErrNoAvatar      = errors.New("user does not have avatar")
)

type UserService struct {
	repo  repository.UserRepository
	store *media.Store
}

func NewUserService(repo repository.UserRepository, store *media.Store) *UserService {
	return &UserService{repo: repo, store: store}
}

func (s *UserService) Register(dto RegisterUserDTO) (*models.User, error) {
	if err := validateUsername(dto.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(dto.Email); err != nil {
		return nil, err
	}
	if dto.FirstName == "" || dto.LastName == "" {
		return nil, fmt.Errorf("first_name and last_name are required")
	}

	if _, err := s.repo.FindByEmail(dto.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(dto.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(dto.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(&models.User{
		Email:     dto.Email,
		Username:  dto.Username,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Password:  hash,
	})
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) ListUsers(offset, limit int) ([]*models.User, int64, error) {
	count, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}
	users, err := s.repo.FindPage(offset, limit)
	return users, count, err
}

func (s *UserService) ChangePassword(user *models.User, dto ChangePasswordDTO) error {
	if !auth.CheckPassword(user.Password, dto.CurrentPassword) {
		return ErrWrongPassword
	}
	if dto.NewPassword == dto.CurrentPassword {
		return ErrSamePassword
	}

	hash, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.repo.Update(user)
}

// SetAvatar stores the decoded image and replaces the previous file.
func (s *UserService) SetAvatar(user *models.User, data string) (string, error) {
	path, err := s.store.SaveBase64(data, "images/avatars")
	if err != nil {
		return "", err
	}

	old := user.Avatar
	user.Avatar = path
	if err := s.repo.Update(user); err != nil {
		return "", err
	}
	if old != "" {
		_ = s.store.Remove(old)
	}
	return path, nil
}

func (s *UserService) DeleteAvatar(user *models.User) error {
	if user.Avatar == "" {
		return ErrNoAvatar
	}
	path := user.Avatar
	user.Avatar = ""
	if err := s.repo.Update(user); err != nil {
		return err
	}
	return s.store.Remove(path)
}

// Package users — service.go содержит бизнес-логику аккаунтов:
// регистрация с bcrypt-хэшированием, вход, профиль.
package users

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"jackpothub/internal/common"
	"jackpothub/internal/config"
)

type Service struct {
	repo *Repository
	cfg  *config.Config
}

func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Register создаёт аккаунт. Дубликаты email/имени отклоняются
// до обращения к INSERT, чтобы вернуть клиенту точную причину.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	emailTaken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, err
	}
	if emailTaken {
		return 0, common.ErrEmailTaken
	}

	nameTaken, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return 0, err
	}
	if nameTaken {
		return 0, common.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, req.Username, req.Email, string(hash), req.Image)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{"user_id": id, "username": req.Username}).Info("Аккаунт создан")
	return id, nil
}

// Login проверяет пару логин/пароль и возвращает аккаунт.
// Неизвестное имя и неверный пароль дают одну и ту же ошибку.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, common.ErrBadCredentials
	}
	return u, nil
}

// Profile возвращает аккаунт по ID.
func (s *Service) Profile(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile меняет имя/email/аватар.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error {
	return s.repo.UpdateProfile(ctx, userID, req.Username, req.Email, req.Image)
}

// List возвращает все аккаунты.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// File: services/user/auth.go
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "edspire/database/repository/user"
	"edspire/models"
	"edspire/utils"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates the account, issues the first token and records the
// server-side session. Role defaults to student.
func (s *DefaultUserService) RegisterUser(user models.User, password string) (*models.AuthResponse, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if user.Role != "tutor" {
		user.Role = "student"
	}

	if _, err := s.Repo.GetByEmail(user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.Repo.Create(&user); err != nil {
		return nil, err
	}

	return s.issueSession(&user)
}

// AuthenticateUser verifies credentials and opens a fresh session.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repo.GetByEmail(email)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// RevokeUserAuthToken clears the stored token hash and the Redis session.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return err
	}
	return utils.DeleteAuthSession(s.AuthCache, userID)
}

// issueSession signs a JWT, stores its hash on the record and caches the
// session. The client never holds authoritative role state; middleware always
// resolves it from here.
func (s *DefaultUserService) issueSession(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, utils.AuthSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(user.ID, tokenHash); err != nil {
		return nil, err
	}

	session := utils.AuthSession{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenHash: tokenHash,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAuthSession(s.AuthCache, user.ID, session, utils.AuthSessionTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Token:  token,
	}, nil
}

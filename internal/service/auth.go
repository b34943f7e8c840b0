package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrWrongPassword = errors.New("wrong password")

// AuthService guards the admin surface. There are no user accounts in
// this system; a single bcrypt-hashed credential from configuration is
// all the surrounding admin tooling provides.
type AuthService struct {
	passwordHash string
}

func NewAuthService(passwordHash string) *AuthService {
	return &AuthService{
		passwordHash: passwordHash,
	}
}

func (s *AuthService) Login(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}

	return nil
}

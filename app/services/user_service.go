package services

import (
	"errors"

	"ebook-share/app/models"
	"ebook-share/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost mirrors the work factor the accounts were originally hashed with.
const bcryptCost = 8

const minPasswordLen = 8

type UserService struct {
	users *repo.UserRepository
	books *repo.EbookRepository
}

func NewUserService(users *repo.UserRepository, books *repo.EbookRepository) *UserService {
	return &UserService{users: users, books: books}
}

// EnsureAdmin seeds the admin account on first startup.
func (s *UserService) EnsureAdmin(username, email, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, Email: email, PasswordHash: string(hash), Role: "admin"})
}

// Signup validates and creates an account. No token is issued here;
// login is a separate step.
func (s *UserService) Signup(username, email, password, passwordRepeat string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if password != passwordRepeat {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	count, err := s.users.CountByUsernameOrEmail(username, email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, Email: email, PasswordHash: string(hash), Role: "user"})
}

func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredential
	}
	return u, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListAll() ([]models.User, error) { return s.users.ListAll() }

// EditOwn mutates the caller's account. The current password is required
// as a second factor on top of the bearer token; nothing is touched when
// it does not match.
func (s *UserService) EditOwn(userID uint, oldPassword, newUsername, newEmail, newPassword string) error {
	u, err := s.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return ErrBadCredential
	}
	return s.applyEdit(userID, newUsername, newEmail, newPassword)
}

// AdminEdit mutates any account. Admin trust is delegated entirely to the
// token; no password re-confirmation.
func (s *UserService) AdminEdit(userID uint, newUsername, newEmail, newPassword string) error {
	if _, err := s.FindByID(userID); err != nil {
		return err
	}
	return s.applyEdit(userID, newUsername, newEmail, newPassword)
}

func (s *UserService) applyEdit(userID uint, newUsername, newEmail, newPassword string) error {
	fields := map[string]any{}
	if newUsername != "" {
		fields["username"] = newUsername
	}
	if newEmail != "" {
		fields["email"] = newEmail
	}
	if newPassword != "" {
		if len(newPassword) < minPasswordLen {
			return ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
		if err != nil {
			return err
		}
		fields["password_hash"] = string(hash)
	}
	if len(fields) == 0 {
		return ErrMissingFields
	}
	return s.users.UpdateFields(userID, fields)
}

// DeleteOwn removes the caller's account after re-checking the password.
// Owned books are deleted before the user row so the cascade is complete
// by the time the caller gets a confirmation.
func (s *UserService) DeleteOwn(userID uint, password string) error {
	u, err := s.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrBadCredential
	}
	return s.deleteCascade(userID)
}

func (s *UserService) AdminDelete(userID uint) error {
	if _, err := s.FindByID(userID); err != nil {
		return err
	}
	return s.deleteCascade(userID)
}

func (s *UserService) deleteCascade(userID uint) error {
	if err := s.books.DeleteByUploaderID(userID); err != nil {
		return err
	}
	return s.users.Delete(userID)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"medcost-api/internal"
	"medcost-api/internal/users"
)

type UserStore interface {
	FromEmail(ctx context.Context, email string) (*users.User, error)
	Create(ctx context.Context, u *users.User) error
}

type Service struct {
	Users UserStore
	Cost  int
}

func NewService(store UserStore) *Service {
	return &Service{Users: store, Cost: HashCost}
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Register struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r Register) validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", internal.ErrInvalidInput)
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", internal.ErrInvalidInput)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: email is required", internal.ErrInvalidInput)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", internal.ErrInvalidInput)
	}
	return nil
}

// Register stores a new user with a hashed password. Nothing is written when
// the email is already taken.
func (s *Service) Register(ctx context.Context, r Register) error {
	if err := r.validate(); err != nil {
		return err
	}

	_, err := s.Users.FromEmail(ctx, r.Email)
	switch {
	case err == nil:
		return internal.ErrDuplicateAccount
	case !errors.Is(err, users.ErrNotFound):
		return err
	}

	pwd, err := HashPassword(r.Password, s.cost())
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := users.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  pwd,
	}
	if err = s.Users.Create(ctx, &user); err != nil {
		return err
	}

	log.WithField("user", user.ID.Hex()).Info("registered user")
	return nil
}

// Authenticate returns the user matching the credentials. An unknown email
// and a wrong password both yield internal.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, l Login) (*users.User, error) {
	if l.Email == "" {
		return nil, internal.ErrInvalidCredentials
	}

	user, err := s.Users.FromEmail(ctx, l.Email)
	if errors.Is(err, users.ErrNotFound) {
		return nil, internal.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(l.Password, user.Password) {
		internal.ErrorFormat{Package: "internal.auth", Level: log.DebugLevel, Function: "auth.Authenticate", ObjectID: user.ID, Message: "password mismatch"}.Print()
		return nil, internal.ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) cost() int {
	if s.Cost == 0 {
		return HashCost
	}
	return s.Cost
}

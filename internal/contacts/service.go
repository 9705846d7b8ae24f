package contacts

import (
	"context"
	"fmt"
	"strings"

	"medcost-api/internal"
)

type Store interface {
	Create(ctx context.Context, c *Contact) error
	All(ctx context.Context) ([]Contact, error)
}

type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s Submission) validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: name is required", internal.ErrInvalidInput)
	case strings.TrimSpace(s.Email) == "":
		return fmt.Errorf("%w: email is required", internal.ErrInvalidInput)
	case strings.TrimSpace(s.Message) == "":
		return fmt.Errorf("%w: message is required", internal.ErrInvalidInput)
	}
	return nil
}

// Submit stores a new contact message. Email is stored as given; it is not
// checked for format or uniqueness.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Contact, error) {
	if err := sub.validate(); err != nil {
		return nil, err
	}

	c := &Contact{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	}
	if err := s.Store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every stored contact. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Contact, error) {
	all, err := s.Store.All(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []Contact{}
	}
	return all, nil
}

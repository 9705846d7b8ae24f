package contacts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"medcost-api/internal"
)

type memStore struct {
	items     []Contact
	CreateErr error
	AllErr    error
}

func (m *memStore) Create(_ context.Context, c *Contact) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	m.items = append(m.items, *c)
	return nil
}

func (m *memStore) All(context.Context) ([]Contact, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	return m.items, nil
}

func TestSubmitThenList(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	ctx := context.Background()

	subs := []Submission{
		{Name: "Ann", Email: "ann@x.com", Message: "hello"},
		{Name: "Bob", Email: "not-an-email", Message: "second"},
		{Name: "Ann", Email: "ann@x.com", Message: "hello again"},
	}
	for _, s := range subs {
		c, err := svc.Submit(ctx, s)
		require.NoError(t, err)
		assert.False(t, c.ID.IsZero())
		assert.False(t, c.CreatedAt.IsZero())
		assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(subs))
	for _, s := range subs {
		assert.True(t, containsSubmission(all, s), "missing %+v", s)
	}
}

func containsSubmission(all []Contact, s Submission) bool {
	for _, c := range all {
		if c.Name == s.Name && c.Email == s.Email && c.Message == s.Message {
			return true
		}
	}
	return false
}

func TestSubmit_MissingFields(t *testing.T) {
	cases := map[string]Submission{
		"name":    {Email: "a@x.com", Message: "m"},
		"email":   {Name: "n", Message: "m"},
		"message": {Name: "n", Email: "a@x.com", Message: "\t\n"},
	}
	for field, sub := range cases {
		t.Run(field, func(t *testing.T) {
			store := &memStore{}
			_, err := NewService(store).Submit(context.Background(), sub)
			require.ErrorIs(t, err, internal.ErrInvalidInput)
			assert.Contains(t, err.Error(), field)
			assert.Empty(t, store.items)
		})
	}
}

func TestSubmit_StorageError(t *testing.T) {
	store := &memStore{CreateErr: fmt.Errorf("%w: %w", internal.ErrStorage, errors.New("boom"))}
	_, err := NewService(store).Submit(context.Background(), Submission{Name: "n", Email: "e", Message: "m"})
	require.ErrorIs(t, err, internal.ErrStorage)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	all, err := NewService(&memStore{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestList_StorageError(t *testing.T) {
	store := &memStore{AllErr: fmt.Errorf("%w: %w", internal.ErrStorage, internal.ErrNotConnected)}
	_, err := NewService(store).List(context.Background())
	require.ErrorIs(t, err, internal.ErrNotConnected)
}

package contacts

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"medcost-api/internal"
)

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Repository struct {
	DB      *mongo.Database
	Timeout time.Duration
}

func NewRepository(db *mongo.Database, timeout time.Duration) *Repository {
	return &Repository{DB: db, Timeout: timeout}
}

// Create inserts c with a fresh ID and server-assigned timestamps.
func (r *Repository) Create(ctx context.Context, c *Contact) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt

	if _, err = coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("%w: %w", internal.ErrStorage, err)
	}
	return nil
}

// All returns every contact in the collection's natural order.
func (r *Repository) All(ctx context.Context) ([]Contact, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrStorage, err)
	}

	results := []Contact{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrStorage, err)
	}

	return results, nil
}

func (r *Repository) collection() (*mongo.Collection, error) {
	if r.DB == nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrStorage, internal.ErrNotConnected)
	}
	return r.DB.Collection(internal.ContactsCollection), nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.Timeout)
}

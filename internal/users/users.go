package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"medcost-api/internal"
)

var ErrNotFound = errors.New("no user found")

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"` // unique, used as the login name
	Password  string             `bson:"password" json:"-"`  // bcrypt hash
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Repository stores users in the users collection. A nil DB reports
// internal.ErrNotConnected on every call.
type Repository struct {
	DB      *mongo.Database
	Timeout time.Duration
}

func NewRepository(db *mongo.Database, timeout time.Duration) *Repository {
	return &Repository{DB: db, Timeout: timeout}
}

// Create inserts u, assigning its ID and timestamps. A unique index
// violation on email is reported as internal.ErrDuplicateAccount.
func (r *Repository) Create(ctx context.Context, u *User) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt

	_, err = coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", internal.ErrDuplicateAccount, err)
		}
		return fmt.Errorf("%w: %w", internal.ErrStorage, err)
	}

	log.Debugf("inserted user with the id %s", u.ID.Hex())

	return nil
}

// FromEmail returns the user with exactly this email, or ErrNotFound.
func (r *Repository) FromEmail(ctx context.Context, email string) (*User, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user User
	err = coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrStorage, err)
	}

	return &user, nil
}

func (r *Repository) collection() (*mongo.Collection, error) {
	if r.DB == nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrStorage, internal.ErrNotConnected)
	}
	return r.DB.Collection(internal.UsersCollection), nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.Timeout)
}

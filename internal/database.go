package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection    = "users"
	ContactsCollection = "contacts"
)

type DatabaseConnection struct {
	URI         string
	DB          string
	Timeout     time.Duration
	MongoDB     *mongo.Database
	MongoClient *mongo.Client
	Logger      *logrus.Logger
}

// Connect creates the client and pings the primary. The client is kept even
// when the ping fails so later operations can succeed once the server is
// reachable; the caller decides whether the returned error is fatal.
func (d *DatabaseConnection) Connect(ctx context.Context) error {
	var err error
	opts := options.Client().ApplyURI(d.URI)
	if d.Timeout > 0 {
		opts.SetServerSelectionTimeout(d.Timeout).SetConnectTimeout(d.Timeout)
	}

	d.MongoClient, err = mongo.Connect(ctx, opts)
	if err != nil {
		d.MongoClient = nil
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	d.MongoDB = d.MongoClient.Database(d.DB)

	if err = d.Ping(ctx); err != nil {
		return err
	}

	d.Logger.Infof("Successfully connected to database: %s", d.DB)
	return nil
}

func (d *DatabaseConnection) Ping(ctx context.Context) error {
	if d.MongoClient == nil {
		return fmt.Errorf("%w: %w", ErrStorage, ErrNotConnected)
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if err := d.MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// EnsureIndexes creates the unique email index that backs account
// uniqueness when two registrations race.
func (d *DatabaseConnection) EnsureIndexes(ctx context.Context) error {
	if d.MongoDB == nil {
		return fmt.Errorf("%w: %w", ErrStorage, ErrNotConnected)
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	_, err := d.MongoDB.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (d *DatabaseConnection) Disconnect(ctx context.Context) error {
	if d.MongoClient == nil {
		return nil
	}
	if err := d.MongoClient.Disconnect(ctx); err != nil {
		return err
	}
	d.Logger.Infof("Disconnected from database: %s", d.DB)
	return nil
}

func (d *DatabaseConnection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.Timeout)
}

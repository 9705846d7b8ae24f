package users

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"medcost-api/internal"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("from email found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + internal.UsersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "firstName", Value: "A"},
			{Key: "lastName", Value: "B"},
			{Key: "email", Value: "a@x.com"},
			{Key: "password", Value: "$2a$10$hash"},
		}))

		u, err := NewRepository(mt.DB, time.Second).FromEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, id, u.ID)
		assert.Equal(mt, "A", u.FirstName)
		assert.Equal(mt, "B", u.LastName)
		assert.Equal(mt, "$2a$10$hash", u.Password)
	})

	mt.Run("from email missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + internal.UsersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewRepository(mt.DB, time.Second).FromEmail(context.Background(), "ghost@x.com")
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("from email storage error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    1,
			Message: "internal error",
			Name:    "InternalError",
		}))

		_, err := NewRepository(mt.DB, time.Second).FromEmail(context.Background(), "a@x.com")
		require.ErrorIs(mt, err, internal.ErrStorage)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &User{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "hash"}
		require.NoError(mt, NewRepository(mt.DB, time.Second).Create(context.Background(), u))
		assert.False(mt, u.ID.IsZero())
		assert.False(mt, u.CreatedAt.IsZero())
	})

	mt.Run("create duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_unique",
		}))

		err := NewRepository(mt.DB, time.Second).Create(context.Background(), &User{Email: "a@x.com"})
		require.ErrorIs(mt, err, internal.ErrDuplicateAccount)
		assert.NotErrorIs(mt, err, internal.ErrStorage)
	})
}

func TestRepository_NotConnected(t *testing.T) {
	repo := NewRepository(nil, 0)

	_, err := repo.FromEmail(context.Background(), "a@x.com")
	require.ErrorIs(t, err, internal.ErrNotConnected)

	err = repo.Create(context.Background(), &User{Email: "a@x.com"})
	require.ErrorIs(t, err, internal.ErrStorage)
}

func TestUser_Encoding(t *testing.T) {
	u := User{Email: "a@x.com", Password: "hash"}

	raw, err := bson.Marshal(u)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "hash", doc["password"])
	_, hasID := doc["_id"]
	assert.False(t, hasID)

	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hash")
}

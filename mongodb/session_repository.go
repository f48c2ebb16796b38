package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
)

// SessionRepositoryMongo implements domain.SessionRepository using MongoDB.
// Every operation is a single storage call; concurrent writers to the same
// session race with last-write-wins semantics.
type SessionRepositoryMongo struct {
	collection *mongo.Collection
}

// NewSessionRepositoryMongo creates a new SessionRepositoryMongo and ensures
// the collection indexes.
func NewSessionRepositoryMongo(ctx context.Context, db *mongo.Database) (domain.SessionRepository, error) {
	repo := &SessionRepositoryMongo{
		collection: db.Collection(SessionsCollection),
	}

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			// Not unique, a user can hold multiple sessions.
			Options: options.Index(),
		},
		{
			// Backs the seeder's (user_id, login_time) existence check.
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "login_time", Value: 1}},
			Options: options.Index(),
		},
		{
			// TTL cleanup; inert while expires_at is never populated.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetSparse(true),
		},
	}

	if _, err := repo.collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		log.Warn().Err(err).Msg("Issue creating indexes for sessions collection (might already exist)")
	} else {
		log.Info().Msg("Indexes for sessions collection ensured.")
	}

	return repo, nil
}

// StoreSession persists a new session record, assigning an ID when absent.
func (r *SessionRepositoryMongo) StoreSession(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("session with this ID already exists")
		}
		log.Error().Err(err).Msg("Error storing session in MongoDB")
		return err
	}
	return nil
}

// GetSessionByID retrieves a session by its primary ID.
func (r *SessionRepositoryMongo) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSessionNotFound
		}
		log.Error().Err(err).Str("id", id).Msg("Error getting session by ID from MongoDB")
		return nil, err
	}
	return &session, nil
}

// SetSessionLogoutTime records the logout time on the matching session and
// returns the updated document. The write is a single atomic
// FindOneAndUpdate, so there is no read-modify-write window; a second call
// simply overwrites logout_time with the later timestamp.
func (r *SessionRepositoryMongo) SetSessionLogoutTime(ctx context.Context, id string, logoutTime time.Time) (*domain.Session, error) {
	update := bson.M{"$set": bson.M{
		"logout_time": logoutTime,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session domain.Session
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSessionNotFound
		}
		log.Error().Err(err).Str("sessionID", id).Msg("Error updating session logout time in MongoDB")
		return nil, err
	}
	return &session, nil
}

// SessionExists reports whether a session with the exact (userID, loginTime)
// pair is already stored.
func (r *SessionRepositoryMongo) SessionExists(ctx context.Context, userID string, loginTime time.Time) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"login_time": loginTime,
	}, options.Count().SetLimit(1))
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Error checking session existence in MongoDB")
		return false, err
	}
	return count > 0, nil
}

// ListSessionsByUserID retrieves sessions for a user, newest login first.
func (r *SessionRepositoryMongo) ListSessionsByUserID(ctx context.Context, userID string, filter domain.SessionFilter) ([]*domain.Session, error) {
	mongoFilter := bson.M{"user_id": userID}
	if !filter.FromDate.IsZero() || !filter.ToDate.IsZero() {
		dateFilter := bson.M{}
		if !filter.FromDate.IsZero() {
			dateFilter["$gte"] = filter.FromDate
		}
		if !filter.ToDate.IsZero() {
			dateFilter["$lte"] = filter.ToDate
		}
		mongoFilter["login_time"] = dateFilter
	}
	if filter.ActiveOnly {
		mongoFilter["logout_time"] = bson.M{"$exists": false}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter,
		options.Find().SetSort(bson.D{{Key: "login_time", Value: -1}}))
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Error listing sessions by user ID from MongoDB")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*domain.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		log.Error().Err(err).Msg("Error decoding listed sessions from MongoDB")
		return nil, err
	}
	return sessions, nil
}

// CountSessions returns the total number of stored sessions.
func (r *SessionRepositoryMongo) CountSessions(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Error().Err(err).Msg("Error counting sessions in MongoDB")
		return 0, err
	}
	return count, nil
}

// Ensure interface compliance
var _ domain.SessionRepository = (*SessionRepositoryMongo)(nil)

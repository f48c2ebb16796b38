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

// UserRepositoryMongo implements domain.UserRepository using MongoDB.
type UserRepositoryMongo struct {
	collection *mongo.Collection
}

// NewUserRepositoryMongo creates a new UserRepositoryMongo and ensures the
// unique email index.
func NewUserRepositoryMongo(ctx context.Context, db *mongo.Database) (domain.UserRepository, error) {
	repo := &UserRepositoryMongo{
		collection: db.Collection(UsersCollection),
	}

	_, err := repo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Issue creating email index for users collection (might already exist)")
	}

	return repo, nil
}

// CreateUser persists a new user record, assigning an ID when absent.
func (r *UserRepositoryMongo) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("user with this email already exists")
		}
		log.Error().Err(err).Msg("Error storing user in MongoDB")
		return err
	}
	return nil
}

// GetUserByID retrieves a user by its primary ID.
func (r *UserRepositoryMongo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		log.Error().Err(err).Str("id", id).Msg("Error getting user by ID from MongoDB")
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepositoryMongo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		log.Error().Err(err).Str("email", email).Msg("Error getting user by email from MongoDB")
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces the mutable fields of an existing user.
func (r *UserRepositoryMongo) UpdateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		return errors.New("user ID is required for update")
	}
	user.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"full_name":     user.FullName,
		"password_hash": user.PasswordHash,
		"role_id":       user.RoleID,
		"tenant_id":     user.TenantID,
		"is_verified":   user.IsVerified,
		"is_active":     user.IsActive,
		"login_attempt": user.LoginAttempt,
		"updated_at":    user.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Error updating user in MongoDB")
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ListUsers retrieves all users.
func (r *UserRepositoryMongo) ListUsers(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Error().Err(err).Msg("Error listing users from MongoDB")
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	if err = cursor.All(ctx, &users); err != nil {
		log.Error().Err(err).Msg("Error decoding listed users from MongoDB")
		return nil, err
	}
	return users, nil
}

var _ domain.UserRepository = (*UserRepositoryMongo)(nil)

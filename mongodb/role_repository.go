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
)

// RoleRepositoryMongo implements domain.RoleRepository using MongoDB.
type RoleRepositoryMongo struct {
	collection *mongo.Collection
}

// NewRoleRepositoryMongo creates a new RoleRepositoryMongo.
func NewRoleRepositoryMongo(ctx context.Context, db *mongo.Database) (domain.RoleRepository, error) {
	repo := &RoleRepositoryMongo{
		collection: db.Collection(RolesCollection),
	}

	_, err := repo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Issue creating name index for roles collection (might already exist)")
	}

	return repo, nil
}

// CreateRole persists a new role, assigning an ID when absent.
func (r *RoleRepositoryMongo) CreateRole(ctx context.Context, role *domain.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
	}
	role.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, role)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("role with this name already exists")
		}
		log.Error().Err(err).Msg("Error storing role in MongoDB")
		return err
	}
	return nil
}

// GetRoleByName retrieves a role by its unique name.
func (r *RoleRepositoryMongo) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("role not found")
		}
		log.Error().Err(err).Str("name", name).Msg("Error getting role by name from MongoDB")
		return nil, err
	}
	return &role, nil
}

// ListRoles retrieves all roles.
func (r *RoleRepositoryMongo) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Error().Err(err).Msg("Error listing roles from MongoDB")
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []*domain.Role
	if err = cursor.All(ctx, &roles); err != nil {
		log.Error().Err(err).Msg("Error decoding listed roles from MongoDB")
		return nil, err
	}
	return roles, nil
}

var _ domain.RoleRepository = (*RoleRepositoryMongo)(nil)

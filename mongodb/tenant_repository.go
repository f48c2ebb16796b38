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

// TenantRepositoryMongo implements domain.TenantRepository using MongoDB.
type TenantRepositoryMongo struct {
	collection *mongo.Collection
}

// NewTenantRepositoryMongo creates a new TenantRepositoryMongo.
func NewTenantRepositoryMongo(ctx context.Context, db *mongo.Database) (domain.TenantRepository, error) {
	repo := &TenantRepositoryMongo{
		collection: db.Collection(TenantsCollection),
	}

	_, err := repo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Issue creating name index for tenants collection (might already exist)")
	}

	return repo, nil
}

// CreateTenant persists a new tenant, assigning an ID when absent.
func (r *TenantRepositoryMongo) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if tenant.CreatedAt.IsZero() {
		tenant.CreatedAt = now
	}
	tenant.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, tenant)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("tenant with this name already exists")
		}
		log.Error().Err(err).Msg("Error storing tenant in MongoDB")
		return err
	}
	return nil
}

// GetTenantByName retrieves a tenant by its unique name.
func (r *TenantRepositoryMongo) GetTenantByName(ctx context.Context, name string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&tenant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("tenant not found")
		}
		log.Error().Err(err).Str("name", name).Msg("Error getting tenant by name from MongoDB")
		return nil, err
	}
	return &tenant, nil
}

// ListTenants retrieves all tenants.
func (r *TenantRepositoryMongo) ListTenants(ctx context.Context) ([]*domain.Tenant, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Error().Err(err).Msg("Error listing tenants from MongoDB")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tenants []*domain.Tenant
	if err = cursor.All(ctx, &tenants); err != nil {
		log.Error().Err(err).Msg("Error decoding listed tenants from MongoDB")
		return nil, err
	}
	return tenants, nil
}

var _ domain.TenantRepository = (*TenantRepositoryMongo)(nil)

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

const collectionServiceRequests = "service_requests"

type ServiceRequestRepository struct {
	col *mongo.Collection
}

func NewServiceRequestRepository(db *mongo.Database) *ServiceRequestRepository {
	return &ServiceRequestRepository{col: db.Collection(collectionServiceRequests)}
}

type requestDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  primitive.ObjectID `bson:"client_id"`
	ServiceID primitive.ObjectID `bson:"service_id"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *requestDoc) toDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:        d.ID.Hex(),
		ClientID:  hexOrEmpty(d.ClientID),
		ServiceID: hexOrEmpty(d.ServiceID),
		Status:    domain.RequestStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// requestFilter translates f into a query. ok is false when f can match
// nothing, which happens for a client id that is not an ObjectID.
func requestFilter(f ports.ServiceRequestFilter) (bson.M, bool) {
	q := bson.M{}
	if f.ClientID != "" {
		id, ok := oid(f.ClientID)
		if !ok {
			return nil, false
		}
		q["client_id"] = id
	}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	return q, true
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	clientID, ok := oid(req.ClientID)
	if !ok {
		return nil, domain.ValidationError("client_id is not a valid id")
	}
	serviceID, ok := oid(req.ServiceID)
	if !ok {
		return nil, domain.ValidationError("service_id is not a valid id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := requestDoc{
		ClientID:  clientID,
		ServiceID: serviceID,
		Status:    string(req.Status),
		CreatedAt: storedTime(req.CreatedAt),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert service request: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ServiceRequestRepository) FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, domain.ErrServiceRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceRequestNotFound
		}
		return nil, fmt.Errorf("find service request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRequestRepository) List(ctx context.Context, f ports.ServiceRequestFilter) ([]*domain.ServiceRequest, error) {
	q, ok := requestFilter(f)
	if !ok {
		return []*domain.ServiceRequest{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, q, listOptions())
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	var docs []requestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode service requests: %w", err)
	}

	out := make([]*domain.ServiceRequest, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// TransitionStatus is a compare-and-set on the status field, so two
// concurrent approvals of one request cannot both succeed.
func (r *ServiceRequestRepository) TransitionStatus(ctx context.Context, id string, to domain.RequestStatus, from ...domain.RequestStatus) (*domain.ServiceRequest, error) {
	objID, ok := oid(id)
	if !ok || len(from) == 0 {
		return nil, domain.ErrServiceRequestNotFound
	}

	sources := make([]string, len(from))
	for i, s := range from {
		sources[i] = string(s)
	}
	filter := bson.M{"_id": objID, "status": bson.M{"$in": sources}}
	update := bson.M{"$set": bson.M{"status": string(to)}}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceRequestNotFound
		}
		return nil, fmt.Errorf("transition service request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRequestRepository) Count(ctx context.Context, f ports.ServiceRequestFilter) (int64, error) {
	q, ok := requestFilter(f)
	if !ok {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count service requests: %w", err)
	}
	return n, nil
}

func (r *ServiceRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

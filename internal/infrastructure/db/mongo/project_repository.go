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

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type projectDoc struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Name             string               `bson:"name"`
	Description      string               `bson:"description"`
	ClientID         primitive.ObjectID   `bson:"client_id"`
	ServiceRequestID primitive.ObjectID   `bson:"service_request_id"`
	EmployeeIDs      []primitive.ObjectID `bson:"employee_ids"`
	Status           string               `bson:"status"`
	CreatedAt        time.Time            `bson:"created_at"`
}

func (d *projectDoc) toDomain() *domain.Project {
	employees := make([]string, 0, len(d.EmployeeIDs))
	for _, id := range d.EmployeeIDs {
		employees = append(employees, id.Hex())
	}
	return &domain.Project{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Description:      d.Description,
		ClientID:         hexOrEmpty(d.ClientID),
		ServiceRequestID: hexOrEmpty(d.ServiceRequestID),
		EmployeeIDs:      employees,
		Status:           domain.ProjectStatus(d.Status),
		CreatedAt:        d.CreatedAt.UTC(),
	}
}

// employeeOIDs converts assignment ids. A malformed id is a caller error.
func employeeOIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		v, ok := oid(id)
		if !ok {
			return nil, domain.ValidationError(fmt.Sprintf("employee id %q is not a valid id", id))
		}
		out = append(out, v)
	}
	return out, nil
}

func projectFilter(f ports.ProjectFilter) (bson.M, bool) {
	q := bson.M{}
	if f.ClientID != "" {
		id, ok := oid(f.ClientID)
		if !ok {
			return nil, false
		}
		q["client_id"] = id
	}
	if f.EmployeeID != "" {
		id, ok := oid(f.EmployeeID)
		if !ok {
			return nil, false
		}
		q["employee_ids"] = id
	}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	return q, true
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	clientID, ok := oid(p.ClientID)
	if !ok {
		return nil, domain.ValidationError("client_id is not a valid id")
	}
	requestID, ok := oid(p.ServiceRequestID)
	if !ok {
		return nil, domain.ValidationError("service_request_id is not a valid id")
	}
	employees, err := employeeOIDs(p.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := projectDoc{
		Name:             p.Name,
		Description:      p.Description,
		ClientID:         clientID,
		ServiceRequestID: requestID,
		EmployeeIDs:      employees,
		Status:           string(p.Status),
		CreatedAt:        storedTime(p.CreatedAt),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) List(ctx context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	q, ok := projectFilter(f)
	if !ok {
		return []*domain.Project{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, q, listOptions())
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	out := make([]*domain.Project, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ProjectRepository) SetEmployees(ctx context.Context, id string, employeeIDs []string) (*domain.Project, error) {
	employees, err := employeeOIDs(employeeIDs)
	if err != nil {
		return nil, err
	}
	return r.update(ctx, id, bson.M{"$set": bson.M{"employee_ids": employees}})
}

func (r *ProjectRepository) RemoveEmployee(ctx context.Context, id, employeeID string) (*domain.Project, error) {
	employee, ok := oid(employeeID)
	if !ok {
		// Nothing with that id can be assigned.
		return r.FindByID(ctx, id)
	}
	return r.update(ctx, id, bson.M{"$pull": bson.M{"employee_ids": employee}})
}

func (r *ProjectRepository) RemoveEmployeeEverywhere(ctx context.Context, employeeID string) (int64, error) {
	employee, ok := oid(employeeID)
	if !ok {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"employee_ids": employee},
		bson.M{"$pull": bson.M{"employee_ids": employee}},
	)
	if err != nil {
		return 0, fmt.Errorf("unassign employee: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *ProjectRepository) SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	return r.update(ctx, id, bson.M{"$set": bson.M{"status": string(status)}})
}

func (r *ProjectRepository) update(ctx context.Context, id string, update bson.M) (*domain.Project, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) Count(ctx context.Context, f ports.ProjectFilter) (int64, error) {
	q, ok := projectFilter(f)
	if !ok {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "employee_ids", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

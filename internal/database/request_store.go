package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rural-health-api-server/internal/models"
)

// RequestStore persists medicine requests in the medicineRequests collection.
type RequestStore struct {
	coll *mongo.Collection
}

func NewRequestStore(db *mongo.Database) *RequestStore {
	return &RequestStore{coll: db.Collection("medicineRequests")}
}

func (s *RequestStore) Insert(ctx context.Context, req models.MedicineRequest) (models.MedicineRequest, error) {
	result, err := s.coll.InsertOne(ctx, req)
	if err != nil {
		return models.MedicineRequest{}, fmt.Errorf("insert medicine request: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}
	return req, nil
}

func (s *RequestStore) FindByID(ctx context.Context, id string) (models.MedicineRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.MedicineRequest{}, models.ErrRequestNotFound
	}

	var req models.MedicineRequest
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.MedicineRequest{}, models.ErrRequestNotFound
		}
		return models.MedicineRequest{}, fmt.Errorf("find medicine request: %w", err)
	}
	req.Normalize()
	return req, nil
}

// UpdateStatus performs a partial update touching only the status field.
func (s *RequestStore) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrRequestNotFound
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update medicine request status: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

func (s *RequestStore) All(ctx context.Context) ([]models.MedicineRequest, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query medicine requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.MedicineRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode medicine requests: %w", err)
	}

	if requests == nil {
		requests = []models.MedicineRequest{}
	}
	for i := range requests {
		requests[i].Normalize()
	}
	return requests, nil
}

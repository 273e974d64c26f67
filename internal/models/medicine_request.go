package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRequestNotFound is returned by stores when no document matches the id.
var ErrRequestNotFound = errors.New("medicine request not found")

// Status is the delivery lifecycle of a medicine request. It only ever
// moves forward: pending -> accepted -> delivered.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDelivered Status = "delivered"
)

// CanTransitionTo reports whether the request may move from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted
	case StatusAccepted:
		return next == StatusDelivered
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusAccepted, StatusDelivered:
		return Status(raw), nil
	}
	return "", fmt.Errorf("unknown request status %q", raw)
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ParseUrgency maps raw form input to an urgency level, defaulting to medium.
func ParseUrgency(raw string) Urgency {
	switch Urgency(raw) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return Urgency(raw)
	}
	return UrgencyMedium
}

// MedicineRequest matches the documents in the medicineRequests collection.
type MedicineRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName string             `bson:"patientName" json:"patientName"`
	Phone       string             `bson:"phone" json:"phone"`
	Location    string             `bson:"location" json:"location"`
	Urgency     Urgency            `bson:"urgency" json:"urgency"`
	Medicines   []string           `bson:"medicines" json:"medicines"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ImageURL    string             `bson:"imageURL" json:"imageURL"`
	Status      Status             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Normalize shapes a raw document for use outside the store boundary.
// Older documents may lack the medicines array entirely.
func (r *MedicineRequest) Normalize() {
	if r.Medicines == nil {
		r.Medicines = []string{}
	}
}

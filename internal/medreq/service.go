package medreq

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"rural-health-api-server/internal/models"
)

// Store is the slice of the document database the service needs.
type Store interface {
	Insert(ctx context.Context, req models.MedicineRequest) (models.MedicineRequest, error)
	FindByID(ctx context.Context, id string) (models.MedicineRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) error
	All(ctx context.Context) ([]models.MedicineRequest, error)
}

// Uploader puts a blob in object storage and returns its public URL.
type Uploader interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error)
}

// Service owns the medicine-request lifecycle: submission, the status
// transitions performed by volunteers, and the live dashboard feed.
type Service struct {
	store    Store
	uploader Uploader
	feed     *Feed
	now      func() time.Time
}

func NewService(store Store, uploader Uploader) *Service {
	return &Service{
		store:    store,
		uploader: uploader,
		feed:     NewFeed(),
		now:      time.Now,
	}
}

// Submit validates the input, uploads the prescription file if one is
// attached, and inserts a new pending request. A failed upload or insert is
// reported as ErrSubmissionFailed; an uploaded file whose insert then fails is
// left behind in the blob store.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (models.MedicineRequest, error) {
	if err := ValidateSubmission(in); err != nil {
		return models.MedicineRequest{}, err
	}

	imageURL := ""
	if in.File != nil {
		// Millisecond timestamp prefix keeps concurrent uploads from colliding.
		objectKey := fmt.Sprintf("prescriptions/%d_%s", s.now().UnixMilli(), in.FileName)
		url, err := s.uploader.UploadFile(ctx, in.File, objectKey)
		if err != nil {
			return models.MedicineRequest{}, fmt.Errorf("%w: upload prescription: %v", ErrSubmissionFailed, err)
		}
		imageURL = url
	}

	req := models.MedicineRequest{
		PatientName: strings.TrimSpace(in.PatientName),
		Phone:       strings.TrimSpace(in.Phone),
		Location:    strings.TrimSpace(in.Location),
		Urgency:     models.ParseUrgency(in.Urgency),
		Medicines:   ParseMedicineList(in.MedicinesText),
		Notes:       strings.TrimSpace(in.Notes),
		ImageURL:    imageURL,
		Status:      models.StatusPending,
		CreatedAt:   s.now(),
	}

	created, err := s.store.Insert(ctx, req)
	if err != nil {
		return models.MedicineRequest{}, fmt.Errorf("%w: insert request: %v", ErrSubmissionFailed, err)
	}

	s.publishSnapshot(ctx)
	return created, nil
}

// Accept moves a pending request to accepted. The guard reads the current
// status first; two volunteers racing past it both write the same value, so
// the record still converges on accepted.
func (s *Service) Accept(ctx context.Context, id string) (models.MedicineRequest, error) {
	return s.transition(ctx, id, models.StatusAccepted)
}

// Deliver moves an accepted request to delivered.
func (s *Service) Deliver(ctx context.Context, id string) (models.MedicineRequest, error) {
	return s.transition(ctx, id, models.StatusDelivered)
}

func (s *Service) transition(ctx context.Context, id string, next models.Status) (models.MedicineRequest, error) {
	req, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.MedicineRequest{}, err
	}

	if !req.Status.CanTransitionTo(next) {
		return models.MedicineRequest{}, fmt.Errorf("%w: %s request cannot become %s", ErrInvalidTransition, req.Status, next)
	}

	if err := s.store.UpdateStatus(ctx, id, next); err != nil {
		return models.MedicineRequest{}, fmt.Errorf("update request status: %w", err)
	}
	req.Status = next

	s.publishSnapshot(ctx)
	return req, nil
}

// Get returns a single request by id.
func (s *Service) Get(ctx context.Context, id string) (models.MedicineRequest, error) {
	return s.store.FindByID(ctx, id)
}

// List returns all requests, newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status models.Status) ([]models.MedicineRequest, error) {
	requests, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if status != "" {
		filtered := []models.MedicineRequest{}
		for _, req := range requests {
			if req.Status == status {
				filtered = append(filtered, req)
			}
		}
		requests = filtered
	}
	sortNewestFirst(requests)
	return requests, nil
}

// Subscribe opens a live view of the request collection. The current snapshot
// is delivered immediately; every later write produces a fresh one. The caller
// must Close the subscription when the dashboard goes away.
func (s *Service) Subscribe(ctx context.Context) (*Subscription, error) {
	requests, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load request snapshot: %w", err)
	}
	sortNewestFirst(requests)
	return s.feed.Subscribe(requests), nil
}

// publishSnapshot re-reads the full collection and broadcasts it. The feed
// always carries complete snapshots, never diffs.
func (s *Service) publishSnapshot(ctx context.Context) {
	requests, err := s.store.All(ctx)
	if err != nil {
		log.Printf("Failed to refresh request snapshot: %v", err)
		return
	}
	sortNewestFirst(requests)
	s.feed.Publish(requests)
}

func sortNewestFirst(requests []models.MedicineRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

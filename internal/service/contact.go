package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventfinder/internal/metrics"
	"eventfinder/internal/model"
	"eventfinder/internal/repository"
)

// ContactInput is a contact form submission. Identity and timestamp are assigned by the service.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService stores and lists contact form messages.
type ContactService interface {
	// Submit stores a new message with a fresh identity.
	Submit(ctx context.Context, in ContactInput) (*model.Contact, error)

	// List returns every stored message, newest first.
	List(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	repo    repository.ContactRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewContactService constructs a ContactService. m may be nil.
func NewContactService(repo repository.ContactRepository, m *metrics.Metrics) ContactService {
	return &contactService{repo: repo, metrics: m, now: time.Now}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.Contact, error) {
	c := &model.Contact{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: s.now().UTC(),
	}

	saved, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%w: save contact: %w", ErrStorage, err)
	}

	s.metrics.ContactSubmitted()
	return saved, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list contacts: %w", ErrStorage, err)
	}
	if items == nil {
		items = []model.Contact{}
	}
	return items, nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

const (
	defaultSort  = "lastName"
	defaultLimit = 10
	maxLimit     = 100
)

// sortFields maps the allow-listed API sort names to storage field names.
var sortFields = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"createdAt": "created_at",
}

// ContactService scopes every contact operation to the caller's identity.
// The owner filter is applied inside the repository query, never after the
// fact, so a foreign id is indistinguishable from a missing one.
type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) List(ctx context.Context, identity domain.Identity, input ports.ListContactsInput) (*ports.ListContactsResult, error) {
	sortField, ok := sortFields[input.Sort]
	if !ok {
		sortField = sortFields[defaultSort]
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	contacts, total, err := s.repo.List(ctx, ports.ListContactsFilter{
		OwnerID:   identity.ID,
		Search:    input.Search,
		SortField: sortField,
		Ascending: input.Order != "desc",
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListContactsResult{
		Contacts: contacts,
		Total:    total,
		Page:     page,
		Pages:    pages,
		Limit:    limit,
	}, nil
}

func (s *ContactService) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, identity.ID, id)
}

func (s *ContactService) Create(ctx context.Context, identity domain.Identity, input ports.CreateContactInput) (*domain.Contact, error) {
	contact, err := s.repo.Insert(ctx, &domain.Contact{
		OwnerID:   identity.ID, // forced from the identity, never from input
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("contact_id", contact.ID).Str("owner_id", identity.ID).Msg("contact created")
	return contact, nil
}

func (s *ContactService) Update(ctx context.Context, identity domain.Identity, id string, upd ports.ContactUpdate) (*domain.Contact, error) {
	return s.repo.Update(ctx, identity.ID, id, upd)
}

func (s *ContactService) Delete(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error) {
	return s.repo.Delete(ctx, identity.ID, id)
}

func (s *ContactService) DeleteAll(ctx context.Context, identity domain.Identity) (int64, error) {
	count, err := s.repo.DeleteAll(ctx, identity.ID)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("owner_id", identity.ID).Int64("deleted", count).Msg("all contacts deleted")
	return count, nil
}

package handler

import (
	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createContactRequest) ports.CreateContactInput {
	return ports.CreateContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}
}

func toUpdateInput(req updateContactRequest) ports.ContactUpdate {
	return ports.ContactUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}
}

func toListInput(req listContactsRequest) ports.ListContactsInput {
	return ports.ListContactsInput{
		Search: req.Search,
		Sort:   req.Sort,
		Order:  req.Order,
		Page:   req.Page,
		Limit:  req.Limit,
	}
}

// --- Service result → HTTP response ---

// Note: owner_id is deliberately absent from the response; the caller
// already is the owner.
func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListContactsResult) listContactsData {
	contacts := make([]contactResponse, len(r.Contacts))
	for i, c := range r.Contacts {
		contacts[i] = toContactResponse(c)
	}
	return listContactsData{
		Contacts: contacts,
		Pagination: paginationResponse{
			Total: r.Total,
			Page:  r.Page,
			Pages: r.Pages,
			Limit: r.Limit,
		},
	}
}

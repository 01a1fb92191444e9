package handler

import "time"

// Contact JSON is camelCase: that is the wire contract clients already speak.

type createContactRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=50"`
	Phone     string `json:"phone"     validate:"required,phone"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Address   string `json:"address"   validate:"omitempty,max=200"`
}

// updateContactRequest carries a partial update: absent fields stay nil and
// are left untouched.
type updateContactRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=2,max=50"`
	Phone     *string `json:"phone"     validate:"omitempty,phone"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Address   *string `json:"address"   validate:"omitempty,max=200"`
}

type listContactsRequest struct {
	Search string `query:"search" validate:"omitempty,max=100"`
	Sort   string `query:"sort"   validate:"omitempty,oneof=firstName lastName createdAt"`
	Order  string `query:"order"  validate:"omitempty,oneof=asc desc"`
	Page   int    `query:"page"   validate:"omitempty,min=1"`
	Limit  int    `query:"limit"  validate:"omitempty,min=1,max=100"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type contactData struct {
	Contact contactResponse `json:"contact"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

type listContactsData struct {
	Contacts   []contactResponse  `json:"contacts"`
	Pagination paginationResponse `json:"pagination"`
}

type deleteAllData struct {
	DeletedCount int64 `json:"deletedCount"`
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mycontact/contacts-api/internal/api/metrics"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact operations. Every route
// behind it runs under RequireAuth, and every service call carries the
// resolved identity.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List handles GET /contacts.
//
// @Summary      List the caller's contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring match on first name, last name, or phone"
// @Param        sort    query     string  false  "firstName | lastName | createdAt"  default(lastName)
// @Param        order   query     string  false  "asc | desc"  default(asc)
// @Param        page    query     int     false  "1-based page"  default(1)
// @Param        limit   query     int     false  "Page size (max 100)"  default(10)
// @Success      200     {object}  envelope
// @Failure      401     {object}  envelope
// @Router       /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req listContactsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), identity, toListInput(req))
	if err != nil {
		return err
	}

	metrics.ContactOperationsTotal.WithLabelValues("list").Inc()
	return respond(c, http.StatusOK, "contacts retrieved", toListResponse(result))
}

// Get handles GET /contacts/:id.
//
// @Summary      Get a contact by id
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	contact, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ContactOperationsTotal.WithLabelValues("get").Inc()
	return respond(c, http.StatusOK, "contact retrieved", contactData{Contact: toContactResponse(contact)})
}

// Create handles POST /contacts.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContactRequest  true  "Contact fields"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Create(c.Request().Context(), identity, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ContactOperationsTotal.WithLabelValues("create").Inc()
	return respond(c, http.StatusCreated, "contact created", contactData{Contact: toContactResponse(contact)})
}

// Update handles PATCH /contacts/:id — a partial update.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Contact id"
// @Param        body  body      updateContactRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /contacts/{id} [patch]
func (h *ContactHandler) Update(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.ContactOperationsTotal.WithLabelValues("update").Inc()
	return respond(c, http.StatusOK, "contact updated", contactData{Contact: toContactResponse(contact)})
}

// Delete handles DELETE /contacts/:id.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	contact, err := h.service.Delete(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ContactOperationsTotal.WithLabelValues("delete").Inc()
	return respond(c, http.StatusOK, "contact deleted", contactData{Contact: toContactResponse(contact)})
}

// DeleteAll handles DELETE /contacts — removes every contact of the caller.
//
// @Summary      Delete all of the caller's contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /contacts [delete]
func (h *ContactHandler) DeleteAll(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	count, err := h.service.DeleteAll(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	metrics.ContactOperationsTotal.WithLabelValues("delete_all").Inc()
	return respond(c, http.StatusOK, fmt.Sprintf("%d contact(s) deleted", count), deleteAllData{DeletedCount: count})
}

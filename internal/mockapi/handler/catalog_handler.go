package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

// MessageResponse is the body of failed calls and of deletes.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Hooks customise a CatalogHandler around persistence. id is 0 on create.
type Hooks[T any, P any] struct {
	BeforeSave  func(ctx context.Context, id int64, in *P) error
	AfterSave   func(ctx context.Context, saved T, in P) error
	AfterDelete func(ctx context.Context, id int64) error
}

// CatalogHandler serves the envelope CRUD endpoints of one collection.
type CatalogHandler[T domain.Entity[T], P domain.Input[T]] struct {
	service ports.CatalogService[T, P]
	label   string
	hooks   Hooks[T, P]
}

// NewCatalogHandler builds a handler; label is the capitalised singular
// used in messages, e.g. "Driver".
func NewCatalogHandler[T domain.Entity[T], P domain.Input[T]](service ports.CatalogService[T, P], label string, hooks Hooks[T, P]) *CatalogHandler[T, P] {
	return &CatalogHandler[T, P]{service: service, label: label, hooks: hooks}
}

// List returns every record of the collection.
//
// @Summary      List records
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Envelope[[]any]
// @Failure      401  {object}  MessageResponse
// @Router       /admins [get]
// @Router       /drivers [get]
// @Router       /passengers [get]
// @Router       /rides [get]
// @Router       /feedbacks [get]
func (h *CatalogHandler[T, P]) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	count := len(items)
	return c.JSON(http.StatusOK, domain.Envelope[[]T]{Success: true, Data: items, Count: &count})
}

// Get returns one record by id.
//
// @Summary      Get a record
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record id"
// @Success      200  {object}  domain.Envelope[any]
// @Failure      404  {object}  MessageResponse
// @Router       /admins/{id} [get]
// @Router       /drivers/{id} [get]
// @Router       /passengers/{id} [get]
// @Router       /rides/{id} [get]
// @Router       /feedbacks/{id} [get]
func (h *CatalogHandler[T, P]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, domain.Envelope[T]{Success: true, Data: item})
}

// Create stores a new record.
//
// @Summary      Create a record
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Envelope[any]
// @Failure      400  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      409  {object}  MessageResponse
// @Router       /admins [post]
// @Router       /drivers [post]
// @Router       /passengers [post]
func (h *CatalogHandler[T, P]) Create(c echo.Context) error {
	in, err := bindInput[P](c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if h.hooks.BeforeSave != nil {
		if err := h.hooks.BeforeSave(ctx, 0, &in); err != nil {
			return h.fail(err)
		}
	}
	created, err := h.service.Create(ctx, in)
	if err != nil {
		return h.fail(err)
	}
	if h.hooks.AfterSave != nil {
		if err := h.hooks.AfterSave(ctx, created, in); err != nil {
			return h.fail(h.rollback(ctx, created.Key(), err))
		}
	}

	return c.JSON(http.StatusCreated, domain.Envelope[T]{
		Success: true,
		Data:    created,
		Message: h.label + " created successfully",
	})
}

// Update replaces a record.
//
// @Summary      Update a record
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record id"
// @Success      200  {object}  domain.Envelope[any]
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /admins/{id} [put]
// @Router       /drivers/{id} [put]
// @Router       /passengers/{id} [put]
func (h *CatalogHandler[T, P]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in, err := bindInput[P](c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if h.hooks.BeforeSave != nil {
		if err := h.hooks.BeforeSave(ctx, id, &in); err != nil {
			return h.fail(err)
		}
	}
	updated, err := h.service.Update(ctx, id, in)
	if err != nil {
		return h.fail(err)
	}
	if h.hooks.AfterSave != nil {
		if err := h.hooks.AfterSave(ctx, updated, in); err != nil {
			return h.fail(err)
		}
	}

	return c.JSON(http.StatusOK, domain.Envelope[T]{
		Success: true,
		Data:    updated,
		Message: h.label + " updated successfully",
	})
}

// Delete removes a record.
//
// @Summary      Delete a record
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record id"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /admins/{id} [delete]
// @Router       /drivers/{id} [delete]
// @Router       /passengers/{id} [delete]
func (h *CatalogHandler[T, P]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.service.Delete(ctx, id); err != nil {
		return h.fail(err)
	}
	if h.hooks.AfterDelete != nil {
		if err := h.hooks.AfterDelete(ctx, id); err != nil {
			return h.fail(err)
		}
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: h.label + " deleted successfully"})
}

// rollback removes a record whose create did not finish, so the same
// payload can be retried. cause stays the error that is reported.
func (h *CatalogHandler[T, P]) rollback(ctx context.Context, id int64, cause error) error {
	if err := h.service.Delete(context.WithoutCancel(ctx), id); err != nil {
		return fmt.Errorf("%w (rollback of %d failed: %v)", cause, id, err)
	}
	return cause
}

func (h *CatalogHandler[T, P]) fail(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, h.label+" not found")
	case errors.Is(err, domain.ErrUserExists):
		return echo.NewHTTPError(http.StatusConflict, "Username already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, "Password is required")
	}
	return err
}

func bindInput[P any](c echo.Context) (P, error) {
	var in P
	if err := c.Bind(&in); err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return in, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/app"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/store"
	"github.com/commutersec/admin-dashboard/pkg/format"
)

type listPage[T any] struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	store.View[T]
	// Styles is keyed by record id; only set for lists with a RowStyler.
	Styles map[int64]RowStyle `json:"styles,omitempty"`
}

// CollectionHandler serves the list and detail views of a read-only resource.
type CollectionHandler[T domain.Keyed] struct {
	store  *store.Collection[T]
	router *app.Router
	title  string
	style  RowStyler[T]
}

func NewCollectionHandler[T domain.Keyed](s *store.Collection[T], router *app.Router) *CollectionHandler[T] {
	return &CollectionHandler[T]{
		store:  s,
		router: router,
		title:  format.PageTitle(format.Capitalize(s.Name())),
	}
}

// SetRowStyle makes List attach a RowStyle for every record.
func (h *CollectionHandler[T]) SetRowStyle(fn RowStyler[T]) { h.style = fn }

// List renders the cached list, fetching it on first visit or on ?refresh=1.
func (h *CollectionHandler[T]) List(c echo.Context) error {
	if wantsRefresh(c) || !h.store.Loaded() {
		h.store.FetchAll(c.Request().Context())
	}
	visit(c, h.router)

	view := h.store.Snapshot()
	page := listPage[T]{Title: h.title, Count: len(view.Items), View: view}
	if h.style != nil {
		page.Styles = make(map[int64]RowStyle, len(view.Items))
		for _, item := range view.Items {
			page.Styles[item.Key()] = h.style(item)
		}
	}
	return c.JSON(http.StatusOK, page)
}

func (h *CollectionHandler[T]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(StatusOf(err), err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

// ResourceHandler adds create, update and delete to a CollectionHandler.
// Every outcome is also reported to the operator as a toast.
type ResourceHandler[T domain.Keyed, P any] struct {
	*CollectionHandler[T]
	resource *store.Resource[T, P]
	toasts   *app.Toasts
	label    string
}

func NewResourceHandler[T domain.Keyed, P any](r *store.Resource[T, P], router *app.Router, toasts *app.Toasts) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{
		CollectionHandler: NewCollectionHandler(r.Collection, router),
		resource:          r,
		toasts:            toasts,
		label:             format.Capitalize(r.Config().Singular),
	}
}

func (h *ResourceHandler[T, P]) Create(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}

	res := h.resource.Create(c.Request().Context(), in)
	if !res.Success {
		return h.fail(res.Err, res.Message)
	}
	h.toasts.Success(h.label + " created successfully")
	return c.JSON(http.StatusCreated, res.Data)
}

func (h *ResourceHandler[T, P]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	in, err := h.bind(c)
	if err != nil {
		return err
	}

	res := h.resource.Update(c.Request().Context(), id, in)
	if !res.Success {
		return h.fail(res.Err, res.Message)
	}
	h.toasts.Success(h.label + " updated successfully")
	return c.JSON(http.StatusOK, res.Data)
}

func (h *ResourceHandler[T, P]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	res := h.resource.Delete(c.Request().Context(), id)
	if !res.Success {
		return h.fail(res.Err, res.Message)
	}
	h.toasts.Success(h.label + " deleted successfully")
	return c.NoContent(http.StatusNoContent)
}

// bind decodes the write payload. Field rules are the API's to enforce; its
// rejection comes back through the store's Result.
func (h *ResourceHandler[T, P]) bind(c echo.Context) (P, error) {
	var in P
	if err := c.Bind(&in); err != nil {
		h.toasts.Error("Invalid " + h.label + " payload")
		return in, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return in, nil
}

func (h *ResourceHandler[T, P]) fail(err error, message string) error {
	h.toasts.Error(message)
	return echo.NewHTTPError(StatusOf(err), message)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rxconsole/internal/delivery/http/response"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	center usecase.NotificationCenter
	badge  usecase.Badge
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(center usecase.NotificationCenter, badge usecase.Badge, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		center: center,
		badge:  badge,
		logger: logger,
	}
}

// IDsRequest names the notifications a bulk action applies to
type IDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// ToggleRequest names one notification to select or deselect
type ToggleRequest struct {
	ID string `json:"id" validate:"required"`
}

// List returns the notification page. ?page=N loads that page; the first view loads page 1.
func (h *NotificationHandler) List(c echo.Context) error {
	page, ok, err := pageParam(c)
	if err != nil {
		return err
	}
	if !ok {
		view := h.center.View()
		if view.State != usecase.NotificationIdle {
			return response.Success(c, http.StatusOK, view, "")
		}
		page = 1
	}

	view, err := h.center.Load(c.Request().Context(), page)
	if err != nil {
		return withState(c, err, view)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Badge returns the header unread count; ?refresh=true asks the server first
func (h *NotificationHandler) Badge(c echo.Context) error {
	if refresh, _ := strconv.ParseBool(c.QueryParam("refresh")); refresh {
		if _, err := h.badge.Refresh(c.Request().Context()); err != nil {
			return err
		}
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": h.badge.Count()}, "")
}

// SetFilter applies the page-local search, read-state and date filters
func (h *NotificationHandler) SetFilter(c echo.Context) error {
	var filter usecase.NotificationFilter
	if err := c.Bind(&filter); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	view, err := h.center.SetFilter(filter)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Open returns one notification, marking it read when it was unread
func (h *NotificationHandler) Open(c echo.Context) error {
	notification, err := h.center.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notification, "")
}

// MarkRead marks the given notifications read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	return h.setRead(c, true)
}

// MarkUnread marks the given notifications unread
func (h *NotificationHandler) MarkUnread(c echo.Context) error {
	return h.setRead(c, false)
}

func (h *NotificationHandler) setRead(c echo.Context, read bool) error {
	var req IDsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var (
		message string
		err     error
	)
	if read {
		message, err = h.center.MarkRead(ctx, req.IDs)
	} else {
		message, err = h.center.MarkUnread(ctx, req.IDs)
	}
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.center.View(), message)
}

// RequestDelete stages a bulk delete and returns the token that confirms it
func (h *NotificationHandler) RequestDelete(c echo.Context) error {
	var req IDsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	confirmation, err := h.center.RequestDelete(req.IDs)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, confirmation, "Confirm to delete notifications")
}

// ConfirmDelete performs a staged bulk delete
func (h *NotificationHandler) ConfirmDelete(c echo.Context) error {
	message, err := h.center.ConfirmDelete(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.center.View(), message)
}

// CancelDelete drops a staged bulk delete
func (h *NotificationHandler) CancelDelete(c echo.Context) error {
	if err := h.center.CancelDelete(c.Param("token")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.center.View(), "Delete cancelled")
}

// Toggle flips the selection of one notification
func (h *NotificationHandler) Toggle(c echo.Context) error {
	var req ToggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string][]string{"selected": h.center.Toggle(req.ID)}, "")
}

// SelectAll selects every visible notification, or clears the selection when all are selected
func (h *NotificationHandler) SelectAll(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]string{"selected": h.center.SelectAll()}, "")
}

// ClearSelection deselects everything
func (h *NotificationHandler) ClearSelection(c echo.Context) error {
	h.center.ClearSelection()

	return response.Success(c, http.StatusOK, map[string][]string{"selected": {}}, "")
}

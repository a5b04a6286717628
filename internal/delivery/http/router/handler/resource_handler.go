package handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"rxconsole/internal/delivery/http/response"
	"rxconsole/internal/domain/entity"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/infra/metrics"
	"rxconsole/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadMemory is kept in memory while parsing multipart forms; larger files spill to disk.
const maxUploadMemory = 10 << 20

// ResourceHandler exposes the resource tables.
type ResourceHandler struct {
	registry usecase.TableRegistry
	logger   *slog.Logger
}

// NewResourceHandler is the constructor for ResourceHandler, injected by Fx.
func NewResourceHandler(registry usecase.TableRegistry, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		registry: registry,
		logger:   logger,
	}
}

func (h *ResourceHandler) table(c echo.Context) (usecase.TableController, error) {
	return h.registry.Get(c.Param("resource"))
}

// List describes every registered resource.
func (h *ResourceHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.registry.List(), "")
}

// Get returns the table view. ?page=N loads that page; the first view of a table loads page 1.
func (h *ResourceHandler) Get(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	page, ok, err := pageParam(c)
	if err != nil {
		return err
	}
	if !ok {
		view := table.View()
		if view.Loaded || view.Error != "" {
			return response.Success(c, http.StatusOK, view, "")
		}
		page = 1
	}

	view, err := table.Load(c.Request().Context(), page)
	if err != nil {
		return withState(c, err, view)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Retry re-issues the failed load.
func (h *ResourceHandler) Retry(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	view, err := table.Retry(c.Request().Context())
	if err != nil {
		return withState(c, err, view)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SetFilter applies the search and dropdown filters.
func (h *ResourceHandler) SetFilter(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	var filter entity.FilterState
	if err := c.Bind(&filter); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	view, err := table.SetFilter(c.Request().Context(), filter)
	if err != nil {
		return withState(c, err, view)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// OpenDialogRequest opens a create, edit or delete dialog.
type OpenDialogRequest struct {
	Mode string `json:"mode" validate:"required"`
	ID   string `json:"id"`
}

// OpenDialog opens a dialog and returns its token.
func (h *ResourceHandler) OpenDialog(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	var req OpenDialogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	mode, ok := usecase.ParseDialogMode(req.Mode)
	if !ok {
		return domainerrors.ErrInvalidDialogMode.WithDetails(req.Mode)
	}

	dialog, err := table.OpenDialog(mode, req.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, dialog, "")
}

// CloseDialog dismisses a dialog without submitting it.
func (h *ResourceHandler) CloseDialog(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	if err := table.CloseDialog(c.Param("token")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, table.View(), "Dialog closed")
}

// SubmitRequest is the JSON form body of a create or edit dialog.
type SubmitRequest struct {
	Values map[string]string `json:"values"`
}

// Submit sends a create or edit form, as JSON or as multipart with one file.
func (h *ResourceHandler) Submit(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	input, err := formInput(c)
	if err != nil {
		return err
	}

	message, err := table.Submit(c.Request().Context(), c.Param("token"), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, table.View(), message)
}

// ConfirmDelete deletes the record of a delete dialog.
func (h *ResourceHandler) ConfirmDelete(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	message, err := table.ConfirmDelete(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, table.View(), message)
}

// Export downloads the visible rows as csv, pdf or xlsx.
func (h *ResourceHandler) Export(c echo.Context) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("format")
	format, ok := service.ParseExportFormat(raw)
	if !ok {
		return domainerrors.ErrUnsupportedFormat.WithDetails(raw)
	}

	var buf bytes.Buffer
	file, err := table.Export(c.Request().Context(), format, &buf)
	if err != nil {
		return err
	}
	metrics.Exports.WithLabelValues(c.Param("resource"), string(format)).Inc()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))

	return c.Blob(http.StatusOK, file.ContentType, buf.Bytes())
}

func formInput(c echo.Context) (usecase.FormInput, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var req SubmitRequest
		if err := c.Bind(&req); err != nil {
			return usecase.FormInput{}, domainerrors.ErrInvalidInput.WithDetails(err.Error())
		}

		return usecase.FormInput{Values: req.Values}, nil
	}

	if err := c.Request().ParseMultipartForm(maxUploadMemory); err != nil {
		return usecase.FormInput{}, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}
	form := c.Request().MultipartForm

	input := usecase.FormInput{Values: make(map[string]string, len(form.Value))}
	for name, values := range form.Value {
		if len(values) > 0 {
			input.Values[name] = values[0]
		}
	}

	for name, files := range form.File {
		if len(files) == 0 {
			continue
		}
		attachment, err := readAttachment(name, files[0])
		if err != nil {
			return usecase.FormInput{}, err
		}
		input.Attachment = attachment

		break
	}

	return input, nil
}

func readAttachment(field string, header *multipart.FileHeader) (*repository.Attachment, error) {
	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", header.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read upload %s", header.Filename)
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &repository.Attachment{
		Field:       field,
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

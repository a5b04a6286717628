package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "rxconsole/internal/delivery/context"
	"rxconsole/internal/domain/entity"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/errors"
	"rxconsole/internal/usecase"

	"github.com/google/uuid"
)

// FetchErrorPolicy decides what a table shows next to its error after a failed load.
type FetchErrorPolicy int

const (
	// KeepStale keeps the previously loaded page visible under the error.
	KeepStale FetchErrorPolicy = iota
	// ClearOnError empties the table.
	ClearOnError
)

// Definition parametrises the table controller for one entity.
type Definition[T entity.Record] struct {
	Name     string // console resource name, e.g. "drivers"
	Path     string // backend REST path
	Label    string // singular, used in fallback messages
	Search   func(T) []string
	Status   func(T) entity.Status
	Statuses []entity.Status
	Date     func(T) time.Time
	Columns  []string
	Row      func(T) []string
	Form     FormSchema

	OnFetchError FetchErrorPolicy
}

func (d Definition[T]) date(record T) time.Time {
	if d.Date != nil {
		return d.Date(record)
	}

	return record.GetCreatedAt()
}

func (d Definition[T]) allowsStatus(status string) bool {
	if status == "" || strings.EqualFold(status, entity.StatusAll) {
		return true
	}
	if d.Status == nil {
		return false
	}
	for _, s := range d.Statuses {
		if s == entity.ParseStatus(status) {
			return true
		}
	}

	return false
}

func (d Definition[T]) matches(record T, filter entity.FilterState, now time.Time) bool {
	if d.Search != nil && !entity.MatchesSearch(filter.Search, d.Search(record)...) {
		return false
	}
	if d.Status != nil && !d.Status(record).Matches(filter.Status) {
		return false
	}

	return filter.DateRange.Contains(d.date(record), now)
}

// TableDeps are the collaborators shared by every table controller.
type TableDeps struct {
	Logger    *slog.Logger
	Validator *FormValidator
	Exporters []service.Exporter
	Archive   service.ExportArchive  // optional
	Publisher service.EventPublisher // optional
	Now       func() time.Time
}

// Controller is the generic resource table: remote paging, page-local filtering and CRUD dialogs.
type Controller[T entity.Record] struct {
	def       Definition[T]
	repo      repository.ResourceRepository[T]
	logger    *slog.Logger
	validator *FormValidator
	exporters map[service.ExportFormat]service.Exporter
	archive   service.ExportArchive
	publisher service.EventPublisher
	now       func() time.Time

	mu       sync.Mutex
	window   entity.PageWindow[T]
	loaded   bool
	filter   entity.FilterState
	loading  int
	issued   uint64
	applied  uint64
	fetchErr error
	dialog   *usecase.Dialog

	// requested is the page of the latest user-initiated load. Silent
	// reloads target it so an in-flight page change is not lost.
	requested int
}

// NewController creates a table controller for the definition.
func NewController[T entity.Record](def Definition[T], repo repository.ResourceRepository[T], deps TableDeps) *Controller[T] {
	exporters := make(map[service.ExportFormat]service.Exporter, len(deps.Exporters))
	for _, e := range deps.Exporters {
		exporters[e.Format()] = e
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	validator := deps.Validator
	if validator == nil {
		validator = NewFormValidator()
	}

	return &Controller[T]{
		def:       def,
		repo:      repo,
		logger:    logger,
		validator: validator,
		exporters: exporters,
		archive:   deps.Archive,
		publisher: deps.Publisher,
		now:       now,
		filter:    entity.DefaultFilterState(),
		requested: 1,
	}
}

func (c *Controller[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger).With(slog.String("resource", c.def.Name))
}

// Info describes the table.
func (c *Controller[T]) Info() usecase.ResourceInfo {
	return usecase.ResourceInfo{
		Name:     c.def.Name,
		Label:    c.def.Label,
		Statuses: c.def.Statuses,
		Fields:   c.def.Form.Info(),
		Columns:  c.def.Columns,
	}
}

// Load fetches a page with the loading indicator shown.
func (c *Controller[T]) Load(ctx context.Context, page int) (*usecase.TableView, error) {
	if page < 1 {
		return nil, domainerrors.ErrInvalidPage
	}

	if err := c.fetch(ctx, page, false); err != nil {
		return c.View(), err
	}

	return c.View(), nil
}

// Retry re-issues the load of the current page.
func (c *Controller[T]) Retry(ctx context.Context) (*usecase.TableView, error) {
	c.mu.Lock()
	page := c.requested
	c.mu.Unlock()

	return c.Load(ctx, page)
}

// fetch loads a page. Responses older than the last applied one are discarded.
func (c *Controller[T]) fetch(ctx context.Context, page int, silent bool) error {
	c.mu.Lock()
	c.issued++
	gen := c.issued
	if !silent {
		c.loading++
		c.requested = page
	}
	c.mu.Unlock()

	window, err := c.repo.List(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !silent {
		c.loading--
	}

	if gen < c.applied {
		c.log(ctx).Debug("Discarding superseded page response",
			slog.Int("page", page),
			slog.Uint64("generation", gen),
			slog.Uint64("applied", c.applied))

		return nil
	}
	c.applied = gen

	if err != nil {
		fetchErr := c.fetchError(err)
		c.fetchErr = fetchErr
		c.filter.Page = page
		if c.def.OnFetchError == ClearOnError {
			c.window = entity.PageWindow[T]{Page: page}
			c.loaded = false
		}
		c.log(ctx).Warn("Failed to load page", slog.Int("page", page), slog.Any("error", err))

		return fetchErr
	}

	c.window = window
	c.loaded = true
	c.fetchErr = nil
	c.filter.Page = window.Page

	return nil
}

func (c *Controller[T]) fetchError(err error) error {
	if errors.Is(err, domainerrors.ErrSessionMissing) || errors.Is(err, domainerrors.ErrSessionExpired) {
		return err
	}

	return domainerrors.NewRemoteFetchError(pluralLabel(c.def.Label), repository.ServerMessage(err), err)
}

// SetFilter applies the criteria to the loaded page. Changing any criterion returns to page 1.
func (c *Controller[T]) SetFilter(ctx context.Context, filter entity.FilterState) (*usecase.TableView, error) {
	filter = filter.Normalize()
	if _, ok := entity.ParseDateRange(string(filter.DateRange)); !ok {
		return nil, domainerrors.ErrInvalidFilter.WithDetails(fmt.Sprintf("date range %q", filter.DateRange))
	}
	if !c.def.allowsStatus(filter.Status) {
		return nil, domainerrors.ErrInvalidFilter.WithDetails(fmt.Sprintf("status %q", filter.Status))
	}

	c.mu.Lock()
	changed := !c.filter.SameCriteria(filter)
	reload := changed && (c.filter.Page != 1 || c.requested != 1)
	page := c.filter.Page
	if changed {
		page = 1
	}
	c.filter = entity.FilterState{
		Search:    filter.Search,
		Status:    strings.ToLower(filter.Status),
		DateRange: filter.DateRange,
		Page:      page,
	}
	c.mu.Unlock()

	if reload {
		return c.Load(ctx, 1)
	}

	return c.View(), nil
}

// View returns the visible subset of the loaded page and the table state.
func (c *Controller[T]) View() *usecase.TableView {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := c.visibleLocked()
	items := make([]entity.Record, 0, len(visible))
	for _, record := range visible {
		items = append(items, record)
	}

	view := &usecase.TableView{
		Resource: c.def.Name,
		Label:    c.def.Label,
		Items:    items,
		Page:     pageInfo(c.window),
		Buttons:  PageButtons(c.window.Page, c.window.TotalPages),
		Filter:   c.filter,
		Loading:  c.loading > 0,
		Loaded:   c.loaded,
	}
	if c.fetchErr != nil {
		view.Error = errorMessage(c.fetchErr)
		view.Retryable = true
	}
	if c.dialog != nil {
		dialog := *c.dialog
		view.Dialog = &dialog
	}

	return view
}

func (c *Controller[T]) visibleLocked() []T {
	now := c.now()
	visible := make([]T, 0, len(c.window.Items))
	for _, record := range c.window.Items {
		if c.def.matches(record, c.filter, now) {
			visible = append(visible, record)
		}
	}

	return visible
}

func (c *Controller[T]) findLocked(id string) (T, bool) {
	for _, record := range c.window.Items {
		if record.GetID() == id {
			return record, true
		}
	}

	var zero T

	return zero, false
}

// OpenDialog opens a create, edit or delete dialog, replacing any open one.
func (c *Controller[T]) OpenDialog(mode usecase.DialogMode, recordID string) (*usecase.Dialog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialog := usecase.Dialog{Token: uuid.NewString(), Mode: mode}
	switch mode {
	case usecase.DialogCreate:
		dialog.Values = c.def.Form.Defaults()
	case usecase.DialogEdit, usecase.DialogDelete:
		record, ok := c.findLocked(recordID)
		if !ok {
			return nil, domainerrors.ErrRecordNotFound
		}
		dialog.RecordID = recordID
		if mode == usecase.DialogEdit {
			values, err := c.def.Form.Prefill(record)
			if err != nil {
				return nil, errors.Wrap(err, "failed to prefill form")
			}
			dialog.Values = values
		}
	default:
		return nil, domainerrors.ErrInvalidDialogMode
	}

	c.dialog = &dialog
	opened := dialog

	return &opened, nil
}

// CloseDialog closes the dialog if it is the one identified by token.
func (c *Controller[T]) CloseDialog(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dialog == nil || c.dialog.Token != token {
		return domainerrors.ErrDialogNotOpen
	}
	c.dialog = nil

	return nil
}

func (c *Controller[T]) openDialog(token string, modes ...usecase.DialogMode) (usecase.Dialog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dialog == nil || c.dialog.Token != token {
		return usecase.Dialog{}, domainerrors.ErrDialogNotOpen
	}
	for _, m := range modes {
		if c.dialog.Mode == m {
			return *c.dialog, nil
		}
	}

	return usecase.Dialog{}, domainerrors.ErrInvalidDialogMode
}

// closeIfCurrent closes the dialog only if it is still the one identified by token.
func (c *Controller[T]) closeIfCurrent(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dialog != nil && c.dialog.Token == token {
		c.dialog = nil
	}
}

// ConfirmDelete deletes the record of an open delete dialog, removes it locally and reloads the page silently.
func (c *Controller[T]) ConfirmDelete(ctx context.Context, token string) (string, error) {
	dialog, err := c.openDialog(token, usecase.DialogDelete)
	if err != nil {
		return "", err
	}

	message, err := c.repo.Delete(ctx, dialog.RecordID)
	if err != nil {
		c.log(ctx).Warn("Failed to delete record", slog.String("id", dialog.RecordID), slog.Any("error", err))

		return "", c.mutationError("delete", err)
	}

	c.mu.Lock()
	if window, removed := entity.Without(c.window, dialog.RecordID); removed {
		c.window = window
	}
	page := c.requested
	if c.window.Page == page && len(c.window.Items) == 0 && page > 1 {
		page--
	}
	c.mu.Unlock()
	c.closeIfCurrent(token)
	c.audit(ctx, "delete", dialog.RecordID)

	c.reload(ctx, page)

	return successMessage(message, fmt.Sprintf("%s deleted", capitalize(c.def.Label))), nil
}

// Submit validates the form locally, then creates or updates the record.
// The dialog closes on success only if it is still the open one.
func (c *Controller[T]) Submit(ctx context.Context, token string, input usecase.FormInput) (string, error) {
	dialog, err := c.openDialog(token, usecase.DialogCreate, usecase.DialogEdit)
	if err != nil {
		return "", err
	}

	if err := c.validator.ValidateInput(c.def.Form, input, dialog.Mode == usecase.DialogCreate); err != nil {
		return "", err
	}
	payload := c.def.Form.Payload(input)

	var (
		message string
		action  string
	)
	if dialog.Mode == usecase.DialogCreate {
		action = "create"
		message, err = c.repo.Create(ctx, payload)
	} else {
		action = "update"
		message, err = c.repo.Update(ctx, dialog.RecordID, payload)
	}
	if err != nil {
		c.log(ctx).Warn("Failed to save record",
			slog.String("action", action),
			slog.String("id", dialog.RecordID),
			slog.Any("error", err))

		return "", c.mutationError(action, err)
	}

	c.closeIfCurrent(token)
	c.audit(ctx, action, dialog.RecordID)

	c.mu.Lock()
	page := c.requested
	c.mu.Unlock()
	c.reload(ctx, page)

	return successMessage(message, fmt.Sprintf("%s %sd", capitalize(c.def.Label), action)), nil
}

// audit publishes a completed mutation. Publishing failures are logged only.
func (c *Controller[T]) audit(ctx context.Context, action, recordID string) {
	if c.publisher == nil {
		return
	}

	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Action:     action,
		Resource:   c.def.Name,
		OccurredAt: c.now().UTC(),
	}
	if recordID != "" {
		event.RecordIDs = []string{recordID}
	}

	if err := c.publisher.PublishAuditEvent(ctx, event); err != nil {
		c.log(ctx).Warn("Failed to publish audit event", slog.String("action", action), slog.Any("error", err))
	}
}

// reload resynchronises the page after a mutation. Failures surface in the view only.
func (c *Controller[T]) reload(ctx context.Context, page int) {
	if err := c.fetch(ctx, page, true); err != nil {
		c.log(ctx).Warn("Reload after mutation failed", slog.Int("page", page), slog.Any("error", err))
	}
}

func (c *Controller[T]) mutationError(action string, err error) error {
	if errors.Is(err, domainerrors.ErrSessionMissing) || errors.Is(err, domainerrors.ErrSessionExpired) {
		return err
	}

	return domainerrors.NewRemoteMutationError(action, c.def.Label, repository.ServerMessage(err), err)
}

// Rows projects the visible subset into export rows.
func (c *Controller[T]) Rows() service.ExportRows {
	c.mu.Lock()
	visible := c.visibleLocked()
	c.mu.Unlock()

	rows := service.ExportRows{
		Columns: append([]string(nil), c.def.Columns...),
		Values:  make([][]string, 0, len(visible)),
	}
	for _, record := range visible {
		rows.Values = append(rows.Values, c.def.Row(record))
	}

	return rows
}

// Export writes the visible subset. Unfetched pages are never exported.
func (c *Controller[T]) Export(ctx context.Context, format service.ExportFormat, w io.Writer) (*usecase.ExportFile, error) {
	exporter, ok := c.exporters[format]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFormat.WithDetails(string(format))
	}

	rows := c.Rows()
	now := c.now()
	title := fmt.Sprintf("%s (%s)", capitalize(pluralLabel(c.def.Label)), now.Format("2006-01-02"))

	var buf bytes.Buffer
	if err := exporter.Write(&buf, title, rows); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s export", format)
	}

	file := &usecase.ExportFile{
		Name:        fmt.Sprintf("%s-%s.%s", c.def.Name, now.Format("20060102-150405"), format),
		ContentType: format.ContentType(),
		Rows:        rows.Len(),
	}

	if c.archive != nil {
		key := c.def.Name + "/" + file.Name
		if err := c.archive.Save(ctx, key, file.ContentType, buf.Bytes()); err != nil {
			c.log(ctx).Warn("Failed to archive export", slog.String("key", key), slog.Any("error", err))
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return nil, errors.Wrap(err, "failed to write export")
	}

	return file, nil
}

func errorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

func successMessage(server, fallback string) string {
	if server != "" {
		return server
	}

	return fallback
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func pluralLabel(label string) string {
	switch {
	case strings.HasSuffix(label, "y") && !strings.HasSuffix(label, "ay"):
		return label[:len(label)-1] + "ies"
	case strings.HasSuffix(label, "s"):
		return label + "es"
	default:
		return label + "s"
	}
}

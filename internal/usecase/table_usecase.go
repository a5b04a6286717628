package usecase

import (
	"context"
	"io"

	"rxconsole/internal/domain/entity"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
)

// DialogMode is the kind of CRUD dialog opened over a table.
type DialogMode string

const (
	DialogCreate DialogMode = "create"
	DialogEdit   DialogMode = "edit"
	DialogDelete DialogMode = "delete"
)

// ParseDialogMode accepts create, edit or delete.
func ParseDialogMode(raw string) (DialogMode, bool) {
	switch m := DialogMode(raw); m {
	case DialogCreate, DialogEdit, DialogDelete:
		return m, true
	default:
		return "", false
	}
}

// Dialog is the open create/edit/delete dialog of a table.
// Token identifies this particular opening; a later dialog gets a new one.
type Dialog struct {
	Token    string            `json:"token"`
	Mode     DialogMode        `json:"mode"`
	RecordID string            `json:"recordId,omitempty"`
	Values   map[string]string `json:"values,omitempty"`
}

// FormInput is a submitted create/edit form.
type FormInput struct {
	Values     map[string]string
	Attachment *repository.Attachment
}

// FormField describes one input of a resource form.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// ResourceInfo describes a registered table.
type ResourceInfo struct {
	Name     string          `json:"name"`
	Label    string          `json:"label"`
	Statuses []entity.Status `json:"statuses,omitempty"`
	Fields   []FormField     `json:"fields,omitempty"`
	Columns  []string        `json:"columns"`
}

// PageInfo is the pagination metadata of the loaded window.
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PageButton is one entry of the pagination bar; Ellipsis entries carry no page.
type PageButton struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// TableView is a snapshot of a table: the visible subset of the loaded page and its surrounding state.
type TableView struct {
	Resource  string             `json:"resource"`
	Label     string             `json:"label"`
	Items     []entity.Record    `json:"items"`
	Page      PageInfo           `json:"page"`
	Buttons   []PageButton       `json:"buttons"`
	Filter    entity.FilterState `json:"filter"`
	Loading   bool               `json:"loading"`
	Loaded    bool               `json:"loaded"`
	Error     string             `json:"error,omitempty"`
	Retryable bool               `json:"retryable,omitempty"`
	Dialog    *Dialog            `json:"dialog,omitempty"`
}

// ExportFile is a rendered export of the visible rows.
type ExportFile struct {
	Name        string
	ContentType string
	Rows        int
}

// TableController drives one entity's index page.
type TableController interface {
	Info() ResourceInfo

	// Load fetches the given page; page must be 1 or greater.
	Load(ctx context.Context, page int) (*TableView, error)

	// Retry re-issues the load of the current page.
	Retry(ctx context.Context) (*TableView, error)

	// SetFilter applies search and dropdown filters to the loaded page.
	SetFilter(ctx context.Context, filter entity.FilterState) (*TableView, error)

	View() *TableView

	OpenDialog(mode DialogMode, recordID string) (*Dialog, error)
	CloseDialog(token string) error

	// ConfirmDelete deletes the record of an open delete dialog.
	ConfirmDelete(ctx context.Context, token string) (string, error)

	// Submit validates and sends the form of an open create/edit dialog.
	Submit(ctx context.Context, token string, input FormInput) (string, error)

	// Export writes the visible rows in the given format.
	Export(ctx context.Context, format service.ExportFormat, w io.Writer) (*ExportFile, error)
}

// TableRegistry looks up table controllers by resource name.
type TableRegistry interface {
	Get(name string) (TableController, error)
	List() []ResourceInfo
}

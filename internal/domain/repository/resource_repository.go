// Package repository defines the contracts of the backend REST collaborator.
package repository

import (
	"context"
	"fmt"

	"rxconsole/internal/domain/entity"
	"rxconsole/internal/errors"
)

// Attachment is a file submitted with a form, e.g. a pharmacy logo or blog image.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Payload is a create/update body. It is sent as multipart when Attachment is set, JSON otherwise.
type Payload struct {
	Values     map[string]any
	Attachment *Attachment
}

// IsMultipart reports whether the payload carries a file.
func (p Payload) IsMultipart() bool {
	return p.Attachment != nil
}

// ResourceRepository is the REST contract of one admin resource.
type ResourceRepository[T entity.Record] interface {
	// List fetches one page. Page numbers start at 1.
	List(ctx context.Context, page int) (entity.PageWindow[T], error)

	// Create posts a new record and returns the server message.
	Create(ctx context.Context, payload Payload) (string, error)

	// Update patches an existing record and returns the server message.
	Update(ctx context.Context, id string, payload Payload) (string, error)

	// Delete removes a record and returns the server message.
	Delete(ctx context.Context, id string) (string, error)
}

// APIError is a non-success answer from the backend.
type APIError struct {
	StatusCode    int
	ServerMessage string
}

func (e *APIError) Error() string {
	if e.ServerMessage == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.ServerMessage)
}

// ServerMessage extracts the backend-provided message from err, if any.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ServerMessage
	}

	return ""
}

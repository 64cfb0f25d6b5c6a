package xwrap

import (
	"context"
	"time"
)

// Wrapper is a named, persisted mapping learned from training examples.
type Wrapper struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Mapping     Mapping   `json:"mapping"`
	MappingHash string    `json:"mappingHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the wrapper contains invalid fields.
func (w *Wrapper) Validate() error {
	if w.Name == "" {
		return Errorf(EINVALID, "wrapper name required")
	}
	return w.Mapping.Validate()
}

// WrapperService represents a service for managing wrappers.
type WrapperService interface {
	// CreateWrapper creates a new wrapper.
	CreateWrapper(ctx context.Context, wrapper *Wrapper) error

	// FindWrapperByID retrieves a wrapper by ID.
	// Returns ENOTFOUND if wrapper does not exist.
	FindWrapperByID(ctx context.Context, id string) (*Wrapper, error)

	// FindWrappers retrieves wrappers matching the filter.
	FindWrappers(ctx context.Context, filter WrapperFilter) ([]*Wrapper, error)

	// UpdateWrapper updates an existing wrapper.
	// Returns ENOTFOUND if wrapper does not exist.
	UpdateWrapper(ctx context.Context, id string, upd WrapperUpdate) (*Wrapper, error)

	// DeleteWrapper permanently removes a wrapper and all associated records.
	// Returns ENOTFOUND if wrapper does not exist.
	DeleteWrapper(ctx context.Context, id string) error
}

// WrapperFilter represents a filter for FindWrappers.
type WrapperFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// WrapperUpdate represents fields that can be updated on a wrapper.
type WrapperUpdate struct {
	Name    *string `json:"name"`
	Mapping Mapping `json:"mapping"`
}

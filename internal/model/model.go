// Package model holds the row types stored by the repositories and the
// per-operation request payloads accepted by the HTTP layer.
//
// Request types carry validator tags and implement Validate() so the
// handler pipeline can reject bad input before it reaches the store.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their JSON name ("draw_date", not "DrawDate").
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			name = fld.Tag.Get("param")
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// MessageResponse confirms a write that returns no row.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse confirms an insert and carries the new identifier.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ListRequest is the (empty) payload of collection reads.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

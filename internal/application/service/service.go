package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
	"github.com/swarnaabhushan/backoffice-api/pkg/daterange"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
	"github.com/swarnaabhushan/backoffice-api/pkg/validation"
)

var validate = validation.New()

// validateInput runs struct validation and reports every failing field
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.FromValidation(verrs)
	}
	return apperror.NewInvalidInputError("Invalid input")
}

// parseID parses a public identifier supplied by a client
func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperror.NewInvalidInputError("Invalid " + field)
	}
	return id, nil
}

// parseOptionalID returns nil for an empty string
func parseOptionalID(raw, field string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(raw, field)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// resolveRange turns a preset name into bounds; an empty name means no bounds
func resolveRange(preset string, now time.Time) (*daterange.Range, error) {
	if preset == "" {
		return nil, nil
	}
	r, err := daterange.Resolve(daterange.Preset(preset), now)
	if err != nil {
		return nil, apperror.NewInvalidInputError("Invalid range: " + preset)
	}
	return &r, nil
}

// pageParams normalises page and limit from a search request
func pageParams(page, limit int) *pagination.Params {
	p := &pagination.Params{Page: page, Limit: limit}
	p.Validate()
	return p
}

// retry runs attempt until it reports done, at most max times. It returns
// false when every attempt lost a race.
func retry(ctx context.Context, max int, attempt func(n int) (bool, error)) (bool, error) {
	if max < 1 {
		max = 1
	}
	for n := 1; n <= max; n++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		done, err := attempt(n)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}

// ErrConcurrentBillUpdate is returned when a bill kept changing underneath a write
var ErrConcurrentBillUpdate = apperror.NewConflictError("Bill was updated concurrently, please retry")

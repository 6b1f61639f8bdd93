package service

import (
	"context"

	"github.com/Terracotich/apitest/internal/errors"
)

// existsFunc is the existence-check capability a referential check needs
// from a repository.
type existsFunc func(ctx context.Context, id int64) (bool, error)

// ensureExists verifies that a referenced entity is present, failing
// with a not-found error naming the reference. Callers check references
// in declaration order and stop at the first missing one.
func ensureExists(ctx context.Context, exists existsFunc, resource string, id int64) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewNotFound(resource, id)
	}
	return nil
}

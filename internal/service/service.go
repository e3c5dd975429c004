// Package service holds the JobHub domain operations. Services return
// *errors.DomainError for every failure a client can act on; anything else is
// an internal error.
package service

import (
	stderrors "errors"

	"jobhub/internal/errors"
	"jobhub/internal/repository"
)

// notFoundOr maps a missing row to a NotFound error with msg and wraps any
// other failure as Internal.
func notFoundOr(err error, msg, op string) error {
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound(msg)
	}
	return errors.Internal(op, err)
}

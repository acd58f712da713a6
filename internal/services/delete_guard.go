package services

import (
	"context"
	"fmt"

	"airportops/internal/domain"
)

// DeleteOutcome is the tri-state result of a guarded delete. It is computed
// per call and never persisted.
type DeleteOutcome int

const (
	DeleteNotFound DeleteOutcome = iota
	Deleted
	DeleteConflict
)

func (o DeleteOutcome) String() string {
	switch o {
	case DeleteNotFound:
		return "not found"
	case Deleted:
		return "deleted"
	case DeleteConflict:
		return "conflict"
	default:
		return fmt.Sprintf("DeleteOutcome(%d)", int(o))
	}
}

// DeletableRepository is the slice of a repository the guard needs. Delete
// returning (false, nil) means the row is still referenced by dependent
// rows and was not removed.
type DeletableRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// DeleteGuard wraps entity deletion so a foreign-key constraint failure
// surfaces as a distinct Conflict outcome instead of a generic error.
// Existence is checked before the delete is attempted, for every entity.
type DeleteGuard struct {
	Entity string
	Repo   DeletableRepository
}

// Delete resolves to exactly one of NotFound, Deleted or Conflict. Only
// repository failures (connection loss and the like) return a non-nil error.
func (g DeleteGuard) Delete(ctx context.Context, id int64) (DeleteOutcome, error) {
	exists, err := g.Repo.Exists(ctx, id)
	if err != nil {
		return DeleteNotFound, domain.InternalError{Msg: "existence check failed", Err: err}
	}
	if !exists {
		return DeleteNotFound, nil
	}

	ok, err := g.Repo.Delete(ctx, id)
	if err != nil {
		return DeleteNotFound, domain.InternalError{Msg: "delete failed", Err: err}
	}
	if !ok {
		return DeleteConflict, nil
	}
	return Deleted, nil
}

// ConflictMessage is the user-facing body for a Conflict outcome.
func (g DeleteGuard) ConflictMessage() string {
	return domain.ConflictError{Resource: g.Entity}.Error()
}

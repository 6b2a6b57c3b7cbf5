package leave

import (
	"errors"

	leaveerrors "go-leave/internal/leave/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrRecordNotFound):
		return leaveerrors.ErrLeaveNotFound
	case errors.Is(err, ErrDuplicateRecord):
		return leaveerrors.ErrLeaveAlreadyExists
	}

	return err
}

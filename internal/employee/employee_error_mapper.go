package employee

import (
	"errors"

	employeeerrors "go-leave/internal/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, ErrDuplicateRecord):
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}

package employeeerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee with the same id already exists",
		http.StatusConflict,
	)
	ErrNegativeBalance = apperror.New(
		apperror.CodeInvalidState,
		"leave balance cannot go negative",
		http.StatusUnprocessableEntity,
	)
)

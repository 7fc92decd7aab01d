package http

import (
	"errors"
	"net/http"

	"github.com/aleksmv/go-habit-tracker/internal/service"
	"github.com/aleksmv/go-habit-tracker/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenInvalid:       http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusUnprocessableEntity,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTokenNotFound:      http.StatusUnauthorized,
	store.ErrHabitNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

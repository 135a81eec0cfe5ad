package services

import (
	"columns-cms/logger"
	"columns-cms/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storageError logs a persistence failure and wraps it as models.ErrorInternalServer.
func storageError(err error, op string) error {
	logger.Log.WithError(err).WithField("op", op).Error("storage failure")
	return models.ErrorInternalServer{Err: errors.Wrap(err, op)}
}

// lookupError maps a failed single-record load to NotFound or a storage error.
func lookupError(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Resource: resource, ID: id}
	}
	return storageError(err, "load "+resource)
}

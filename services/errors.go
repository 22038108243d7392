package services

import (
	"errors"
	"fmt"
)

// NotFoundError covers every referenced entity that does not exist or is
// soft-deleted. Handlers map it to 404.
type NotFoundError struct {
	Entidad string
	ID      uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s no encontrado", e.Entidad)
	}
	return fmt.Sprintf("%s con id %d no encontrado", e.Entidad, e.ID)
}

// ConflictError covers invariant violations: double booking, duplicate pago,
// duplicate transaccion id, insufficient stock. Handlers map it to 409.
type ConflictError struct {
	Mensaje string
}

func (e *ConflictError) Error() string {
	return e.Mensaje
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var cf *ConflictError
	return errors.As(err, &cf)
}

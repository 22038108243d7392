package services

import (
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Entidad: "Peluquero", ID: 7}
	if err.Error() != "Peluquero con id 7 no encontrado" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	sinID := &NotFoundError{Entidad: "Asociación peluquero-servicio"}
	if sinID.Error() != "Asociación peluquero-servicio no encontrado" {
		t.Fatalf("unexpected message: %q", sinID.Error())
	}
}

func TestErrorClassification(t *testing.T) {
	nf := fmt.Errorf("wrapped: %w", &NotFoundError{Entidad: "Cita", ID: 1})
	if !IsNotFound(nf) {
		t.Fatal("expected wrapped NotFoundError to classify as not found")
	}
	if IsConflict(nf) {
		t.Fatal("NotFoundError must not classify as conflict")
	}

	cf := fmt.Errorf("wrapped: %w", &ConflictError{Mensaje: MensajeCitaDuplicada})
	if !IsConflict(cf) {
		t.Fatal("expected wrapped ConflictError to classify as conflict")
	}
	if IsNotFound(cf) {
		t.Fatal("ConflictError must not classify as not found")
	}
}

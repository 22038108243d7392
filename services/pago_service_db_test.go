package services

import (
	"testing"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
)

func TestOnePagoPerCita(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")
	cita := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, time.Date(2025, 10, 26, 14, 0, 0, 0, time.UTC))

	pago, err := CrearPago(db, CrearPagoInput{CitaID: cita.ID, Monto: 50.00})
	if err != nil {
		t.Fatalf("first pago should succeed: %v", err)
	}
	if pago.Estado != models.PagoPendiente {
		t.Fatalf("new pago should default to Pendiente, got %q", pago.Estado)
	}

	_, err = CrearPago(db, CrearPagoInput{CitaID: cita.ID, Monto: 60.00})
	if !IsConflict(err) {
		t.Fatalf("second pago for same cita should conflict, got %v", err)
	}
	if err.Error() != MensajePagoDuplicado {
		t.Fatalf("unexpected conflict message: %q", err.Error())
	}
}

func TestPagoForUnknownCita(t *testing.T) {
	db := setupTestDB(t)

	_, err := CrearPago(db, CrearPagoInput{CitaID: 42, Monto: 50.00})
	if !IsNotFound(err) {
		t.Fatalf("pago for missing cita should be NotFound, got %v", err)
	}
}

func TestTransaccionIDUniqueness(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")
	citaA := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, time.Date(2025, 10, 26, 14, 0, 0, 0, time.UTC))
	citaB := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, time.Date(2025, 10, 26, 15, 0, 0, 0, time.UTC))

	txn := "TXN-001"
	primero, err := CrearPago(db, CrearPagoInput{CitaID: citaA.ID, Monto: 50.00, TransaccionID: &txn})
	if err != nil {
		t.Fatalf("first pago should succeed: %v", err)
	}

	_, err = CrearPago(db, CrearPagoInput{CitaID: citaB.ID, Monto: 50.00, TransaccionID: &txn})
	if !IsConflict(err) {
		t.Fatalf("duplicate transaccion id should conflict, got %v", err)
	}

	// Soft-deleting the first pago does not free the transaccion id.
	if err := EliminarPago(db, primero.ID); err != nil {
		t.Fatalf("remove should succeed: %v", err)
	}
	_, err = CrearPago(db, CrearPagoInput{CitaID: citaB.ID, Monto: 50.00, TransaccionID: &txn})
	if !IsConflict(err) {
		t.Fatalf("transaccion id of a soft-deleted pago must stay blocked, got %v", err)
	}
}

func TestUpdatePagoExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")
	cita := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, time.Date(2025, 10, 26, 14, 0, 0, 0, time.UTC))

	txn := "TXN-002"
	pago, err := CrearPago(db, CrearPagoInput{CitaID: cita.ID, Monto: 50.00, TransaccionID: &txn})
	if err != nil {
		t.Fatalf("pago should succeed: %v", err)
	}

	estado := models.PagoCompletado
	actualizado, err := ActualizarPago(db, pago.ID, ActualizarPagoInput{Estado: &estado, TransaccionID: &txn})
	if err != nil {
		t.Fatalf("re-submitting its own transaccion id must not conflict: %v", err)
	}
	if actualizado.Estado != models.PagoCompletado {
		t.Fatalf("estado not applied: %q", actualizado.Estado)
	}
}

func TestStatsConsistency(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")

	montos := []float64{10, 20, 30, 40, 50}
	estados := []string{
		models.PagoCompletado, models.PagoCompletado,
		models.PagoPendiente, models.PagoFallido, models.PagoPendiente,
	}
	base := time.Date(2025, 10, 26, 9, 0, 0, 0, time.UTC)
	for i, monto := range montos {
		cita := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, base.Add(time.Duration(i)*time.Hour))
		pago, err := CrearPago(db, CrearPagoInput{CitaID: cita.ID, Monto: monto})
		if err != nil {
			t.Fatalf("pago %d failed: %v", i, err)
		}
		estado := estados[i]
		if _, err := ActualizarPago(db, pago.ID, ActualizarPagoInput{Estado: &estado}); err != nil {
			t.Fatalf("estado update %d failed: %v", i, err)
		}
	}

	pagos, meta, stats, err := ListarPagos(db, FiltroPagos{Pagina: 1, Limite: 2})
	if err != nil {
		t.Fatalf("ListarPagos failed: %v", err)
	}
	if len(pagos) != 2 {
		t.Fatalf("expected one page of 2, got %d", len(pagos))
	}
	if meta.Total != 5 || meta.TotalPaginas != 3 || !meta.HaySiguiente || meta.HayAnterior {
		t.Fatalf("meta wrong: %+v", meta)
	}

	// Stats cover the whole filtered set, not the page.
	if stats.Completados+stats.Pendientes+stats.Fallidos != meta.Total {
		t.Fatalf("status counts %d+%d+%d must equal total %d",
			stats.Completados, stats.Pendientes, stats.Fallidos, meta.Total)
	}
	if stats.TotalMonto != 150 {
		t.Fatalf("expected totalMonto 150, got %f", stats.TotalMonto)
	}
	if stats.Promedio != 30 {
		t.Fatalf("expected promedio 30, got %f", stats.Promedio)
	}
}

func TestStatsFiltered(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")

	base := time.Date(2025, 10, 26, 9, 0, 0, 0, time.UTC)
	citaA := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, base)
	citaB := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, base.Add(time.Hour))

	pagoA, _ := CrearPago(db, CrearPagoInput{CitaID: citaA.ID, Monto: 100})
	completado := models.PagoCompletado
	if _, err := ActualizarPago(db, pagoA.ID, ActualizarPagoInput{Estado: &completado}); err != nil {
		t.Fatalf("estado update failed: %v", err)
	}
	if _, err := CrearPago(db, CrearPagoInput{CitaID: citaB.ID, Monto: 40}); err != nil {
		t.Fatalf("second pago failed: %v", err)
	}

	_, meta, stats, err := ListarPagos(db, FiltroPagos{Estado: models.PagoCompletado})
	if err != nil {
		t.Fatalf("ListarPagos failed: %v", err)
	}
	if meta.Total != 1 {
		t.Fatalf("estado filter should match 1 pago, got %d", meta.Total)
	}
	if stats.TotalMonto != 100 || stats.Completados != 1 || stats.Pendientes != 0 {
		t.Fatalf("filtered stats wrong: %+v", stats)
	}
}

func TestBusquedaPorCliente(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")

	cita, err := CrearCita(db, CrearCitaInput{
		FechaHora:     time.Date(2025, 10, 26, 14, 0, 0, 0, time.UTC),
		PeluqueroID:   peluquero.ID,
		ServicioID:    servicio.ID,
		NombreCliente: "Marcela Ruiz",
		EmailCliente:  "marcela@example.com",
	})
	if err != nil {
		t.Fatalf("cita failed: %v", err)
	}
	if _, err := CrearPago(db, CrearPagoInput{CitaID: cita.ID, Monto: 75}); err != nil {
		t.Fatalf("pago failed: %v", err)
	}

	pagos, meta, _, err := ListarPagos(db, FiltroPagos{Busqueda: "marcela"})
	if err != nil {
		t.Fatalf("ListarPagos failed: %v", err)
	}
	if meta.Total != 1 || len(pagos) != 1 {
		t.Fatalf("case-insensitive search should match, got total=%d", meta.Total)
	}
	if pagos[0].Cita.NombreCliente != "Marcela Ruiz" {
		t.Fatalf("cita relation not preloaded: %+v", pagos[0].Cita)
	}

	_, meta, _, err = ListarPagos(db, FiltroPagos{Busqueda: "nadie"})
	if err != nil {
		t.Fatalf("ListarPagos failed: %v", err)
	}
	if meta.Total != 0 {
		t.Fatalf("unmatched search should be empty, got %d", meta.Total)
	}
}

func TestTotalPorRango(t *testing.T) {
	db := setupTestDB(t)
	peluquero := crearPeluqueroDePrueba(t, db, "Juan")
	servicio := crearServicioDePrueba(t, db, "Corte clásico")

	base := time.Date(2025, 10, 26, 9, 0, 0, 0, time.UTC)
	dentro := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	fuera := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)

	citaA := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, base)
	citaB := crearCitaDePrueba(t, db, peluquero.ID, servicio.ID, base.Add(time.Hour))
	if _, err := CrearPago(db, CrearPagoInput{CitaID: citaA.ID, Monto: 80, PagadoEn: &dentro}); err != nil {
		t.Fatalf("pago failed: %v", err)
	}
	if _, err := CrearPago(db, CrearPagoInput{CitaID: citaB.ID, Monto: 999, PagadoEn: &fuera}); err != nil {
		t.Fatalf("pago failed: %v", err)
	}

	total, err := TotalPorRango(db,
		time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 31, 23, 59, 59, 0, time.UTC))
	if err != nil {
		t.Fatalf("TotalPorRango failed: %v", err)
	}
	if total != 80 {
		t.Fatalf("expected 80 inside the range, got %f", total)
	}

	vacio, err := TotalPorRango(db,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("TotalPorRango failed: %v", err)
	}
	if vacio != 0 {
		t.Fatalf("empty range must sum to 0, got %f", vacio)
	}
}

package services

import (
	"sync"
	"testing"
)

func TestStockNeverNegative(t *testing.T) {
	db := setupTestDB(t)

	producto, err := CrearProducto(db, CrearProductoInput{Nombre: "Cera moldeadora", Precio: 12.50, Stock: 3})
	if err != nil {
		t.Fatalf("producto failed: %v", err)
	}

	_, err = AjustarStock(db, producto.ID, -5)
	if !IsConflict(err) {
		t.Fatalf("overselling should conflict, got %v", err)
	}
	if err.Error() != MensajeStockInsuficiente {
		t.Fatalf("unexpected conflict message: %q", err.Error())
	}

	sinCambios, err := ObtenerProducto(db, producto.ID)
	if err != nil {
		t.Fatalf("producto should still resolve: %v", err)
	}
	if sinCambios.Stock != 3 {
		t.Fatalf("failed adjustment must not mutate stock, got %d", sinCambios.Stock)
	}
}

func TestStockAdjustments(t *testing.T) {
	db := setupTestDB(t)

	producto, err := CrearProducto(db, CrearProductoInput{Nombre: "Champú", Precio: 8.00, Stock: 10})
	if err != nil {
		t.Fatalf("producto failed: %v", err)
	}

	vendido, err := AjustarStock(db, producto.ID, -4)
	if err != nil {
		t.Fatalf("sale should succeed: %v", err)
	}
	if vendido.Stock != 6 {
		t.Fatalf("expected stock 6 after sale, got %d", vendido.Stock)
	}

	repuesto, err := AjustarStock(db, producto.ID, 10)
	if err != nil {
		t.Fatalf("restock should succeed: %v", err)
	}
	if repuesto.Stock != 16 {
		t.Fatalf("expected stock 16 after restock, got %d", repuesto.Stock)
	}

	if _, err := AjustarStock(db, 999, -1); !IsNotFound(err) {
		t.Fatalf("missing producto should be NotFound, got %v", err)
	}
}

func TestConcurrentStockAdjustments(t *testing.T) {
	db := setupTestDB(t)

	producto, err := CrearProducto(db, CrearProductoInput{Nombre: "Aceite para barba", Precio: 15.00, Stock: 5})
	if err != nil {
		t.Fatalf("producto failed: %v", err)
	}

	// 10 concurrent unit sales against stock 5: the row lock must serialize
	// them so exactly 5 succeed.
	const ventas = 10
	var wg sync.WaitGroup
	errs := make([]error, ventas)

	for i := 0; i < ventas; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = AjustarStock(db, producto.ID, -1)
		}(i)
	}
	wg.Wait()

	exitos := 0
	for _, err := range errs {
		switch {
		case err == nil:
			exitos++
		case IsConflict(err):
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if exitos != 5 {
		t.Fatalf("exactly 5 sales should succeed, got %d", exitos)
	}

	final, err := ObtenerProducto(db, producto.ID)
	if err != nil {
		t.Fatalf("producto should resolve: %v", err)
	}
	if final.Stock != 0 {
		t.Fatalf("expected final stock 0, got %d", final.Stock)
	}
}

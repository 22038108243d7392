package services

import (
	"testing"
	"time"
)

func TestCorteDePeriodoToday(t *testing.T) {
	loc, _ := time.LoadLocation("America/Mexico_City")
	ahora := time.Date(2026, 8, 31, 17, 45, 12, 0, loc)

	corte, ok := CorteDePeriodo("today", ahora)
	if !ok {
		t.Fatal("expected a cutoff for today")
	}
	esperado := time.Date(2026, 8, 31, 0, 0, 0, 0, loc)
	if !corte.Equal(esperado) {
		t.Fatalf("expected local midnight %s, got %s", esperado, corte)
	}
}

func TestCorteDePeriodoRollingWindows(t *testing.T) {
	ahora := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	corte, ok := CorteDePeriodo("week", ahora)
	if !ok || !corte.Equal(ahora.AddDate(0, 0, -7)) {
		t.Fatalf("week cutoff wrong: %s", corte)
	}

	corte, ok = CorteDePeriodo("month", ahora)
	if !ok || !corte.Equal(ahora.AddDate(0, 0, -30)) {
		t.Fatalf("month cutoff wrong: %s", corte)
	}
}

func TestCorteDePeriodoAll(t *testing.T) {
	if _, ok := CorteDePeriodo("all", time.Now()); ok {
		t.Fatal("'all' must not produce a cutoff")
	}
	if _, ok := CorteDePeriodo("", time.Now()); ok {
		t.Fatal("empty periodo must not produce a cutoff")
	}
}

func TestFiltroPagosNormalizar(t *testing.T) {
	f := FiltroPagos{Pagina: 0, Limite: 0, Periodo: ""}
	f.Normalizar()
	if f.Pagina != 1 || f.Limite != 20 || f.Periodo != "all" {
		t.Fatalf("defaults wrong: %+v", f)
	}

	f = FiltroPagos{Pagina: -3, Limite: 500, Periodo: "week"}
	f.Normalizar()
	if f.Pagina != 1 {
		t.Fatalf("pagina should clamp to 1, got %d", f.Pagina)
	}
	if f.Limite != 100 {
		t.Fatalf("limite should clamp to 100, got %d", f.Limite)
	}
	if f.Periodo != "week" {
		t.Fatalf("periodo should be preserved, got %q", f.Periodo)
	}
}

func TestNuevaMetaPaginacion(t *testing.T) {
	meta := NuevaMetaPaginacion(45, 2, 20)
	if meta.TotalPaginas != 3 {
		t.Fatalf("expected 3 pages for 45/20, got %d", meta.TotalPaginas)
	}
	if !meta.HaySiguiente || !meta.HayAnterior {
		t.Fatalf("page 2 of 3 must have both neighbours: %+v", meta)
	}

	meta = NuevaMetaPaginacion(0, 1, 20)
	if meta.TotalPaginas != 0 || meta.HaySiguiente || meta.HayAnterior {
		t.Fatalf("empty set meta wrong: %+v", meta)
	}

	meta = NuevaMetaPaginacion(20, 1, 20)
	if meta.TotalPaginas != 1 || meta.HaySiguiente {
		t.Fatalf("exact single page meta wrong: %+v", meta)
	}
}

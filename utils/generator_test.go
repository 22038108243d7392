package utils

import (
	"regexp"
	"testing"
)

func TestGenerarReferenciaFormat(t *testing.T) {
	patron := regexp.MustCompile(`^CMP-[0-9A-F]{8}$`)

	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		folio, err := GenerarReferencia()
		if err != nil {
			t.Fatalf("GenerarReferencia failed: %v", err)
		}
		if !patron.MatchString(folio) {
			t.Fatalf("folio %q does not match %s", folio, patron)
		}
		vistos[folio] = true
	}

	// 100 draws from a 32-bit space colliding down to one value would mean
	// the randomness source is broken.
	if len(vistos) < 2 {
		t.Fatalf("expected distinct folios, got %d unique out of 100", len(vistos))
	}
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/gorm"
)

const folioBytes = 4

// GenerarReferencia returns a folio like "CMP-3FA92C01".
func GenerarReferencia() (string, error) {
	buf := make([]byte, folioBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "CMP-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// GenerarFolioUnico retries until the folio does not collide with any pago,
// soft-deleted ones included.
func GenerarFolioUnico(db *gorm.DB) (string, error) {
	for i := 0; i < 10; i++ {
		folio, err := GenerarReferencia()
		if err != nil {
			return "", err
		}

		var count int64
		err = db.Unscoped().Model(&models.Pago{}).
			Where("comprobante_folio = ?", folio).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return folio, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique folio after %d attempts", 10)
}

package services

import (
	"errors"
	"math"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"gorm.io/gorm"
)

const (
	MensajePagoDuplicado        = "Ya existe un pago para esta cita"
	MensajeTransaccionDuplicada = "Ya existe un pago con ese id de transacción"
)

type CrearPagoInput struct {
	CitaID        uint
	Monto         float64
	Metodo        *string
	TransaccionID *string
	PagadoEn      *time.Time
}

type ActualizarPagoInput struct {
	CitaID        *uint
	Monto         *float64
	Metodo        *string
	Estado        *string
	TransaccionID *string
	PagadoEn      *time.Time
}

type FiltroPagos struct {
	Pagina   int
	Limite   int
	Busqueda string
	Estado   string
	Periodo  string
}

// Normalizar clamps the filter to its allowed ranges: pagina >= 1, limite in
// [1, 100] defaulting to 20, periodo defaulting to "all".
func (f *FiltroPagos) Normalizar() {
	if f.Pagina < 1 {
		f.Pagina = 1
	}
	if f.Limite < 1 {
		f.Limite = 20
	}
	if f.Limite > 100 {
		f.Limite = 100
	}
	if f.Periodo == "" {
		f.Periodo = "all"
	}
}

type MetaPaginacion struct {
	Total        int64 `json:"total"`
	Pagina       int   `json:"pagina"`
	Limite       int   `json:"limite"`
	TotalPaginas int   `json:"totalPaginas"`
	HaySiguiente bool  `json:"haySiguiente"`
	HayAnterior  bool  `json:"hayAnterior"`
}

func NuevaMetaPaginacion(total int64, pagina, limite int) MetaPaginacion {
	totalPaginas := int(math.Ceil(float64(total) / float64(limite)))
	return MetaPaginacion{
		Total:        total,
		Pagina:       pagina,
		Limite:       limite,
		TotalPaginas: totalPaginas,
		HaySiguiente: pagina < totalPaginas,
		HayAnterior:  pagina > 1,
	}
}

// EstadisticasPagos is computed over the filtered but unpaginated set, so the
// totals reflect the whole population matching the filters, not one page.
type EstadisticasPagos struct {
	TotalMonto  float64 `json:"totalMonto"`
	Completados int64   `json:"completados"`
	Pendientes  int64   `json:"pendientes"`
	Fallidos    int64   `json:"fallidos"`
	Promedio    float64 `json:"promedio"`
}

// CorteDePeriodo returns the created_at lower bound for a periodo filter.
// "today" means local calendar midnight; week and month are rolling windows.
// The second return is false when no bound applies ("all" or unknown).
func CorteDePeriodo(periodo string, ahora time.Time) (time.Time, bool) {
	switch periodo {
	case "today":
		y, m, d := ahora.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, ahora.Location()), true
	case "week":
		return ahora.AddDate(0, 0, -7), true
	case "month":
		return ahora.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

func CrearPago(db *gorm.DB, in CrearPagoInput) (*models.Pago, error) {
	var cita models.Cita
	if err := db.First(&cita, in.CitaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Cita", ID: in.CitaID}
		}
		return nil, err
	}

	if err := checkTransaccionUnica(db, in.TransaccionID, 0); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Pago{}).Where("cita_id = ?", in.CitaID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Mensaje: MensajePagoDuplicado}
	}

	pago := models.Pago{
		CitaID:        in.CitaID,
		Monto:         in.Monto,
		Metodo:        in.Metodo,
		TransaccionID: in.TransaccionID,
		PagadoEn:      in.PagadoEn,
		Estado:        models.PagoPendiente,
	}
	if err := db.Create(&pago).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Mensaje: MensajePagoDuplicado}
		}
		return nil, err
	}

	pago.Cita = cita
	return &pago, nil
}

// checkTransaccionUnica runs unscoped: a transaccion id used by a soft-deleted
// pago still blocks reuse, matching the plain unique index backing it.
func checkTransaccionUnica(db *gorm.DB, transaccionID *string, excluirID uint) error {
	if transaccionID == nil || *transaccionID == "" {
		return nil
	}

	q := db.Unscoped().Model(&models.Pago{}).Where("transaccion_id = ?", *transaccionID)
	if excluirID != 0 {
		q = q.Where("id <> ?", excluirID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Mensaje: MensajeTransaccionDuplicada}
	}
	return nil
}

func aplicarFiltroPagos(db *gorm.DB, f FiltroPagos, ahora time.Time) *gorm.DB {
	q := db.Model(&models.Pago{}).
		Joins("JOIN citas ON citas.id = pagos.cita_id")

	if f.Estado != "" {
		q = q.Where("pagos.estado = ?", f.Estado)
	}
	if corte, ok := CorteDePeriodo(f.Periodo, ahora); ok {
		q = q.Where("pagos.created_at >= ?", corte)
	}
	if f.Busqueda != "" {
		patron := "%" + f.Busqueda + "%"
		q = q.Where(
			`citas.nombre_cliente ILIKE ? OR citas.email_cliente ILIKE ?
			 OR pagos.transaccion_id ILIKE ? OR pagos.metodo ILIKE ?
			 OR CAST(pagos.id AS TEXT) ILIKE ?`,
			patron, patron, patron, patron, patron,
		)
	}
	return q
}

func ListarPagos(db *gorm.DB, f FiltroPagos) ([]models.Pago, MetaPaginacion, EstadisticasPagos, error) {
	f.Normalizar()
	ahora := time.Now()

	var total int64
	if err := aplicarFiltroPagos(db, f, ahora).Count(&total).Error; err != nil {
		return nil, MetaPaginacion{}, EstadisticasPagos{}, err
	}

	var pagos []models.Pago
	offset := (f.Pagina - 1) * f.Limite
	err := aplicarFiltroPagos(db, f, ahora).
		Order("pagos.created_at desc").
		Offset(offset).
		Limit(f.Limite).
		Preload("Cita.Peluquero").
		Preload("Cita.Servicio").
		Find(&pagos).Error
	if err != nil {
		return nil, MetaPaginacion{}, EstadisticasPagos{}, err
	}

	var fila struct {
		TotalMonto  float64
		Completados int64
		Pendientes  int64
		Fallidos    int64
	}
	err = aplicarFiltroPagos(db, f, ahora).
		Select(`COALESCE(SUM(pagos.monto), 0) AS total_monto,
			COUNT(CASE WHEN pagos.estado = 'Completado' THEN 1 END) AS completados,
			COUNT(CASE WHEN pagos.estado = 'Pendiente' THEN 1 END) AS pendientes,
			COUNT(CASE WHEN pagos.estado = 'Fallido' THEN 1 END) AS fallidos`).
		Scan(&fila).Error
	if err != nil {
		return nil, MetaPaginacion{}, EstadisticasPagos{}, err
	}

	stats := EstadisticasPagos{
		TotalMonto:  fila.TotalMonto,
		Completados: fila.Completados,
		Pendientes:  fila.Pendientes,
		Fallidos:    fila.Fallidos,
	}
	if total > 0 {
		stats.Promedio = fila.TotalMonto / float64(total)
	}

	return pagos, NuevaMetaPaginacion(total, f.Pagina, f.Limite), stats, nil
}

func ObtenerPago(db *gorm.DB, id uint) (*models.Pago, error) {
	var pago models.Pago
	err := db.
		Preload("Cita.Peluquero").
		Preload("Cita.Servicio").
		First(&pago, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Pago", ID: id}
		}
		return nil, err
	}
	return &pago, nil
}

func ActualizarPago(db *gorm.DB, id uint, in ActualizarPagoInput) (*models.Pago, error) {
	var pago models.Pago
	if err := db.First(&pago, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "Pago", ID: id}
		}
		return nil, err
	}

	if in.TransaccionID != nil {
		if err := checkTransaccionUnica(db, in.TransaccionID, pago.ID); err != nil {
			return nil, err
		}
		pago.TransaccionID = in.TransaccionID
	}

	if in.CitaID != nil && *in.CitaID != pago.CitaID {
		var cita models.Cita
		if err := db.First(&cita, *in.CitaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "Cita", ID: *in.CitaID}
			}
			return nil, err
		}

		var count int64
		if err := db.Model(&models.Pago{}).
			Where("cita_id = ? AND id <> ?", *in.CitaID, pago.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, &ConflictError{Mensaje: MensajePagoDuplicado}
		}
		pago.CitaID = *in.CitaID
	}

	if in.Monto != nil {
		pago.Monto = *in.Monto
	}
	if in.Metodo != nil {
		pago.Metodo = in.Metodo
	}
	if in.Estado != nil {
		pago.Estado = *in.Estado
	}
	if in.PagadoEn != nil {
		pago.PagadoEn = in.PagadoEn
	}

	if err := db.Save(&pago).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Mensaje: MensajePagoDuplicado}
		}
		return nil, err
	}

	return ObtenerPago(db, pago.ID)
}

func EliminarPago(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Pago{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entidad: "Pago", ID: id}
	}
	return nil
}

// TotalPorRango sums monto over pagos whose pagado_en falls inside the
// inclusive range. An empty result yields 0, never NULL.
func TotalPorRango(db *gorm.DB, inicio, fin time.Time) (float64, error) {
	var total float64
	err := db.Model(&models.Pago{}).
		Where("pagado_en BETWEEN ? AND ?", inicio, fin).
		Select("COALESCE(SUM(monto), 0)").
		Row().Scan(&total)
	return total, err
}

package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/notifications"
)

// SendCitaReminders emails every client whose cita starts in roughly 24
// hours. The job runs every 5 minutes, so the window is 5 minutes wide to
// avoid sending the same reminder twice.
func SendCitaReminders() {
	log.Println("Running job: SendCitaReminders...")

	now := time.Now()
	lowerBound := now.Add(24 * time.Hour)
	upperBound := now.Add(24*time.Hour + 5*time.Minute)

	var citas []models.Cita

	err := database.DB.
		Preload("Peluquero").
		Preload("Servicio").
		Where("estado IN ? AND fecha_hora BETWEEN ? AND ?",
			[]string{models.CitaPendiente, models.CitaPagada}, lowerBound, upperBound).
		Find(&citas).Error
	if err != nil {
		log.Printf("Error checking for upcoming citas: %v", err)
		return
	}

	if len(citas) == 0 {
		return
	}

	for _, cita := range citas {
		log.Printf("Sending reminder for cita ID: %d", cita.ID)

		emailSubject := "Recordatorio: tu cita es mañana"
		emailBody := fmt.Sprintf(
			"<h1>Recordatorio de cita</h1><p>Hola %s,</p><p>Te recordamos tu cita de %s con %s mañana a las %s.</p>",
			cita.NombreCliente,
			cita.Servicio.Nombre,
			cita.Peluquero.Nombre,
			cita.FechaHora.Format("15:04"),
		)

		go notifications.SendEmail(cita.NombreCliente, cita.EmailCliente, emailSubject, emailBody)
	}
}

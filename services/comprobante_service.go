package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/models"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerarComprobante renders the pago receipt to PDF with headless Chrome,
// uploads it to Cloudinary and stores the folio + URL on the pago. Calling it
// again for the same pago returns the stored receipt.
func GenerarComprobante(db *gorm.DB, cfg *config.Config, pagoID uint) (*models.Pago, error) {
	pago, err := ObtenerPago(db, pagoID)
	if err != nil {
		return nil, err
	}
	if pago.ComprobanteURL != nil {
		return pago, nil
	}

	folio, err := utils.GenerarFolioUnico(db)
	if err != nil {
		return nil, err
	}

	htmlData, err := generarComprobanteHTML(pago, folio)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := generarPDFDesdeHTML(htmlData)
	if err != nil {
		return nil, err
	}

	uploadURL, err := subirACloudinary(cfg, pdfBytes, folio)
	if err != nil {
		return nil, err
	}

	pago.ComprobanteFolio = &folio
	pago.ComprobanteURL = &uploadURL
	if err := db.Save(pago).Error; err != nil {
		return nil, err
	}
	return pago, nil
}

func generarComprobanteHTML(pago *models.Pago, folio string) (string, error) {
	tmpl, err := template.ParseFiles("templates/comprobante.html")
	if err != nil {
		return "", err
	}

	metodo := "—"
	if pago.Metodo != nil {
		metodo = *pago.Metodo
	}
	pagadoEn := "—"
	if pago.PagadoEn != nil {
		pagadoEn = pago.PagadoEn.Format("02/01/2006 15:04")
	}

	data := struct {
		Folio         string
		NombreCliente string
		Servicio      string
		Peluquero     string
		FechaCita     string
		Monto         string
		Metodo        string
		Estado        string
		PagadoEn      string
		Emitido       string
	}{
		Folio:         folio,
		NombreCliente: pago.Cita.NombreCliente,
		Servicio:      pago.Cita.Servicio.Nombre,
		Peluquero:     pago.Cita.Peluquero.Nombre,
		FechaCita:     pago.Cita.FechaHora.Format("02/01/2006 15:04"),
		Monto:         fmt.Sprintf("%.2f", pago.Monto),
		Metodo:        metodo,
		Estado:        pago.Estado,
		PagadoEn:      pagadoEn,
		Emitido:       time.Now().Format("02/01/2006 15:04"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generarPDFDesdeHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func subirACloudinary(cfg *config.Config, fileBytes []byte, folio string) (string, error) {
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("comprobantes/%s_%s", folio, uuid.New().String()),
		Folder:       "barberia_comprobantes",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}

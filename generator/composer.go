package generator

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	curpGridLen = 18
	rfcGridLen  = 13

	pageLeft  = 12.0
	pageWidth = 192.0 // usable width on letter with 12mm margins

	signatureAreaHeight = 28.0
)

// Document carries everything the composer needs for one DC-3 page.
type Document struct {
	Trainee   Trainee
	View      EffectiveView
	Logo      []byte
	QR        []byte
	Signature []byte
}

// ComposeDocument lays out one constancia page in the official DC-3
// arrangement: header with logo/title/QR, boxed worker, company and
// program sections with fixed character grids, three signature blocks and
// an instructions footer. Byte production stays with gofpdf; the caller
// renders via Output.
func ComposeDocument(d Document) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageLeft, 10, pageLeft)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	composeHeader(pdf, tr, d)

	sectionTitle(pdf, tr, "DATOS DEL TRABAJADOR")
	labeledField(pdf, tr, "Nombre", d.Trainee.FullName, pageWidth)
	charGrid(pdf, "CURP", GridValue(d.Trainee.CURP, curpGridLen))
	labeledField(pdf, tr, "Ocupación específica", d.Trainee.Occupation, pageWidth)
	labeledField(pdf, tr, "Puesto", d.Trainee.JobTitle, pageWidth)

	sectionTitle(pdf, tr, "DATOS DE LA EMPRESA")
	labeledField(pdf, tr, "Nombre o razón social", d.View.CompanyName, pageWidth)
	charGrid(pdf, "RFC", GridValue(d.View.CompanyRFC, rfcGridLen))

	sectionTitle(pdf, tr, "DATOS DEL PROGRAMA DE CAPACITACIÓN")
	labeledField(pdf, tr, "Nombre del curso", d.View.CourseName, pageWidth)
	labeledField(pdf, tr, "Duración en horas", d.View.Duration, 90)
	dateGrids(pdf, tr, SplitDate(d.View.StartDate), SplitDate(d.View.EndDate))
	labeledField(pdf, tr, "Periodo de ejecución", d.View.Period, pageWidth)
	labeledField(pdf, tr, "Área temática del curso", d.View.ThematicArea, pageWidth)
	labeledField(pdf, tr, "Agente capacitador o STPS", d.View.TrainerName, 140)
	labeledField(pdf, tr, "Número de registro", d.View.TrainerRegistration, 90)

	signatureBlocks(pdf, tr, d)
	composeFooter(pdf, tr)

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

func composeHeader(pdf *gofpdf.Fpdf, tr func(string) string, d Document) {
	if len(d.Logo) > 0 {
		embedImage(pdf, "logo", d.Logo, pageLeft, 10, 26, 0)
	}
	if len(d.QR) > 0 {
		embedImage(pdf, "qr", d.QR, 181, 8, 24, 24)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetXY(45, 12)
	pdf.MultiCell(125, 5, tr("CONSTANCIA DE COMPETENCIAS O DE HABILIDADES LABORALES"), "", "C", false)
	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(45, 24)
	pdf.CellFormat(125, 4, tr("FORMATO DC-3"), "", 0, "C", false, 0, "")
	pdf.SetY(36)
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(pageWidth, 6, tr(title), "1", 1, "C", true, 0, "")
	pdf.Ln(1)
}

// labeledField prints a small label row and the upper-cased value in a
// bordered box.
func labeledField(pdf *gofpdf.Fpdf, tr func(string) string, label, value string, width float64) {
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(width, 3.5, tr(label), "", 1, "L", false, 0, "")
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(width, 6, tr(strings.ToUpper(value)), "1", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// charGrid draws one bordered cell per character of a fixed-length value.
func charGrid(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(30, 3.5, label, "", 1, "L", false, 0, "")
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "", 9)
	for _, ch := range value {
		pdf.CellFormat(6, 6, string(ch), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(7)
}

// dateGrids draws the two-sided DD MM AAAA grids for the start and end of
// the course window.
func dateGrids(pdf *gofpdf.Fpdf, tr func(string) string, start, end DateParts) {
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(96, 3.5, tr("Inicio (día/mes/año)"), "", 0, "L", false, 0, "")
	pdf.CellFormat(96, 3.5, tr("Término (día/mes/año)"), "", 1, "L", false, 0, "")
	pdf.SetX(pageLeft)
	oneDateGrid(pdf, start)
	pdf.SetX(pageLeft + 96)
	oneDateGrid(pdf, end)
	pdf.Ln(7)
}

func oneDateGrid(pdf *gofpdf.Fpdf, parts DateParts) {
	pdf.SetFont("Arial", "", 9)
	for _, ch := range gridChars(parts.Day, 2) {
		pdf.CellFormat(6, 6, string(ch), "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(2, 6, "", "", 0, "C", false, 0, "")
	for _, ch := range gridChars(parts.Month, 2) {
		pdf.CellFormat(6, 6, string(ch), "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(2, 6, "", "", 0, "C", false, 0, "")
	for _, ch := range gridChars(parts.Year, 4) {
		pdf.CellFormat(6, 6, string(ch), "1", 0, "C", false, 0, "")
	}
}

func gridChars(value string, length int) string {
	if len(value) > length {
		value = value[:length]
	}
	return value + strings.Repeat(" ", length-len(value))
}

// signatureBlocks reserves three equal columns: instructor, legal
// representative and workers' representative. Only the instructor block
// embeds an image, and only when one was resolved; the line and name are
// printed regardless.
func signatureBlocks(pdf *gofpdf.Fpdf, tr func(string) string, d Document) {
	colWidth := pageWidth / 3
	top := pdf.GetY() + 4

	if len(d.Signature) > 0 {
		embedImage(pdf, "signature", d.Signature, pageLeft+8, top+2, colWidth-16, signatureAreaHeight-6)
	}

	names := []string{d.View.TrainerName, d.View.LegalRep, d.View.WorkersRep}
	titles := []string{"INSTRUCTOR O TUTOR", "REPRESENTANTE LEGAL", "REPRESENTANTE DE LOS TRABAJADORES"}

	lineY := top + signatureAreaHeight
	for i := 0; i < 3; i++ {
		x := pageLeft + float64(i)*colWidth
		pdf.Line(x+6, lineY, x+colWidth-6, lineY)
		pdf.SetXY(x, lineY+1)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(colWidth, 4, tr(strings.ToUpper(names[i])), "", 0, "C", false, 0, "")
		pdf.SetXY(x, lineY+5)
		pdf.SetFont("Arial", "B", 6.5)
		pdf.CellFormat(colWidth, 3.5, tr(titles[i]), "", 0, "C", false, 0, "")
	}
	pdf.SetY(lineY + 12)
}

func composeFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetX(pageLeft)
	pdf.SetFont("Arial", "I", 6.5)
	pdf.MultiCell(pageWidth, 3,
		tr("Instrucciones: llenar a máquina o con letra de molde. Deberá entregarse al trabajador dentro "+
			"de los veinte días hábiles siguientes al término del curso. La autenticidad de esta constancia "+
			"puede verificarse escaneando el código QR."),
		"", "L", false)
}

// embedImage registers raw image bytes under a unique name and places
// them. Width or height of zero keeps the aspect ratio.
func embedImage(pdf *gofpdf.Fpdf, name string, data []byte, x, y, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: imageType(data)}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// imageType sniffs the embeddable format from magic bytes; gofpdf needs
// it named explicitly when reading from memory.
func imageType(data []byte) string {
	switch {
	case len(data) >= 8 && bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "JPG"
	case len(data) >= 6 && (bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a"))):
		return "GIF"
	default:
		return "PNG"
	}
}

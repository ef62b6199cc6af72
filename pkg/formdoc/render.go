package formdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/nwfth/forms-go/models"
)

// RenderError wraps any fault raised while assembling a document. The caller
// gets all bytes or an error, never partial output.
type RenderError struct {
	FormID uint
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render form %d: %v", e.FormID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Render produces the print layout for a form as PDF bytes, dispatching on
// form type. Types outside the known set fall back to a key-value dump so
// legacy or experimental records remain printable.
func Render(form *models.Form) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	details := map[string]any(form.Details)
	if details == nil {
		details = map[string]any{}
	}

	switch models.FormType(form.FormType) {
	case models.FormTypePurchaseRequest:
		renderPurchase(pdf, form, details)
	case models.FormTypeTravelRequest:
		renderTravel(pdf, form, details)
	case models.FormTypeMajorCapital:
		renderMajor(pdf, form, details)
	case models.FormTypeMinorCapital:
		renderMinor(pdf, form, details)
	default:
		renderGeneric(pdf, form, details)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{FormID: form.ID, Err: err}
	}
	return buf.Bytes(), nil
}

func renderPurchase(pdf *fpdf.Fpdf, form *models.Form, details map[string]any) {
	n := Normalize(form)

	header(pdf, "Newly Weds Foods (Thailand) Limited")
	subheader(pdf, "General Purchase Requisition")
	subheader(pdf, "FORM # PC-FM-013")
	pdf.Ln(4)

	field(pdf, "Name", n.DisplayName)
	field(pdf, "Department", n.DisplayDepartment)
	field(pdf, "Date", n.EffectiveDate)
	pdf.Ln(4)

	sectionTitle(pdf, "Items")
	rows := [][]string{}
	for _, raw := range sliceAt(details, "items") {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			stringAt(item, "description"),
			stringAt(item, "unit"),
			cellValue(item["quantity"]),
			cellValue(item["cost"]),
			cellValue(item["amount"]),
		})
	}
	table(pdf,
		[]string{"Description", "Unit", "Quantity", "Cost", "Amount"},
		[]float64{70, 20, 25, 30, 35},
		rows)
	pdf.Ln(4)

	grand := numberAt(details, "grandTotal")
	if grand == 0 {
		grand = n.ComputedTotal
	}
	field(pdf, "Sub Total", formatAmount(numberAt(details, "subTotal")))
	field(pdf, "VAT (7%)", formatAmount(numberAt(details, "vat")))
	boldField(pdf, "Grand Total", formatAmount(grand))
}

func renderTravel(pdf *fpdf.Fpdf, form *models.Form, details map[string]any) {
	n := Normalize(form)

	header(pdf, "NWFAP TRAVEL REQUEST")
	pdf.Ln(2)
	field(pdf, "Business Purpose", stringAt(details, "businessPurpose"))
	field(pdf, "Request Date", stringAt(details, "requestDate", "date"))
	pdf.Ln(4)

	sectionTitle(pdf, "Traveler Information")
	field(pdf, "Name", n.DisplayName)
	field(pdf, "Email", stringAt(details, "email"))
	field(pdf, "Location", stringAt(details, "location"))
	field(pdf, "Country", stringAt(details, "country"))
	field(pdf, "Currency", stringAt(details, "currency"))
	pdf.Ln(4)

	sectionTitle(pdf, "Trip Details")
	rows := [][]string{}
	for _, raw := range sliceAt(details, "trips") {
		trip, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		ret := "One Way"
		if roundTrip, _ := trip["roundTrip"].(bool); roundTrip {
			ret = stringAt(trip, "returnDate")
		}
		rows = append(rows, []string{
			stringAt(trip, "from"),
			stringAt(trip, "to"),
			stringAt(trip, "departureDate"),
			ret,
			stringAt(trip, "tripClass"),
			stringAt(trip, "airline"),
		})
	}
	table(pdf,
		[]string{"From", "To", "Departure", "Return", "Class", "Airline"},
		[]float64{32, 32, 28, 28, 25, 35},
		rows)
	pdf.Ln(4)

	sectionTitle(pdf, "Estimated Cost")
	cost := mapAt(details, "estimatedCost")
	field(pdf, "Airfare", formatAmount(numberAt(cost, "airfare")))
	field(pdf, "Accommodations", formatAmount(numberAt(cost, "accommodations")))
	field(pdf, "Meals/Entertainment", formatAmount(numberAt(cost, "mealsEntertainment")))
	field(pdf, "Other", formatAmount(numberAt(cost, "other")))
	total := numberAt(cost, "total")
	if total == 0 {
		total = n.ComputedTotal
	}
	boldField(pdf, "Total", formatAmount(total))
}

func renderMajor(pdf *fpdf.Fpdf, form *models.Form, details map[string]any) {
	n := Normalize(form)

	header(pdf, "Major Capital Authorization Request")
	subheader(pdf, "(For Capital Projects > AUD 10,000)")
	pdf.Ln(2)

	field(pdf, "Operating Company", stringAt(details, "operatingCompany"))
	field(pdf, "Department", n.DisplayDepartment)
	field(pdf, "Date", n.EffectiveDate)
	pdf.Ln(2)
	field(pdf, "Project Title", stringAt(details, "projectTitle"))
	field(pdf, "Project Description", stringAt(details, "projectDescription"))
	field(pdf, "Budget Amount", formatAmount(numberAt(details, "budgetAmount")))
	pdf.Ln(4)

	sectionTitle(pdf, "Project Items")
	projectItemsTable(pdf, details)
	pdf.Ln(2)

	total := numberAt(details, "totalAmount")
	if total == 0 {
		total = n.ComputedTotal
	}
	boldField(pdf, "Total Amount", formatAmount(total))
}

func renderMinor(pdf *fpdf.Fpdf, form *models.Form, details map[string]any) {
	n := Normalize(form)

	header(pdf, "Minor Capital Authorization Request")
	subheader(pdf, "(In Local Currency & for Projects less than 10,000 AUD)")
	pdf.Ln(2)

	field(pdf, "Operating Company", stringAt(details, "operatingCompany"))
	field(pdf, "Department", n.DisplayDepartment)
	field(pdf, "Date", n.EffectiveDate)
	pdf.Ln(2)
	field(pdf, "Project Description", stringAt(details, "projectDescription"))
	pdf.Ln(4)

	sectionTitle(pdf, "Project Items")
	projectItemsTable(pdf, details)
	pdf.Ln(2)

	total := numberAt(details, "totalAmount")
	if total == 0 {
		total = n.ComputedTotal
	}
	boldField(pdf, "Total Amount", formatAmount(total))
}

func renderGeneric(pdf *fpdf.Fpdf, form *models.Form, details map[string]any) {
	header(pdf, form.FormType)
	pdf.Ln(2)
	field(pdf, "User", form.OwnerName)
	field(pdf, "Department", form.Department)
	field(pdf, "Status", string(form.Status))
	field(pdf, "Date", form.RequestDate.Format("2006-01-02"))
	pdf.Ln(4)

	sectionTitle(pdf, "Form Details")
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pdf.SetFont("Helvetica", "", 10)
	for _, k := range keys {
		pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", k, cellValue(details[k])), "", "L", false)
	}
}

func projectItemsTable(pdf *fpdf.Fpdf, details map[string]any) {
	rows := [][]string{}
	for _, raw := range sliceAt(details, "projectItems", "items") {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			stringAt(item, "description"),
			cellValue(item["amount"]),
		})
	}
	table(pdf, []string{"Description", "Amount"}, []float64{130, 50}, rows)
}

func header(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, text, "", 1, "C", false, 0, "")
}

func subheader(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, text, "", 1, "C", false, 0, "")
}

func sectionTitle(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

func field(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", label, value), "", 1, "L", false, 0, "")
}

func boldField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", label, value), "", 1, "L", false, 0, "")
}

func table(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// cellValue renders any JSON value for a table cell or key-value dump.
func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatAmount(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

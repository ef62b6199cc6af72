package formdoc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/nwfth/forms-go/models"
	"gorm.io/datatypes"
)

func renderForm(formType models.FormType, details map[string]any) *models.Form {
	return &models.Form{
		ID:          7,
		FormType:    string(formType),
		OwnerName:   "Somchai",
		Department:  "Procurement",
		Status:      models.FormStatusWaiting,
		Details:     datatypes.JSONMap(details),
		RequestDate: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
	}
}

func assertPDF(t *testing.T, data []byte) {
	t.Helper()
	assert.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPurchaseRequest(t *testing.T) {
	data, err := Render(renderForm(models.FormTypePurchaseRequest, map[string]any{
		"name":       "Somchai",
		"department": "Procurement",
		"date":       "2024-03-15",
		"items": []any{
			map[string]any{"description": "Pen", "unit": "box", "quantity": 2.0, "cost": 10.0, "amount": 20.0},
		},
		"subTotal":   20.0,
		"vat":        1.4,
		"grandTotal": 21.4,
	}))
	assert.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderTravelRequest(t *testing.T) {
	data, err := Render(renderForm(models.FormTypeTravelRequest, map[string]any{
		"businessPurpose": "Supplier audit",
		"trips": []any{
			map[string]any{"from": "BKK", "to": "SYD", "departureDate": "2024-04-01", "roundTrip": true, "returnDate": "2024-04-08", "tripClass": "Economy", "airline": "QF"},
			map[string]any{"from": "SYD", "to": "MEL", "departureDate": "2024-04-03"},
		},
		"estimatedCost": map[string]any{"airfare": 1200.0, "accommodations": 900.0, "total": 2100.0},
	}))
	assert.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderMajorCapitalRequest(t *testing.T) {
	data, err := Render(renderForm(models.FormTypeMajorCapital, map[string]any{
		"operatingCompany":   "NWF Thailand",
		"projectTitle":       "Line 3 expansion",
		"projectDescription": "New blending line",
		"budgetAmount":       250000.0,
		"projectItems": []any{
			map[string]any{"description": "Mixer", "amount": 180000.0},
			map[string]any{"description": "Installation", "amount": 70000.0},
		},
		"totalAmount": 250000.0,
	}))
	assert.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderMinorCapitalRequest(t *testing.T) {
	data, err := Render(renderForm(models.FormTypeMinorCapital, map[string]any{
		"operatingCompany":   "NWF Thailand",
		"projectDescription": "Replace lab fridge",
		"items": []any{
			map[string]any{"description": "Fridge", "amount": 900.0},
		},
		"totalAmount": 900.0,
	}))
	assert.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderUnknownTypeFallsBackToGenericDump(t *testing.T) {
	data, err := Render(renderForm("Maintenance Request", map[string]any{
		"machine":  "Oven 2",
		"severity": "high",
		"nested":   map[string]any{"a": 1.0},
	}))
	assert.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderEmptyDetails(t *testing.T) {
	form := renderForm(models.FormTypePurchaseRequest, nil)
	form.Details = nil
	data, err := Render(form)
	assert.NoError(t, err)
	assertPDF(t, data)
}

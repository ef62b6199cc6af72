// Package formdoc resolves the per-type details payload of a form into the
// canonical fields downstream consumers need, and renders forms to PDF.
//
// The details payload has gone through several incompatible frontend schema
// revisions without data migration, so every lookup here is a cascade over
// the historically used key names. Missing or malformed values degrade to
// zero rather than erroring; old records must stay viewable.
package formdoc

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nwfth/forms-go/models"
)

// Normalized is the canonical view of a form produced by Normalize.
type Normalized struct {
	DisplayName       string
	DisplayDepartment string
	EffectiveDate     string
	ComputedTotal     float64
}

// Normalize never fails: the worst case is an empty-string / zero-total view.
func Normalize(form *models.Form) Normalized {
	details := map[string]any(form.Details)
	if details == nil {
		details = map[string]any{}
	}

	n := Normalized{
		DisplayName:       stringAt(details, "name"),
		DisplayDepartment: stringAt(details, "department"),
		EffectiveDate:     stringAt(details, "date", "requestDate", "request_date"),
	}
	if n.DisplayName == "" {
		n.DisplayName = form.OwnerName
	}
	if n.DisplayDepartment == "" {
		n.DisplayDepartment = form.Department
	}
	if n.EffectiveDate == "" && !form.RequestDate.IsZero() {
		n.EffectiveDate = form.RequestDate.Format(time.DateOnly)
	}

	switch models.FormType(form.FormType) {
	case models.FormTypePurchaseRequest:
		n.ComputedTotal = purchaseTotal(details)
	case models.FormTypeTravelRequest:
		n.ComputedTotal = travelTotal(details)
	case models.FormTypeMajorCapital:
		n.ComputedTotal = ledgerTotal(details, "Addition") + ledgerTotal(details, "Disposal")
	case models.FormTypeMinorCapital:
		n.ComputedTotal = minorTotal(details)
	default:
		n.ComputedTotal = scanForTotal(details, "total", "amount")
	}
	return n
}

// purchaseTotal: grandTotal, then subTotal+vat, then the item sum, then the
// key names older purchase forms stored the figure under.
func purchaseTotal(details map[string]any) float64 {
	if v := numberAt(details, "grandTotal"); v != 0 {
		return v
	}
	if v := numberAt(details, "subTotal") + numberAt(details, "vat"); v != 0 {
		return v
	}
	if v := sumItems(sliceAt(details, "items"), purchaseItemAmount); v != 0 {
		return v
	}
	for _, key := range []string{"grand_total", "Grand Total", "totalAmount", "total_amount", "total"} {
		if v := numberAtFold(details, key); v != 0 {
			return v
		}
	}
	return 0
}

func purchaseItemAmount(item map[string]any) float64 {
	if v := numberAt(item, "amount"); v != 0 {
		return v
	}
	return numberAt(item, "quantity") * numberAt(item, "cost")
}

// travelTotal: estimatedCost.total, then the sum of the cost components
// (nested or flattened to the top level), then a last-resort scan for any
// key that looks like a monetary estimate.
func travelTotal(details map[string]any) float64 {
	cost := mapAt(details, "estimatedCost")
	if v := numberAt(cost, "total"); v != 0 {
		return v
	}

	components := []string{"airfare", "accommodations", "mealsEntertainment", "other"}
	var sum float64
	for _, key := range components {
		if v := numberAt(cost, key); v != 0 {
			sum += v
		} else {
			sum += numberAt(details, key)
		}
	}
	if sum != 0 {
		return sum
	}

	return scanForTotal(details, "total", "cost", "amount", "estimate")
}

// ledgerTotal resolves one side of the major capital ledger ("Addition" or
// "Disposal") through every shape the frontend ever produced.
func ledgerTotal(details map[string]any, kind string) float64 {
	camel := "total" + kind + "Request"
	spaced := "Total " + kind + " Request"

	if v := numberAt(details, camel); v != 0 {
		return v
	}
	if main := mapAt(details, "mainForm"); main != nil {
		if v := numberAtFold(main, camel); v != 0 {
			return v
		}
		if v := numberAtFold(main, spaced); v != 0 {
			return v
		}
	}
	if v := numberAtFold(details, spaced); v != 0 {
		return v
	}
	if v := numberAtFold(details, camel); v != 0 {
		return v
	}

	itemsKey := strings.ToLower(kind) + "Items"
	if v := sumItems(sliceAt(details, itemsKey), ledgerItemAmount); v != 0 {
		return v
	}
	// Oldest records keep a single undifferentiated item list; count it
	// against the addition side only so it is not summed twice.
	if kind == "Addition" {
		return sumItems(sliceAt(details, "projectItems", "items"), ledgerItemAmount)
	}
	return 0
}

func ledgerItemAmount(item map[string]any) float64 {
	if v := numberAt(item, "amount"); v != 0 {
		return v
	}
	return numberAt(item, "total")
}

// minorTotal: totals.total wins over everything, including a stale item sum.
func minorTotal(details map[string]any) float64 {
	if totals := mapAt(details, "totals"); totals != nil {
		if v := numberAt(totals, "total"); v != 0 {
			return v
		}
	}
	if v := numberAt(details, "totalAmount"); v != 0 {
		return v
	}
	if v := numberAtFold(details, "total_amount"); v != 0 {
		return v
	}
	return sumItems(sliceAt(details, "items", "projectItems"), func(item map[string]any) float64 {
		if v := numberAt(item, "total"); v != 0 {
			return v
		}
		return numberAt(item, "amount")
	})
}

// scanForTotal walks the payload's keys (top level, then one nested level) in
// sorted order and returns the first numeric value whose key contains one of
// the given substrings.
func scanForTotal(details map[string]any, substrings ...string) float64 {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !keyMatches(k, substrings) {
			continue
		}
		if v, ok := toNumber(details[k]); ok && v != 0 {
			return v
		}
	}
	for _, k := range keys {
		nested, ok := details[k].(map[string]any)
		if !ok {
			continue
		}
		if v := scanForTotal(nested, substrings...); v != 0 {
			return v
		}
	}
	return 0
}

func keyMatches(key string, substrings []string) bool {
	lower := strings.ToLower(key)
	for _, s := range substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

func sumItems(items []any, amount func(map[string]any) float64) float64 {
	var sum float64
	for _, raw := range items {
		if item, ok := raw.(map[string]any); ok {
			sum += amount(item)
		}
	}
	return sum
}

func stringAt(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func mapAt(m map[string]any, key string) map[string]any {
	nested, _ := m[key].(map[string]any)
	return nested
}

func sliceAt(m map[string]any, keys ...string) []any {
	for _, key := range keys {
		if s, ok := m[key].([]any); ok && len(s) > 0 {
			return s
		}
	}
	return nil
}

func numberAt(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	v, _ := toNumber(m[key])
	return v
}

// numberAtFold matches the key case-insensitively, which covers records
// written by form revisions that disagreed on capitalization.
func numberAtFold(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	if v, ok := toNumber(m[key]); ok {
		return v
	}
	for k, raw := range m {
		if strings.EqualFold(k, key) {
			v, _ := toNumber(raw)
			return v
		}
	}
	return 0
}

// toNumber coerces the value shapes JSON round-tripping has produced over
// the years: numbers, json.Number, and numeric strings with separators.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", ""))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// Package rates models the rate board payload, its validation, and the fixed
// table of display slots the board is rendered into.
package rates

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Office identifies one of the locations that publishes its own price set.
type Office string

// Known offices. A payload must carry all of them to be usable.
const (
	Giridih Office = "giridih"
	Deoghar Office = "deoghar"
	Barhi   Office = "barhi"
	Chatra  Office = "chatra"
	Jamua   Office = "jamua"
)

// Offices lists the known offices in board order.
var Offices = []Office{Giridih, Deoghar, Barhi, Chatra, Jamua}

// Product is a priced category on the board.
type Product string

// Product types.
const (
	Chota  Product = "chota"
	Mota   Product = "mota"
	Chicks Product = "chicks"
)

// Products lists the product types in board order.
var Products = []Product{Chota, Mota, Chicks}

// JSON field names of the payload.
const (
	fieldRateBoardDate  = "rate_board_date"
	fieldOffices        = "offices"
	fieldChotaPerKg     = "chota_per_kg"
	fieldMotaPerKg      = "mota_per_kg"
	fieldChicksPerPiece = "chicks_per_piece"
)

// FieldKey returns the office field holding the price of p.
func (p Product) FieldKey() string {
	switch p {
	case Chota:
		return fieldChotaPerKg
	case Mota:
		return fieldMotaPerKg
	default:
		return fieldChicksPerPiece
	}
}

// DateElementID is the element showing the rate board date.
const DateElementID = "rateDate"

// DatePrefix precedes the formatted date in the date element.
const DatePrefix = "Rate board date: "

// Slot binds an office/product price to the element that displays it.
type Slot struct {
	Office    Office
	Product   Product
	ElementID string
}

var slotTable = []Slot{
	{Giridih, Chota, "rate-giridih-chota"},
	{Giridih, Mota, "rate-giridih-mota"},
	{Giridih, Chicks, "rate-giridih-chicks"},
	{Deoghar, Chota, "rate-deoghar-chota"},
	{Deoghar, Mota, "rate-deoghar-mota"},
	{Deoghar, Chicks, "rate-deoghar-chicks"},
	{Barhi, Chota, "rate-barhi-chota"},
	{Barhi, Mota, "rate-barhi-mota"},
	{Barhi, Chicks, "rate-barhi-chicks"},
	{Chatra, Chota, "rate-chatra-chota"},
	{Chatra, Mota, "rate-chatra-mota"},
	{Chatra, Chicks, "rate-chatra-chicks"},
	{Jamua, Chota, "rate-jamua-chota"},
	{Jamua, Mota, "rate-jamua-mota"},
	{Jamua, Chicks, "rate-jamua-chicks"},
}

// Slots returns a copy of the display slot table.
func Slots() []Slot {
	out := make([]Slot, len(slotTable))
	copy(out, slotTable)
	return out
}

// OfficeRates holds the raw price values of one office. Each value is whatever
// the JSON carried (number, string, ...) or nil when absent.
type OfficeRates struct {
	ChotaPerKg     any
	MotaPerKg      any
	ChicksPerPiece any
}

// Price returns the raw value for product p.
func (r OfficeRates) Price(p Product) any {
	switch p {
	case Chota:
		return r.ChotaPerKg
	case Mota:
		return r.MotaPerKg
	default:
		return r.ChicksPerPiece
	}
}

// Display returns the text shown for product p and whether there is anything
// to show. Empty, zero and non-scalar values are not shown.
func (r OfficeRates) Display(p Product) (string, bool) {
	return DisplayText(r.Price(p))
}

// Payload is a decoded rate board. It is built fresh from each fetch and
// never merged with another.
type Payload struct {
	RateBoardDate any
	Offices       map[Office]OfficeRates
}

// DisplayText renders a raw JSON scalar verbatim, reporting false for values
// that should leave a slot untouched.
func DisplayText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case bool:
		if !x {
			return "", false
		}
		return "true", true
	case map[string]any, []any:
		return "", false
	case float64:
		if x == 0 || math.IsNaN(x) {
			return "", false
		}
		return formatNumber(x), true
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || f == 0 || math.IsNaN(f) {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// formatNumber renders f the way a browser prints a number: plain decimals
// between 1e-6 and 1e21, exponent form outside.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a >= 1e21 || a < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

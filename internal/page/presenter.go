package page

import (
	"time"

	"rateboard/internal/rates"
)

// Presenter writes rate board values into a Document.
type Presenter struct {
	doc Document
	loc *time.Location
}

// NewPresenter creates a Presenter. Dates are shown in loc, time.Local when nil.
func NewPresenter(doc Document, loc *time.Location) *Presenter {
	if loc == nil {
		loc = time.Local
	}
	return &Presenter{doc: doc, loc: loc}
}

// ApplyFallbackDate shows now as the board date. It runs before any rates
// are fetched so the page always has a date.
func (p *Presenter) ApplyFallbackDate(now time.Time) {
	el, ok := p.doc.ElementByID(rates.DateElementID)
	if !ok {
		return
	}
	el.SetText(rates.DateText(now.In(p.loc)))
}

// ApplyRates writes a validated payload into the board. Slots whose element
// is missing, or whose value is empty, keep their current text. It returns
// the number of price slots written.
func (p *Presenter) ApplyRates(payload *rates.Payload) int {
	if payload == nil {
		return 0
	}

	if el, ok := p.doc.ElementByID(rates.DateElementID); ok {
		if d, ok := rates.ParseBoardDate(payload.RateBoardDate, p.loc); ok {
			el.SetText(rates.DateText(d))
		}
	}

	written := 0
	for _, slot := range rates.Slots() {
		el, ok := p.doc.ElementByID(slot.ElementID)
		if !ok {
			continue
		}
		office, ok := payload.Offices[slot.Office]
		if !ok {
			continue
		}
		if text, ok := office.Display(slot.Product); ok {
			el.SetText(text)
			written++
		}
	}
	return written
}

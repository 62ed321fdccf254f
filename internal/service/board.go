package service

import (
	"context"

	"rateboard/internal/rates"
)

// Board is a rendered-independent view of the resolved rate board.
type Board struct {
	Outcome Outcome
	// Date is DD-MM-YYYY, empty when the payload has no parseable date.
	Date   string
	Prices map[rates.Office]map[rates.Product]string
}

// Board resolves the rate board and returns the values a page would show.
// Prices is empty when no source succeeded.
func (s *BoardService) Board(ctx context.Context) Board {
	payload, out := s.Resolve(ctx)
	b := Board{
		Outcome: out,
		Prices:  make(map[rates.Office]map[rates.Product]string),
	}
	if payload == nil {
		return b
	}

	if d, ok := rates.ParseBoardDate(payload.RateBoardDate, s.loc); ok {
		b.Date = rates.FormatDisplayDate(d)
	}
	for _, slot := range rates.Slots() {
		office, ok := payload.Offices[slot.Office]
		if !ok {
			continue
		}
		text, ok := office.Display(slot.Product)
		if !ok {
			continue
		}
		if b.Prices[slot.Office] == nil {
			b.Prices[slot.Office] = make(map[rates.Product]string)
		}
		b.Prices[slot.Office][slot.Product] = text
	}
	return b
}

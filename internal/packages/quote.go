package packages

import (
	"fmt"
	"math"
)

// quoteTolerance absorbs float rounding between client and server totals.
const quoteTolerance = 0.01

// Quote prices guestCount guests plus the selected add-ons.
func (p *Package) Quote(guestCount int, addOnIDs []uint) (float64, error) {
	if guestCount < p.MinGuests || guestCount > p.MaxGuests {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrGuestCountOutOfRange, guestCount, p.MinGuests, p.MaxGuests)
	}

	prices := make(map[uint]float64, len(p.AddOns))
	for _, a := range p.AddOns {
		prices[a.ID] = a.Price
	}

	total := p.PricePerGuest * float64(guestCount)
	for _, id := range addOnIDs {
		price, ok := prices[id]
		if !ok {
			return 0, fmt.Errorf("%w: %d for package %d", ErrUnknownAddOn, id, p.ID)
		}
		total += price
	}
	return total, nil
}

// VerifyEstimate checks a caller supplied estimate against Quote.
func (p *Package) VerifyEstimate(guestCount int, addOnIDs []uint, estimate float64) error {
	quote, err := p.Quote(guestCount, addOnIDs)
	if err != nil {
		return err
	}
	if math.Abs(quote-estimate) > quoteTolerance {
		return fmt.Errorf("%w: got %.2f, expected %.2f", ErrQuoteMismatch, estimate, quote)
	}
	return nil
}

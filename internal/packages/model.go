package packages

// Package is an event package as priced by the catalog.
type Package struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	PricePerGuest float64  `json:"pricePerGuest"`
	MinGuests     int      `json:"minGuests"`
	MaxGuests     int      `json:"maxGuests"`
	AddOns        []*AddOn `json:"addOns"`
}

type AddOn struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

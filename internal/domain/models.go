package domain

import "time"

type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	PrepTime    string   `json:"prep_time"`
	SpiceLevel  int      `json:"spice_level,omitempty"`
	Dietary     []string `json:"dietary,omitempty"`
}

// Cart maps dish IDs to quantities. Quantities are always >= 1; an entry
// is created on the first add and never stored at zero.
type Cart struct {
	ID        string         `json:"id"`
	Items     map[string]int `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
}

type CartLine struct {
	DishID    string  `json:"dish_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartSummary struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}

// Booking wizard steps.
const (
	StepSelectingDateTime = 1
	StepEnteringContact   = 2
	StepConfirmed         = 3
)

const (
	SeatingIndoor  = "indoor"
	SeatingOutdoor = "outdoor"
)

type Booking struct {
	ID         string `json:"id"`
	Step       int    `json:"step"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Date       string `json:"date,omitempty"` // calendar day, YYYY-MM-DD
	Time       string `json:"time,omitempty"`
	PartySize  int    `json:"party_size"`
	Seating    string `json:"seating"`
	Notes      string `json:"notes,omitempty"`
	BookingRef string `json:"booking_ref,omitempty"`
}

type DateOption struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Day     int    `json:"day"`
	Today   bool   `json:"today,omitempty"`
}

type BookingOptions struct {
	Dates   []DateOption `json:"dates"`
	Times   []string     `json:"times"`
	Seating []string     `json:"seating"`
}

type GalleryImage struct {
	ID       int    `json:"id"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}

// Lightbox holds a viewer's filter and the open image index into the
// currently filtered sequence. Index is nil while the lightbox is closed.
type Lightbox struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Index    *int   `json:"index,omitempty"`
}

type LightboxView struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	Open     bool          `json:"open"`
	Index    *int          `json:"index,omitempty"`
	Image    *GalleryImage `json:"image,omitempty"`
	Position string        `json:"position,omitempty"`
	Count    int           `json:"count"`
}

type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	Helpful  int    `json:"helpful"`
}

type RatingBar struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
}

type ReviewSummary struct {
	Average      float64     `json:"average"`
	Total        int         `json:"total"`
	Distribution []RatingBar `json:"distribution"`
}

type HoursEntry struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type BusinessInfo struct {
	Name      string       `json:"name"`
	Phone     string       `json:"phone"`
	Email     string       `json:"email"`
	Address   string       `json:"address"`
	Hours     []HoursEntry `json:"hours"`
	HappyHour string       `json:"happy_hour"`
	MapURL    string       `json:"map_url"`
}

type Special struct {
	DishID      string `json:"dish_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// Handoff event types.
const (
	HandoffOrder   = "order_handoff"
	HandoffBooking = "booking_handoff"
	HandoffContact = "contact_handoff"
)

// HandoffEvent is emitted fire-and-forget when a composed message is
// handed to the external messaging channel. No response is awaited.
type HandoffEvent struct {
	Type      string    `json:"type"`
	Channel   string    `json:"channel"`
	Recipient string    `json:"recipient"`
	Reference string    `json:"reference,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Handoff is the client-facing result: the composed message and the
// deep link that carries it.
type Handoff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

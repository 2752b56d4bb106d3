package models

// CartLine lives only in the guest session store, never in MySQL. Its
// identity key is the menu item id; quantity is >= 1 while the line exists.
type CartLine struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// GuestSession is the transient per-room session: language and cart.
// It expires with its TTL; language resets to the default on a new session.
type GuestSession struct {
	HotelID    string     `json:"hotelId"`
	RoomNumber string     `json:"roomNumber"`
	Language   string     `json:"language"`
	Cart       []CartLine `json:"cart"`
}

// CartTotal is the sum of price*quantity over the cart.
func (s *GuestSession) CartTotal() float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

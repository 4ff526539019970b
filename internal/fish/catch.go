package fish

import "time"

// Catch is the canonical record used by the game session and stores.
// Storage backends should persist kg_tenths (int) for precision/ordering.
type Catch struct {
	Id       int64
	Zone     string
	Key      string
	Name     string
	Tier     RarityTier
	Kg       float64
	Price    float64
	CaughtAt time.Time
}

// Value is what the fish fetches when sold.
func (c Catch) Value() float64 {
	return c.Kg * c.Price
}

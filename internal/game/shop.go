package game

import (
	"context"
	"fmt"
)

type ShopItem struct {
	Key         string
	Name        string
	Price       float64
	Description string
}

var shopItems = []ShopItem{
	{Key: "boat", Name: "Boat", Price: 25_000, Description: "Access Sea zone"},
	{Key: "submarine", Name: "Submarine", Price: 1_000_000, Description: "Access Bathyal zone"},
	{Key: "torch", Name: "Torch", Price: 5_000, Description: "Access Mystic Spring zone"},
	{Key: "upgrade01", Name: "Submarine Upgrade 01", Price: 10_000_000, Description: "Access Abyss Trench zone"},
	{Key: "upgrade02", Name: "Submarine Upgrade 02", Price: 100_000_000, Description: "Access Ancient Sea zone"},
}

func ShopItems() []ShopItem {
	out := make([]ShopItem, len(shopItems))
	copy(out, shopItems)
	return out
}

// Buy purchases an unlock item and persists the result.
func (g *Game) Buy(ctx context.Context, key string) (ShopItem, error) {
	var item ShopItem
	for _, it := range shopItems {
		if it.Key == key {
			item = it
			break
		}
	}
	if item.Key == "" {
		return item, fmt.Errorf("unknown shop item %q", key)
	}

	if g.State.HasItem(item.Key) {
		return item, fmt.Errorf("you already own the %s", item.Name)
	}
	if g.State.Balance < item.Price {
		return item, fmt.Errorf("not enough money to buy the %s", item.Name)
	}
	if item.Key == "upgrade02" {
		if !g.State.HasAncientKey {
			return item, fmt.Errorf("you need the Ancient Key to buy this upgrade")
		}
		if !g.State.HasTrenchPass {
			return item, fmt.Errorf("you need Submarine Upgrade 01 first")
		}
	}

	g.State.Balance -= item.Price
	switch item.Key {
	case "boat":
		g.State.HasBoat = true
	case "submarine":
		g.State.HasSubmarine = true
	case "torch":
		g.State.HasTorch = true
	case "upgrade01":
		g.State.HasTrenchPass = true
	case "upgrade02":
		g.State.HasAncientPass = true
	}

	return item, g.Store.SavePlayer(ctx, g.State.Row())
}

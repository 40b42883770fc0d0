package services

import "restaurant-backend/models"

// MergeCarts combines an existing cart with an incoming one,
// deduplicating by item name. Incoming items win on collision and keep
// the existing item's position; new incoming items are appended in
// incoming order. Merging the same incoming cart twice yields the same
// result as merging it once.
func MergeCarts(existing, incoming []models.LineItem) []models.LineItem {
	merged := make([]models.LineItem, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing))

	for _, item := range existing {
		if pos, ok := index[item.Name()]; ok {
			merged[pos] = item
			continue
		}
		index[item.Name()] = len(merged)
		merged = append(merged, item)
	}
	for _, item := range incoming {
		if pos, ok := index[item.Name()]; ok {
			merged[pos] = item
			continue
		}
		index[item.Name()] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

package analytics

import (
	"strings"

	"github.com/tastykitchen/admin-api/internal/models"
)

// normalizeAddress brings an address to canonical structural form so that
// equality is decided by content, not formatting noise.
func normalizeAddress(a models.DeliveryAddress) models.DeliveryAddress {
	return models.DeliveryAddress{
		Street:   strings.TrimSpace(a.Street),
		Postcode: strings.TrimSpace(a.Postcode),
		Floor:    strings.TrimSpace(a.Floor),
	}
}

// UniqueAddresses collapses the delivery addresses of an order list into a
// structurally de-duplicated set, preserving first-seen order. Two addresses
// with the same street, postcode and floor are the same address regardless of
// which order produced them.
func UniqueAddresses(orders []models.Order) []models.DeliveryAddress {
	seen := make(map[models.DeliveryAddress]struct{}, len(orders))
	addresses := make([]models.DeliveryAddress, 0, len(orders))
	for _, o := range orders {
		addr := normalizeAddress(o.Delivery)
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addresses = append(addresses, addr)
	}
	return addresses
}

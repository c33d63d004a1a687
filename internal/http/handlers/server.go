package handlers

import (
	"github.com/tastykitchen/admin-api/internal/client"
	"github.com/tastykitchen/admin-api/internal/enrich"
)

var (
	backend  *client.Client
	enricher *enrich.Enricher

	recentOrdersCount = 10
)

func SetBackend(c *client.Client) {
	backend = c
}

func SetEnricher(e *enrich.Enricher) {
	enricher = e
}

func SetRecentOrdersCount(n int) {
	if n > 0 {
		recentOrdersCount = n
	}
}

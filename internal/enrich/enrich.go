package enrich

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tastykitchen/admin-api/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrency  = 8
	defaultFetchTimeout = 3 * time.Second
)

// ProductFetcher resolves a product record by id.
type ProductFetcher interface {
	Product(ctx context.Context, id string) (models.Product, error)
}

// LineItem is an order's product reference merged with the matching product
// record. Product is nil when the lookup failed; quantity and price always
// come from the order side.
type LineItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	Product   *models.Product `json:"product,omitempty"`
}

// EnrichedOrder is an order whose line items carry resolved product details.
// The Products field shadows the raw reference list of the embedded order.
type EnrichedOrder struct {
	models.Order
	Products []LineItem `json:"products"`
}

// PartialEnrichmentError reports product lookups that failed during a join.
// Orders referencing those products still render with order-side data only.
type PartialEnrichmentError struct {
	Unresolved []string
}

func (e *PartialEnrichmentError) Error() string {
	return fmt.Sprintf("%d product lookups failed: %s", len(e.Unresolved), strings.Join(e.Unresolved, ", "))
}

// Enricher joins product records onto order line items. Fetches for one order
// set run concurrently; results are correlated back by product id, never by
// request position.
type Enricher struct {
	products    ProductFetcher
	concurrency int
	timeout     time.Duration
}

func New(products ProductFetcher, concurrency int, timeout time.Duration) *Enricher {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Enricher{products: products, concurrency: concurrency, timeout: timeout}
}

// EnrichOrders resolves every product referenced by the order set and merges
// the records onto the line items. Each distinct product id is fetched once,
// under its own timeout. A failed lookup marks that id unresolved and the
// affected items degrade to reference data; the returned error is a
// *PartialEnrichmentError in that case. A cancelled context discards the
// whole pass so late responses never reach an abandoned screen.
func (e *Enricher) EnrichOrders(ctx context.Context, orders []models.Order) ([]EnrichedOrder, error) {
	ids := collectProductIDs(orders)

	var (
		mu         sync.Mutex
		resolved   = make(map[string]models.Product, len(ids))
		unresolved []string
	)

	g := new(errgroup.Group)
	g.SetLimit(e.concurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			p, err := e.products.Product(callCtx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				unresolved = append(unresolved, id)
				return nil
			}
			resolved[id] = p
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enriched := make([]EnrichedOrder, len(orders))
	for i, o := range orders {
		items := make([]LineItem, len(o.Products))
		for j, ref := range o.Products {
			item := LineItem{
				ProductID: ref.ProductID,
				Quantity:  ref.Quantity,
				Price:     ref.Price,
			}
			if p, ok := resolved[ref.ProductID]; ok {
				item.Product = &p
			}
			items[j] = item
		}
		enriched[i] = EnrichedOrder{Order: o, Products: items}
	}

	if len(unresolved) > 0 {
		sort.Strings(unresolved)
		return enriched, &PartialEnrichmentError{Unresolved: unresolved}
	}
	return enriched, nil
}

// collectProductIDs returns the distinct product ids referenced by the order
// set, in first-seen order.
func collectProductIDs(orders []models.Order) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, o := range orders {
		for _, ref := range o.Products {
			if ref.ProductID == "" {
				continue
			}
			if _, ok := seen[ref.ProductID]; ok {
				continue
			}
			seen[ref.ProductID] = struct{}{}
			ids = append(ids, ref.ProductID)
		}
	}
	return ids
}

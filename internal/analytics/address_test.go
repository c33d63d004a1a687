package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastykitchen/admin-api/internal/analytics"
	"github.com/tastykitchen/admin-api/internal/models"
)

func orderAt(street, postcode, floor string) models.Order {
	return models.Order{
		Delivery: models.DeliveryAddress{Street: street, Postcode: postcode, Floor: floor},
	}
}

func TestUniqueAddressesCollapsesStructuralDuplicates(t *testing.T) {
	orders := []models.Order{
		orderAt("Leopoldstr. 1", "80802", "2"),
		orderAt("Leopoldstr. 1", "80802", "2"),
		orderAt("Sendlinger Str. 5", "80331", ""),
	}

	addresses := analytics.UniqueAddresses(orders)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Leopoldstr. 1", addresses[0].Street)
	assert.Equal(t, "Sendlinger Str. 5", addresses[1].Street)
}

func TestUniqueAddressesNormalizesWhitespace(t *testing.T) {
	orders := []models.Order{
		orderAt("Leopoldstr. 1", "80802", "2"),
		orderAt("  Leopoldstr. 1 ", "80802 ", " 2"),
	}

	addresses := analytics.UniqueAddresses(orders)
	assert.Len(t, addresses, 1)
}

func TestUniqueAddressesDistinguishesFloors(t *testing.T) {
	orders := []models.Order{
		orderAt("Leopoldstr. 1", "80802", "2"),
		orderAt("Leopoldstr. 1", "80802", "3"),
	}

	addresses := analytics.UniqueAddresses(orders)
	assert.Len(t, addresses, 2)
}

func TestUniqueAddressesEmptyOrders(t *testing.T) {
	assert.Empty(t, analytics.UniqueAddresses(nil))
}

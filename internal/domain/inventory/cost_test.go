package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-wms/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWeightedAverageCost(t *testing.T) {
	tests := []struct {
		name                       string
		stock, cost, qty, incoming string
		want                       string
	}{
		{"sin stock previo", "0", "0", "10", "2500", "2500"},
		{"mezcla de dos lotes", "10", "1000", "30", "2000", "1750"},
		{"entrada vacía conserva costo", "5", "800", "0", "1200", "800"},
		{"total cero", "0", "100", "0", "200", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.WeightedAverageCost(d(tt.stock), d(tt.cost), d(tt.qty), d(tt.incoming))
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost combina el costo vigente de un stock con el de una nueva cantidad.
// nuevo = ((stock * costo) + (cantidad * costoEntrada)) / (stock + cantidad)
// Si la cantidad resultante no es positiva devuelve cero.
func WeightedAverageCost(stock, cost, qty, incomingCost decimal.Decimal) decimal.Decimal {
	total := stock.Add(qty)
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return stock.Mul(cost).Add(qty.Mul(incomingCost)).Div(total)
}

package plugins

import (
	"sort"

	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// sheetKind tipo de hoja reconocida por el importador genérico.
type sheetKind string

const (
	kindProducts  sheetKind = "productos"
	kindInventory sheetKind = "inventario"
	kindMovements sheetKind = "movimientos"
)

// Alias de encabezados ya normalizados (minúsculas, sin tildes, con guion bajo).
var (
	colProductID   = []string{"product_id", "id_producto", "producto_id", "id"}
	colSKU         = []string{"sku", "codigo", "code", "referencia", "ref", "codigo_producto"}
	colName        = []string{"name", "nombre", "descripcion", "description", "producto", "product"}
	colCategory    = []string{"category", "categoria", "familia", "linea"}
	colSubcategory = []string{"subcategory", "subcategoria", "sublinea"}
	colBrand       = []string{"brand", "marca"}
	colUnit        = []string{"unit", "unidad", "unit_of_measure", "unidad_medida", "um"}
	colCost        = []string{"cost", "costo", "cost_price", "costo_unitario", "precio_costo", "unit_cost"}
	colPrice       = []string{"price", "precio", "selling_price", "precio_venta"}
	colMinStock    = []string{"min_stock", "stock_minimo", "minimo"}
	colMaxStock    = []string{"max_stock", "stock_maximo", "maximo"}
	colReorderPt   = []string{"reorder_point", "punto_reorden", "punto_pedido"}
	colReorderQty  = []string{"reorder_quantity", "cantidad_reorden", "cantidad_pedido"}
	colStatus      = []string{"status", "estado"}

	colQuantity  = []string{"quantity", "cantidad", "qty", "stock", "existencia", "existencias", "saldo"}
	colAvailable = []string{"available_quantity", "cantidad_disponible", "disponible"}
	colReserved  = []string{"reserved_quantity", "cantidad_reservada", "reservado", "reservada"}
	colLocation  = []string{"location", "location_id", "ubicacion", "posicion"}
	colReceipt   = []string{"last_receipt", "ultima_recepcion", "ultima_entrada"}
	colShipment  = []string{"last_shipment", "ultimo_despacho", "ultima_salida"}

	colType        = []string{"type", "tipo", "movement_type", "tipo_movimiento"}
	colDate        = []string{"date", "fecha", "movement_date", "fecha_movimiento"}
	colSource      = []string{"source_location", "origen", "ubicacion_origen"}
	colDestination = []string{"destination_location", "destino", "ubicacion_destino"}
	colZone        = []string{"zone", "zona"}
	colLot         = []string{"lot", "lote"}
	colExpiration  = []string{"expiration_date", "vencimiento", "fecha_vencimiento"}
	colReference   = []string{"reference", "documento", "doc", "numero_documento", "observacion"}
)

var sheetNames = map[sheetKind][]string{
	kindProducts:  {"products", "productos", "catalogo", "items", "articulos"},
	kindInventory: {"inventory", "inventario", "stock", "existencias"},
	kindMovements: {"movements", "movimientos", "kardex", "transacciones"},
}

// requiredColumns cada entrada es un grupo de alias del que debe existir al menos uno.
var requiredColumns = map[sheetKind][][]string{
	kindProducts:  {colSKU, colName},
	kindInventory: {append(append([]string{}, colProductID...), colSKU...), colQuantity},
	kindMovements: {append(append([]string{}, colProductID...), colSKU...), colType, colQuantity, colDate},
}

var knownColumns = func() map[sheetKind]map[string]bool {
	groups := map[sheetKind][][]string{
		kindProducts: {colProductID, colSKU, colName, colCategory, colSubcategory, colBrand, colUnit, colCost,
			colPrice, colMinStock, colMaxStock, colReorderPt, colReorderQty, colStatus},
		kindInventory: {colProductID, colSKU, colName, colQuantity, colAvailable, colReserved, colLocation,
			colReceipt, colShipment, colCost},
		kindMovements: {colProductID, colSKU, colName, colType, colQuantity, colDate, colSource, colDestination,
			colZone, colLot, colExpiration, colReference, colLocation},
	}
	out := make(map[sheetKind]map[string]bool, len(groups))
	for kind, gs := range groups {
		set := map[string]bool{}
		for _, g := range gs {
			for _, c := range g {
				set[c] = true
			}
		}
		out[kind] = set
	}
	return out
}()

// classifySheet reconoce la hoja por nombre o, si no, por sus encabezados.
// Una hoja con cantidad y referencia de producto es inventario aunque traiga nombre.
func classifySheet(s *plugin.Sheet) (sheetKind, bool) {
	name := normalizeName(s.Name)
	for _, kind := range []sheetKind{kindProducts, kindInventory, kindMovements} {
		for _, alias := range sheetNames[kind] {
			if name == normalizeName(alias) {
				return kind, true
			}
		}
	}
	switch {
	case s.HasHeader(colType...) && s.HasHeader(colDate...):
		return kindMovements, true
	case s.HasHeader(colQuantity...) && (s.HasHeader(colProductID...) || s.HasHeader(colSKU...)):
		return kindInventory, true
	case s.HasHeader(colSKU...) && s.HasHeader(colName...):
		return kindProducts, true
	}
	return "", false
}

func missingColumns(kind sheetKind, s *plugin.Sheet) [][]string {
	var missing [][]string
	for _, group := range requiredColumns[kind] {
		if !s.HasHeader(group...) {
			missing = append(missing, group)
		}
	}
	return missing
}

func unknownColumns(kind sheetKind, s *plugin.Sheet) []string {
	known := knownColumns[kind]
	var out []string
	for _, h := range s.Headers {
		if !known[h] {
			out = append(out, h)
		}
	}
	sort.Strings(out)
	return out
}

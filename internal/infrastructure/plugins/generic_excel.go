// Package plugins contiene los adaptadores de importación incluidos en la aplicación.
package plugins

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/inventory"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/spreadsheet"
)

// GenericExcelID id del importador genérico de hojas de cálculo.
const GenericExcelID = "generic-excel"

const maxRowIssuesPerSheet = 50

var _ plugin.Plugin = (*GenericExcel)(nil)

// GenericExcel importa productos, inventario y movimientos desde columnas con nombres
// reconocibles (en español o inglés). Sirve para exportaciones de cualquier sistema.
type GenericExcel struct{}

func NewGenericExcel() *GenericExcel { return &GenericExcel{} }

func (g *GenericExcel) Metadata() plugin.Metadata {
	return plugin.Metadata{
		ID:               GenericExcelID,
		Name:             "Importador genérico Excel/CSV",
		Version:          "1.0.0",
		Description:      "Lee hojas de productos, inventario y movimientos identificadas por nombre o por sus columnas",
		Author:           "bodega-wms",
		SourceSystemName: "Hoja de cálculo",
		SupportedFormats: []string{plugin.FormatXLSX, plugin.FormatXLS, plugin.FormatCSV},
	}
}

type recognizedSheet struct {
	kind  sheetKind
	sheet *plugin.Sheet
}

func normalizeName(s string) string { return spreadsheet.NormalizeHeader(s) }

// recognize clasifica las hojas en orden productos -> inventario -> movimientos.
func recognize(raw *plugin.RawInput) (found []recognizedSheet, ignored []string) {
	byKind := map[sheetKind][]recognizedSheet{}
	for i := range raw.Sheets {
		s := &raw.Sheets[i]
		kind, ok := classifySheet(s)
		if !ok {
			ignored = append(ignored, s.Name)
			continue
		}
		byKind[kind] = append(byKind[kind], recognizedSheet{kind: kind, sheet: s})
	}
	for _, kind := range []sheetKind{kindProducts, kindInventory, kindMovements} {
		found = append(found, byKind[kind]...)
	}
	return found, ignored
}

// Validate nunca falla: devuelve la lista de issues del archivo.
func (g *GenericExcel) Validate(raw *plugin.RawInput) []plugin.ValidationIssue {
	issues := []plugin.ValidationIssue{}
	if raw == nil || len(raw.Sheets) == 0 {
		return append(issues, plugin.ErrorIssue("el archivo no tiene hojas ni filas", "Verifique que el archivo no esté vacío"))
	}
	found, ignored := recognize(raw)
	if len(found) == 0 {
		return append(issues, plugin.ErrorIssue(
			"no se reconoció ninguna hoja de productos, inventario o movimientos",
			"Nombre las hojas Productos, Inventario o Movimientos, o use columnas como sku, nombre, cantidad, tipo y fecha",
		))
	}
	for _, name := range ignored {
		is := plugin.WarningIssue(fmt.Sprintf("la hoja %q no se reconoce y será ignorada", name), "")
		is.Sheet = name
		issues = append(issues, is)
	}

	for _, rs := range found {
		s := rs.sheet
		if missing := missingColumns(rs.kind, s); len(missing) > 0 {
			for _, group := range missing {
				is := plugin.ErrorIssue(
					fmt.Sprintf("la hoja %q (%s) no tiene la columna obligatoria %s", s.Name, rs.kind, group[0]),
					"Columnas aceptadas: "+strings.Join(group, ", "),
				)
				is.Sheet = s.Name
				issues = append(issues, is)
			}
			continue
		}
		if unknown := unknownColumns(rs.kind, s); len(unknown) > 0 {
			is := plugin.WarningIssue(
				fmt.Sprintf("la hoja %q tiene columnas no reconocidas que se ignorarán: %s", s.Name, strings.Join(unknown, ", ")), "")
			is.Sheet = s.Name
			issues = append(issues, is)
		}
		if len(s.Rows) == 0 {
			is := plugin.WarningIssue(fmt.Sprintf("la hoja %q no tiene filas de datos", s.Name), "")
			is.Sheet = s.Name
			issues = append(issues, is)
			continue
		}
		issues = append(issues, rowIssues(rs)...)
	}
	return issues
}

func rowIssues(rs recognizedSheet) []plugin.ValidationIssue {
	var (
		out     []plugin.ValidationIssue
		skipped int
	)
	for _, row := range rs.sheet.Rows {
		var err error
		switch rs.kind {
		case kindProducts:
			_, err = parseProductRow(row)
		case kindInventory:
			_, _, err = parseInventoryRow(row)
		case kindMovements:
			_, _, err = parseMovementRow(row)
		}
		if err == nil {
			continue
		}
		skipped++
		if len(out) >= maxRowIssuesPerSheet {
			continue
		}
		is := plugin.WarningIssue(fmt.Sprintf("fila %d: %v; se omitirá", row.Line, err), "")
		is.Sheet = rs.sheet.Name
		is.Row = row.Line
		out = append(out, is)
	}
	if skipped > maxRowIssuesPerSheet {
		is := plugin.WarningIssue(fmt.Sprintf("la hoja %q tiene %d filas con problemas en total", rs.sheet.Name, skipped), "")
		is.Sheet = rs.sheet.Name
		out = append(out, is)
	}
	return out
}

// Transform convierte las hojas reconocidas al esquema normalizado. Las filas con problemas se omiten.
func (g *GenericExcel) Transform(tc plugin.TransformContext, raw *plugin.RawInput) (*entity.NormalizedData, error) {
	issues := g.Validate(raw)
	if errs, _ := plugin.Split(issues); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs[0].Message)
	}
	ctx := tc.Context()
	found, _ := recognize(raw)

	b := newDataBuilder(tc.WarehouseID)
	b.data.Metadata = entity.ImportMetadata{
		WarehouseID:      tc.WarehouseID,
		PluginID:         GenericExcelID,
		SourceSystemName: g.Metadata().SourceSystemName,
		SourceFile:       raw.FileName,
	}

	total := raw.TotalRows()
	done := 0
	tc.Progress(0, "leyendo hojas")
	for _, rs := range found {
		for i, row := range rs.sheet.Rows {
			if i%500 == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			switch rs.kind {
			case kindProducts:
				if p, err := parseProductRow(row); err == nil {
					b.addProduct(p)
				}
			case kindInventory:
				if rec, ref, err := parseInventoryRow(row); err == nil {
					b.addInventory(rec, ref)
				}
			case kindMovements:
				if m, ref, err := parseMovementRow(row); err == nil {
					b.addMovement(m, ref)
				}
			}
			done++
			if total > 0 && done%200 == 0 {
				tc.Progress(float64(done)*100/float64(total), fmt.Sprintf("%d de %d filas", done, total))
			}
		}
		tc.Progress(float64(done)*100/float64(max(total, 1)), fmt.Sprintf("hoja %s procesada", rs.sheet.Name))
	}
	tc.Progress(100, "transformación completada")
	return b.data, nil
}

// productRef referencia a producto desde inventario o movimientos.
type productRef struct {
	id, sku, name string
	cost          decimal.Decimal
}

// dataBuilder acumula entidades deduplicando por identidad (la última fila gana).
type dataBuilder struct {
	warehouseID string
	data        *entity.NormalizedData
	productPos  map[string]int
	skuToID     map[string]string
	invPos      map[string]int
	locPos      map[string]bool
	// stock acumulado de productos creados desde filas de inventario
	synthStock map[string]decimal.Decimal
}

func newDataBuilder(warehouseID string) *dataBuilder {
	return &dataBuilder{
		warehouseID: warehouseID,
		data:        &entity.NormalizedData{},
		productPos:  map[string]int{},
		skuToID:     map[string]string{},
		invPos:      map[string]int{},
		locPos:      map[string]bool{},
		synthStock:  map[string]decimal.Decimal{},
	}
}

func (b *dataBuilder) addProduct(p entity.Product) {
	b.skuToID[strings.ToLower(p.SKU)] = p.ID
	delete(b.synthStock, p.ID)
	if pos, ok := b.productPos[p.ID]; ok {
		b.data.Products[pos] = p
		return
	}
	b.productPos[p.ID] = len(b.data.Products)
	b.data.Products = append(b.data.Products, p)
}

// resolve devuelve el id de producto; si la fila trae nombre y el producto no existe, lo crea.
func (b *dataBuilder) resolve(ref productRef) string {
	id := ref.id
	if id == "" {
		if known, ok := b.skuToID[strings.ToLower(ref.sku)]; ok {
			id = known
		} else {
			id = ref.sku
		}
	}
	if _, ok := b.productPos[id]; !ok && ref.name != "" {
		sku := ref.sku
		if sku == "" {
			sku = id
		}
		b.addProduct(entity.Product{ID: id, SKU: sku, Name: ref.name, CostPrice: ref.cost, Status: entity.ProductStatusActive})
		b.synthStock[id] = decimal.Zero
	}
	return id
}

// blendCost promedia el costo de un producto sintetizado cuando aparece en varias ubicaciones.
func (b *dataBuilder) blendCost(productID string, qty, cost decimal.Decimal) {
	stock, ok := b.synthStock[productID]
	if !ok || cost.IsZero() {
		return
	}
	p := &b.data.Products[b.productPos[productID]]
	if next := inventory.WeightedAverageCost(stock, p.CostPrice, qty, cost); next.IsPositive() {
		p.CostPrice = next
	}
	b.synthStock[productID] = stock.Add(qty)
}

func (b *dataBuilder) addInventory(rec entity.InventoryRecord, ref productRef) {
	rec.ProductID = b.resolve(ref)
	rec.WarehouseID = b.warehouseID
	b.blendCost(rec.ProductID, rec.Quantity, ref.cost)
	key := entity.InventoryRecordID(b.warehouseID, rec.ProductID, rec.LocationID)
	if pos, ok := b.invPos[key]; ok {
		b.data.Inventory[pos] = rec
	} else {
		b.invPos[key] = len(b.data.Inventory)
		b.data.Inventory = append(b.data.Inventory, rec)
	}
	if rec.LocationID != "" && !b.locPos[rec.LocationID] {
		b.locPos[rec.LocationID] = true
		b.data.Locations = append(b.data.Locations, entity.Location{
			ID:          b.warehouseID + ":" + rec.LocationID,
			WarehouseID: b.warehouseID,
			Code:        rec.LocationID,
		})
	}
}

func (b *dataBuilder) addMovement(m entity.Movement, ref productRef) {
	m.ProductID = b.resolve(productRef{id: ref.id, sku: ref.sku})
	m.WarehouseID = b.warehouseID
	b.data.Movements = append(b.data.Movements, m)
}

func parseProductRow(row plugin.Row) (entity.Product, error) {
	p := entity.Product{
		SKU:           row.Get(colSKU...),
		Name:          row.Get(colName...),
		Category:      row.Get(colCategory...),
		Subcategory:   row.Get(colSubcategory...),
		Brand:         row.Get(colBrand...),
		UnitOfMeasure: row.Get(colUnit...),
		Status:        normalizeStatus(row.Get(colStatus...)),
	}
	p.ID = row.Get(colProductID...)
	if p.ID == "" {
		p.ID = p.SKU
	}
	if p.SKU == "" {
		return p, fmt.Errorf("sin sku")
	}
	if p.Name == "" {
		return p, fmt.Errorf("producto %s sin nombre", p.SKU)
	}
	fields := []struct {
		cols []string
		dst  *decimal.Decimal
		name string
	}{
		{colCost, &p.CostPrice, "costo"},
		{colPrice, &p.SellingPrice, "precio"},
		{colMinStock, &p.MinStock, "stock mínimo"},
		{colMaxStock, &p.MaxStock, "stock máximo"},
		{colReorderPt, &p.ReorderPoint, "punto de reorden"},
		{colReorderQty, &p.ReorderQuantity, "cantidad de reorden"},
	}
	for _, f := range fields {
		v, err := parseDecimal(row.Get(f.cols...))
		if err != nil {
			return p, fmt.Errorf("%s inválido: %v", f.name, err)
		}
		if v.IsNegative() {
			return p, fmt.Errorf("%s negativo", f.name)
		}
		*f.dst = v
	}
	return p, nil
}

func parseInventoryRow(row plugin.Row) (entity.InventoryRecord, productRef, error) {
	ref := productRef{id: row.Get(colProductID...), sku: row.Get(colSKU...), name: row.Get(colName...)}
	var rec entity.InventoryRecord
	if ref.id == "" && ref.sku == "" {
		return rec, ref, fmt.Errorf("sin producto (sku o product_id)")
	}
	qty, err := parseDecimal(row.Get(colQuantity...))
	if err != nil {
		return rec, ref, fmt.Errorf("cantidad inválida: %v", err)
	}
	if qty.IsNegative() {
		return rec, ref, fmt.Errorf("cantidad negativa")
	}
	rec.Quantity = qty
	rec.AvailableQuantity = qty
	if v := row.Get(colAvailable...); v != "" {
		if rec.AvailableQuantity, err = parseDecimal(v); err != nil {
			return rec, ref, fmt.Errorf("cantidad disponible inválida: %v", err)
		}
	}
	if rec.ReservedQuantity, err = parseDecimal(row.Get(colReserved...)); err != nil {
		return rec, ref, fmt.Errorf("cantidad reservada inválida: %v", err)
	}
	if ref.cost, err = parseDecimal(row.Get(colCost...)); err != nil {
		return rec, ref, fmt.Errorf("costo inválido: %v", err)
	}
	rec.LocationID = row.Get(colLocation...)
	if v := row.Get(colReceipt...); v != "" {
		if t, err := parseDate(v); err == nil {
			rec.LastReceiptAt = &t
		}
	}
	if v := row.Get(colShipment...); v != "" {
		if t, err := parseDate(v); err == nil {
			rec.LastShipmentAt = &t
		}
	}
	return rec, ref, nil
}

func parseMovementRow(row plugin.Row) (entity.Movement, productRef, error) {
	ref := productRef{id: row.Get(colProductID...), sku: row.Get(colSKU...)}
	var m entity.Movement
	if ref.id == "" && ref.sku == "" {
		return m, ref, fmt.Errorf("sin producto (sku o product_id)")
	}
	typ, ok := parseMovementType(row.Get(colType...))
	if !ok {
		return m, ref, fmt.Errorf("tipo de movimiento %q desconocido", row.Get(colType...))
	}
	qty, err := parseDecimal(row.Get(colQuantity...))
	if err != nil {
		return m, ref, fmt.Errorf("cantidad inválida: %v", err)
	}
	date, err := parseDate(row.Get(colDate...))
	if err != nil {
		return m, ref, err
	}
	m = entity.Movement{
		Type:                typ,
		Quantity:            qty.Abs(),
		Date:                date,
		SourceLocation:      row.Get(colSource...),
		DestinationLocation: row.Get(colDestination...),
		Zone:                row.Get(colZone...),
		Lot:                 row.Get(colLot...),
		Reference:           row.Get(colReference...),
	}
	if m.SourceLocation == "" && typ == entity.MovementTypeOUT {
		m.SourceLocation = row.Get(colLocation...)
	}
	if m.DestinationLocation == "" && typ == entity.MovementTypeIN {
		m.DestinationLocation = row.Get(colLocation...)
	}
	if v := row.Get(colExpiration...); v != "" {
		if t, err := parseDate(v); err == nil {
			m.ExpirationDate = &t
		}
	}
	return m, ref, nil
}

func normalizeStatus(s string) string {
	switch normalizeName(s) {
	case "", "active", "activo", "activa":
		return entity.ProductStatusActive
	case "inactive", "inactivo", "inactiva":
		return entity.ProductStatusInactive
	case "discontinued", "descontinuado", "descontinuada":
		return entity.ProductStatusDiscontinued
	}
	return entity.ProductStatusActive
}

package plugins

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// MockGeneratorID id del generador de datos sintéticos.
const MockGeneratorID = "mock-generator"

// Valores por defecto y límites de la generación.
const (
	defaultMockProducts        = 40
	defaultMockDays            = 365
	defaultMockMovementsPerDay = 12

	maxMockProducts        = 5000
	maxMockDays            = 1825
	maxMockMovementsPerDay = 500

	// Productos "estancados" solo se mueven antes de este corte (días antes del final).
	staleCutoffDays = 200
)

var _ plugin.Plugin = (*MockGenerator)(nil)

// MockConfig parámetros de generación.
type MockConfig struct {
	Seed            uint64
	HasSeed         bool
	Products        int
	Days            int
	MovementsPerDay int
	EndDate         time.Time // último día generado; cero = hoy (UTC)
}

// MockGenerator genera un catálogo, inventario y movimientos coherentes para demostraciones.
// La salida depende solo de la entrada, la bodega y la fecha final.
type MockGenerator struct {
	now func() time.Time
}

func NewMockGenerator() *MockGenerator { return &MockGenerator{now: time.Now} }

// WithClock fija el reloj usado cuando la configuración no trae fecha final.
func (g *MockGenerator) WithClock(now func() time.Time) *MockGenerator {
	g.now = now
	return g
}

func (g *MockGenerator) Metadata() plugin.Metadata {
	return plugin.Metadata{
		ID:               MockGeneratorID,
		Name:             "Generador de datos de demostración",
		Version:          "1.0.0",
		Description:      "Ignora los datos del archivo y genera productos, inventario y movimientos sintéticos; acepta una hoja opcional config con seed, products, days, movements_per_day y end_date (sin end_date el último día es hoy en UTC)",
		Author:           "bodega-wms",
		SourceSystemName: "Datos sintéticos",
		SupportedFormats: []string{plugin.FormatXLSX, plugin.FormatXLS, plugin.FormatCSV},
	}
}

// DemoInput entrada mínima para generar datos sin archivo. seed 0 y endDate vacío usan los valores por defecto.
func DemoInput(seed int64, endDate string) *plugin.RawInput {
	raw := &plugin.RawInput{FileName: "demo", Format: plugin.FormatCSV}
	var rows []plugin.Row
	if seed != 0 {
		rows = append(rows, plugin.Row{Line: len(rows) + 2, Values: map[string]string{"key": "seed", "value": strconv.FormatInt(seed, 10)}})
	}
	if endDate != "" {
		rows = append(rows, plugin.Row{Line: len(rows) + 2, Values: map[string]string{"key": "end_date", "value": endDate}})
	}
	if len(rows) > 0 {
		raw.Sheets = []plugin.Sheet{{Name: "config", Headers: []string{"key", "value"}, Rows: rows}}
	}
	return raw
}

func (g *MockGenerator) Validate(raw *plugin.RawInput) []plugin.ValidationIssue {
	_, issues := readMockConfig(raw)
	return issues
}

// Transform genera los datos. El avance se reporta por día generado.
func (g *MockGenerator) Transform(tc plugin.TransformContext, raw *plugin.RawInput) (*entity.NormalizedData, error) {
	cfg, issues := readMockConfig(raw)
	if errs, _ := plugin.Split(issues); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs[0].Message)
	}
	if !cfg.HasSeed {
		cfg.Seed = seedFor(tc.WarehouseID)
	}
	if cfg.EndDate.IsZero() {
		cfg.EndDate = g.now().UTC()
	}
	cfg.EndDate = time.Date(cfg.EndDate.Year(), cfg.EndDate.Month(), cfg.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	fileName := ""
	if raw != nil {
		fileName = raw.FileName
	}
	data, err := generate(tc, cfg)
	if err != nil {
		return nil, err
	}
	data.Metadata = entity.ImportMetadata{
		WarehouseID:      tc.WarehouseID,
		PluginID:         MockGeneratorID,
		SourceSystemName: g.Metadata().SourceSystemName,
		SourceFile:       fileName,
		ReferenceDate:    cfg.EndDate,
	}
	return data, nil
}

func seedFor(warehouseID string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(warehouseID))
	return h.Sum64()
}

func readMockConfig(raw *plugin.RawInput) (MockConfig, []plugin.ValidationIssue) {
	cfg := MockConfig{Products: defaultMockProducts, Days: defaultMockDays, MovementsPerDay: defaultMockMovementsPerDay}
	issues := []plugin.ValidationIssue{}
	if raw == nil {
		return cfg, issues
	}
	sheet, ok := raw.SheetByName("config", "configuracion", "configuración", "parametros", "parámetros")
	if !ok {
		for i := range raw.Sheets {
			if raw.Sheets[i].HasHeader("key", "clave", "parametro") && raw.Sheets[i].HasHeader("value", "valor") {
				sheet, ok = &raw.Sheets[i], true
				break
			}
		}
	}
	if !ok {
		return cfg, issues
	}

	intParam := func(row plugin.Row, value string, dst *int, lo, hi int) {
		n, err := strconv.Atoi(value)
		if err != nil {
			is := plugin.WarningIssue(fmt.Sprintf("valor %q no numérico; se usa %d", value, *dst), "")
			is.Sheet, is.Row = sheet.Name, row.Line
			issues = append(issues, is)
			return
		}
		if n < lo || n > hi {
			is := plugin.ErrorIssue(fmt.Sprintf("valor %d fuera de rango", n), fmt.Sprintf("Use un valor entre %d y %d", lo, hi))
			is.Sheet, is.Row = sheet.Name, row.Line
			issues = append(issues, is)
			return
		}
		*dst = n
	}

	for _, row := range sheet.Rows {
		key := normalizeName(row.Get("key", "clave", "parametro"))
		value := row.Get("value", "valor")
		switch key {
		case "seed", "semilla":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				is := plugin.WarningIssue(fmt.Sprintf("semilla %q inválida; se deriva de la bodega", value), "")
				is.Sheet, is.Row = sheet.Name, row.Line
				issues = append(issues, is)
				continue
			}
			cfg.Seed, cfg.HasSeed = uint64(n), true
		case "products", "productos":
			intParam(row, value, &cfg.Products, 1, maxMockProducts)
		case "days", "dias":
			intParam(row, value, &cfg.Days, 1, maxMockDays)
		case "movements_per_day", "movimientos_por_dia":
			intParam(row, value, &cfg.MovementsPerDay, 0, maxMockMovementsPerDay)
		case "end_date", "fecha_fin":
			t, err := parseDate(value)
			if err != nil {
				is := plugin.WarningIssue(fmt.Sprintf("fecha final inválida: %v; se usa hoy", err), "")
				is.Sheet, is.Row = sheet.Name, row.Line
				issues = append(issues, is)
				continue
			}
			cfg.EndDate = t
		case "":
		default:
			is := plugin.WarningIssue(fmt.Sprintf("parámetro %q desconocido", key), "Parámetros: seed, products, days, movements_per_day, end_date")
			is.Sheet, is.Row = sheet.Name, row.Line
			issues = append(issues, is)
		}
	}
	return cfg, issues
}

type mockCategory struct {
	name  string
	items []string
}

var mockCatalog = []mockCategory{
	{"Ferretería", []string{"Tornillo drywall", "Chazo plástico", "Martillo", "Llave expansiva", "Alicate", "Destornillador"}},
	{"Eléctricos", []string{"Cable THHN", "Toma doble", "Interruptor sencillo", "Bombillo LED", "Breaker", "Canaleta"}},
	{"Plomería", []string{"Tubo PVC", "Codo PVC", "Llave de paso", "Sifón", "Cinta teflón", "Grifería lavamanos"}},
	{"Pinturas", []string{"Vinilo blanco", "Esmalte negro", "Rodillo", "Brocha", "Thinner", "Lija"}},
	{"Aseo", []string{"Escoba", "Trapeador", "Desinfectante", "Bolsa basura", "Guantes nitrilo", "Jabón industrial"}},
}

var mockVariants = []string{"x 1", "x 6", "x 12", "pequeño", "mediano", "grande", "1/2\"", "3/4\"", "galón", "cuarto"}

// Perfil de rotación por producto.
const (
	profileActive = iota
	profileStale
	profileDormant
)

func generate(tc plugin.TransformContext, cfg MockConfig) (*entity.NormalizedData, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))
	ctx := tc.Context()
	data := &entity.NormalizedData{}

	profiles := make([]int, cfg.Products)
	weights := make([]float64, cfg.Products)
	var activeWeight, staleWeight float64
	for i := 0; i < cfg.Products; i++ {
		cat := mockCatalog[i%len(mockCatalog)]
		item := cat.items[rng.IntN(len(cat.items))]
		cost := decimal.NewFromInt(int64(500 + rng.IntN(49500)))
		data.Products = append(data.Products, entity.Product{
			ID:              fmt.Sprintf("DEMO-%04d", i+1),
			SKU:             fmt.Sprintf("SKU-%04d", i+1),
			Name:            fmt.Sprintf("%s %s", item, mockVariants[rng.IntN(len(mockVariants))]),
			Category:        cat.name,
			Brand:           "Genérica",
			UnitOfMeasure:   "UND",
			MinStock:        decimal.NewFromInt(int64(5 + rng.IntN(20))),
			MaxStock:        decimal.NewFromInt(int64(200 + rng.IntN(300))),
			ReorderPoint:    decimal.NewFromInt(int64(20 + rng.IntN(30))),
			ReorderQuantity: decimal.NewFromInt(int64(50 + rng.IntN(100))),
			CostPrice:       cost,
			SellingPrice:    cost.Mul(decimal.NewFromFloat(1.35)).Round(0),
			Status:          entity.ProductStatusActive,
		})

		switch {
		case i%10 == 9:
			profiles[i] = profileDormant
		case i%10 == 8 && cfg.Days > staleCutoffDays:
			profiles[i] = profileStale
		}
		// Popularidad tipo Pareto: pocos productos concentran la mayoría de las salidas.
		weights[i] = 1 / math.Pow(float64(i+1), 1.2)
		switch profiles[i] {
		case profileActive:
			activeWeight += weights[i]
		case profileStale:
			staleWeight += weights[i]
		}

		qty := int64(rng.IntN(500))
		if rng.IntN(12) == 0 {
			qty = 0
		}
		data.Inventory = append(data.Inventory, entity.InventoryRecord{
			WarehouseID:       tc.WarehouseID,
			ProductID:         fmt.Sprintf("DEMO-%04d", i+1),
			LocationID:        fmt.Sprintf("%c-%02d", 'A'+rune(i%len(mockCatalog)), 1+i/len(mockCatalog)%40),
			Quantity:          decimal.NewFromInt(qty),
			AvailableQuantity: decimal.NewFromInt(qty),
		})
	}
	tc.Progress(10, fmt.Sprintf("%d productos generados", cfg.Products))

	pick := func(profile int, total float64) int {
		r := rng.Float64() * total
		last := -1
		for i, w := range weights {
			if profiles[i] != profile {
				continue
			}
			last = i
			r -= w
			if r <= 0 {
				return i
			}
		}
		return last
	}

	start := cfg.EndDate.AddDate(0, 0, -(cfg.Days - 1))
	for d := 0; d < cfg.Days; d++ {
		if d%30 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		day := start.AddDate(0, 0, d)
		daysBeforeEnd := cfg.Days - 1 - d
		for k := 0; k < cfg.MovementsPerDay; k++ {
			idx := -1
			if staleWeight > 0 && daysBeforeEnd > staleCutoffDays && rng.IntN(5) == 0 {
				idx = pick(profileStale, staleWeight)
			} else if activeWeight > 0 {
				idx = pick(profileActive, activeWeight)
			}
			if idx < 0 {
				continue
			}
			m := entity.Movement{
				WarehouseID: tc.WarehouseID,
				ProductID:   data.Products[idx].ID,
				Date:        day.Add(time.Duration(7+rng.IntN(11))*time.Hour + time.Duration(rng.IntN(60))*time.Minute),
				Reference:   fmt.Sprintf("DEMO-%s-%03d", day.Format("20060102"), k+1),
			}
			switch r := rng.IntN(100); {
			case r < 70:
				m.Type = entity.MovementTypeOUT
				m.Quantity = decimal.NewFromInt(int64(1 + rng.IntN(20)))
				m.SourceLocation = data.Inventory[idx].LocationID
			case r < 95:
				m.Type = entity.MovementTypeIN
				m.Quantity = decimal.NewFromInt(int64(10 + rng.IntN(90)))
				m.DestinationLocation = data.Inventory[idx].LocationID
			default:
				m.Type = entity.MovementTypeADJUSTMENT
				m.Quantity = decimal.NewFromInt(int64(1 + rng.IntN(5)))
			}
			data.Movements = append(data.Movements, m)
		}
		if d%30 == 29 || d == cfg.Days-1 {
			tc.Progress(10+90*float64(d+1)/float64(cfg.Days), fmt.Sprintf("%d de %d días generados", d+1, cfg.Days))
		}
	}
	return data, nil
}

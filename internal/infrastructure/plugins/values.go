package plugins

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/spreadsheet"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2/1/2006",
	"02-01-2006",
	"01-02-06",
}

// parseDecimal acepta "1234.5", "1.234,5", "1,234.5", "$ 1.200" y celdas vacías (cero).
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("$", "", " ", "", "\u00a0", "").Replace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	dots, commas := strings.Count(s, "."), strings.Count(s, ",")
	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas == 1:
		if len(s)-strings.Index(s, ",")-1 == 3 {
			s = strings.Replace(s, ",", "", 1)
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q no es un número", s)
	}
	return d, nil
}

// parseDate acepta los formatos comunes y números de serie de Excel.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		return excelize.ExcelDateToTime(serial, false)
	}
	return time.Time{}, fmt.Errorf("%q no es una fecha reconocida", s)
}

var movementTypeAliases = map[string]string{
	"in": entity.MovementTypeIN, "entrada": entity.MovementTypeIN, "ingreso": entity.MovementTypeIN,
	"recepcion": entity.MovementTypeIN, "compra": entity.MovementTypeIN, "inbound": entity.MovementTypeIN,
	"receipt": entity.MovementTypeIN, "e": entity.MovementTypeIN,

	"out": entity.MovementTypeOUT, "salida": entity.MovementTypeOUT, "egreso": entity.MovementTypeOUT,
	"despacho": entity.MovementTypeOUT, "venta": entity.MovementTypeOUT, "outbound": entity.MovementTypeOUT,
	"shipment": entity.MovementTypeOUT, "s": entity.MovementTypeOUT,

	"adjustment": entity.MovementTypeADJUSTMENT, "ajuste": entity.MovementTypeADJUSTMENT,
	"transfer": entity.MovementTypeTRANSFER, "traslado": entity.MovementTypeTRANSFER,
	"transferencia": entity.MovementTypeTRANSFER,
	"return": entity.MovementTypeRETURN, "devolucion": entity.MovementTypeRETURN,
}

// parseMovementType normaliza el tipo ("Salida", "out", "DESPACHO" -> OUT).
func parseMovementType(s string) (string, bool) {
	t, ok := movementTypeAliases[spreadsheet.NormalizeHeader(s)]
	return t, ok
}

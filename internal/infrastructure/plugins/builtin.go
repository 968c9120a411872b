package plugins

import "github.com/jhoicas/bodega-wms/internal/domain/plugin"

// Builtin plugins incluidos en la aplicación, en orden de registro.
func Builtin() []plugin.Plugin {
	return []plugin.Plugin{
		NewGenericExcel(),
		NewMockGenerator(),
	}
}

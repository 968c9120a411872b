package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrImportInProgress = errors.New("ya hay una importación en curso")

	// Registro de plugins
	ErrDuplicatePlugin = errors.New("ya existe un plugin con ese id")
	ErrPluginNotFound  = errors.New("plugin no encontrado")

	// Archivos de importación
	ErrFileNotFound      = errors.New("archivo no encontrado")
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
	ErrParseFailure      = errors.New("no se pudo leer el archivo")
)

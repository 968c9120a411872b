package plugin

// Severity gravedad de un issue de validación.
type Severity string

const (
	SeverityError   Severity = "error"   // bloquea la importación
	SeverityWarning Severity = "warning" // se informa, la importación puede continuar
)

// ValidationIssue problema detectado al validar una entrada.
type ValidationIssue struct {
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Suggestion  string   `json:"suggestion,omitempty"`
	CanContinue bool     `json:"can_continue"`
	Sheet       string   `json:"sheet,omitempty"`
	Row         int      `json:"row,omitempty"`
}

// ErrorIssue construye un issue bloqueante.
func ErrorIssue(message, suggestion string) ValidationIssue {
	return ValidationIssue{Severity: SeverityError, Message: message, Suggestion: suggestion, CanContinue: false}
}

// WarningIssue construye un issue no bloqueante.
func WarningIssue(message, suggestion string) ValidationIssue {
	return ValidationIssue{Severity: SeverityWarning, Message: message, Suggestion: suggestion, CanContinue: true}
}

// HasErrors indica si alguno de los issues es bloqueante.
func HasErrors(issues []ValidationIssue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Split separa errores y advertencias conservando el orden.
func Split(issues []ValidationIssue) (errs, warnings []ValidationIssue) {
	for _, is := range issues {
		if is.Severity == SeverityError {
			errs = append(errs, is)
		} else {
			warnings = append(warnings, is)
		}
	}
	return errs, warnings
}

package httperr

import (
	"fmt"
	"strings"
)

// CollaboratorError envuelve la falla de un servicio externo (calendario,
// planilla, correo). El mensaje original del proveedor se muestra tal cual;
// no hay reintento automático.
type CollaboratorError struct {
	Step string // "calendar" | "ledger" | "mail"
	Err  error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func ErrCollaborator(step string, err error) error {
	return &CollaboratorError{Step: step, Err: err}
}

// PartialFailureError indica que la secuencia de commit quedó a medias:
// los pasos en Done ya se ejecutaron y no se revierten.
type PartialFailureError struct {
	Done []string
	Step string
	Err  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf(
		"%s failed after %s: %v",
		e.Step,
		strings.Join(e.Done, ", "),
		e.Err,
	)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto the
// HTTP taxonomy: validation 400, authentication 401, not found 404,
// everything else 500 with the underlying error text.
var (
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrUsuarioInactivo       = errors.New("la cuenta del usuario está inactiva")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrPasswordIncorrecta    = errors.New("la contraseña actual es incorrecta")
	ErrCorreoExiste          = errors.New("el correo ya está registrado")
	ErrNoEncontrado          = errors.New("no encontrado")
)

// ValidationError marks malformed or missing input so handlers can
// answer 400 instead of 500
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package service

import (
	"fmt"
	"strings"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/validator"
)

type ClienteService interface {
	CrearCliente(cliente *model.Cliente, operadorID string) error
	Buscar(q string) ([]model.Cliente, error)
}

type clienteService struct {
	clienteRepo repository.ClienteRepository
}

func NewClienteService(clienteRepo repository.ClienteRepository) ClienteService {
	return &clienteService{clienteRepo: clienteRepo}
}

// CrearCliente registers a client; Correo stays optional for walk-ins
func (s *clienteService) CrearCliente(cliente *model.Cliente, operadorID string) error {
	if errs := validator.ValidateStruct(cliente); len(errs) > 0 {
		firstErr := errs[0]
		return NewValidationError(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	cliente.CreatedBy = operadorID
	cliente.UpdatedBy = operadorID
	return s.clienteRepo.Create(cliente)
}

// Buscar lists all clients when q is empty, otherwise matches a partial
// name
func (s *clienteService) Buscar(q string) ([]model.Cliente, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.clienteRepo.FindAll()
	}
	return s.clienteRepo.SearchByNombre(q)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"github.com/ljbenitez/hotel-reservas/internal/repository"
	"github.com/ljbenitez/hotel-reservas/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrHabitacionNotFound = errors.New("La habitación especificada no existe.")
	ErrClienteNotFound    = errors.New("El cliente especificado no existe.")
	ErrCapacidadExcedida  = errors.New("La cantidad de personas excede la capacidad de la habitación.")
	ErrRangoInvalido      = errors.New("La fecha de salida debe ser posterior a la fecha de ingreso.")
	ErrHabitacionOcupada  = errors.New("La habitación ya está reservada para las fechas seleccionadas.")
	ErrSinReservas        = errors.New("No se encontraron reservas para los filtros proveidos")
)

// MissingFieldError reports a required field absent from the request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("El campo %s no puede estar vacío!", e.Field)
}

type CreateReservaInput struct {
	IDHotel          uint
	IDHabitacion     uint
	FechaIngreso     time.Time
	FechaSalida      time.Time
	IDCliente        uint
	CantidadPersonas int
}

type BuscarDisponiblesInput struct {
	FechaIngreso time.Time
	FechaSalida  time.Time
	Capacidad    int
	// IDHotel scopes the search to one hotel when non-nil.
	IDHotel *uint
}

type ListReservasInput struct {
	IDHotel      uint
	FechaIngreso time.Time
	FechaSalida  *time.Time
	IDCliente    *uint
}

type ReservaService interface {
	CreateReserva(ctx context.Context, in CreateReservaInput) (*models.Reserva, error)
	BuscarDisponibles(ctx context.Context, in BuscarDisponiblesInput) ([]models.Habitacion, error)
	ListReservas(ctx context.Context, in ListReservasInput) ([]models.Reserva, error)
}

type reservaService struct {
	reservaRepo    repository.ReservaRepository
	habitacionRepo repository.HabitacionRepository
	clienteRepo    repository.ClienteRepository
	publisher      *rabbitmq.Publisher
}

func NewReservaService(
	reservaRepo repository.ReservaRepository,
	habitacionRepo repository.HabitacionRepository,
	clienteRepo repository.ClienteRepository,
	publisher *rabbitmq.Publisher,
) ReservaService {
	return &reservaService{
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
		clienteRepo:    clienteRepo,
		publisher:      publisher,
	}
}

// CreateReserva admits a new reservation. The overlap check and the insert
// run inside one transaction with the room row locked, so two concurrent
// admissions for the same room cannot both pass the check; the exclusion
// constraint installed by pkg/database backstops the same invariant at the
// store level.
func (s *reservaService) CreateReserva(ctx context.Context, in CreateReservaInput) (*models.Reserva, error) {
	if err := validateCreateReserva(in); err != nil {
		return nil, err
	}

	cantidad := in.CantidadPersonas
	if cantidad == 0 {
		cantidad = 1
	}

	var result *models.Reserva

	err := s.reservaRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the room row — serializes admissions per room.
		habitacion, err := s.habitacionRepo.FindByIDForUpdate(ctx, tx, in.IDHabitacion)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHabitacionNotFound
			}
			return err
		}
		if habitacion.HotelID != in.IDHotel {
			return ErrHabitacionNotFound
		}

		// 2. Party size must fit the room. Equal to capacity is allowed.
		if cantidad > habitacion.Capacidad {
			return ErrCapacidadExcedida
		}

		// 3. No zero- or negative-length stays.
		if !in.FechaSalida.After(in.FechaIngreso) {
			return ErrRangoInvalido
		}

		// 4. Half-open overlap: a checkout on the check-in day is fine.
		ocupadas, err := s.reservaRepo.CountOverlapping(ctx, tx, in.IDHabitacion, in.FechaIngreso, in.FechaSalida)
		if err != nil {
			return err
		}
		if ocupadas > 0 {
			return ErrHabitacionOcupada
		}

		if _, err := s.clienteRepo.FindByID(ctx, in.IDCliente); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClienteNotFound
			}
			return err
		}

		reserva := &models.Reserva{
			IDHotel:          in.IDHotel,
			IDHabitacion:     in.IDHabitacion,
			FechaIngreso:     in.FechaIngreso,
			FechaSalida:      in.FechaSalida,
			IDCliente:        in.IDCliente,
			CantidadPersonas: cantidad,
		}
		if err := s.reservaRepo.Create(ctx, tx, reserva); err != nil {
			if isSolapeConstraintError(err) {
				return ErrHabitacionOcupada
			}
			return err
		}
		result = reserva
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best-effort notification; admission never depends on the broker.
	if s.publisher != nil {
		_ = s.publisher.Publish("reserva.creada", result)
	}

	return result, nil
}

// BuscarDisponibles returns the rooms with no reservation overlapping the
// window and capacity at least in.Capacidad, sorted by room id. The result
// is a snapshot: only CreateReserva is authoritative at booking time.
func (s *reservaService) BuscarDisponibles(ctx context.Context, in BuscarDisponiblesInput) ([]models.Habitacion, error) {
	if in.FechaIngreso.IsZero() {
		return nil, &MissingFieldError{Field: "fecha_ingreso"}
	}
	if in.FechaSalida.IsZero() {
		return nil, &MissingFieldError{Field: "fecha_salida"}
	}
	if !in.FechaSalida.After(in.FechaIngreso) {
		return nil, ErrRangoInvalido
	}

	capacidad := in.Capacidad
	if capacidad == 0 {
		capacidad = 1
	}

	reservas, err := s.reservaRepo.FindOverlapping(ctx, in.FechaIngreso, in.FechaSalida)
	if err != nil {
		return nil, err
	}

	ocupadas := make(map[uint]struct{}, len(reservas))
	for _, reserva := range reservas {
		ocupadas[reserva.IDHabitacion] = struct{}{}
	}

	habitaciones, err := s.habitacionRepo.FindAll(ctx, in.IDHotel)
	if err != nil {
		return nil, err
	}

	disponibles := make([]models.Habitacion, 0, len(habitaciones))
	for _, habitacion := range habitaciones {
		if _, taken := ocupadas[habitacion.ID]; taken {
			continue
		}
		if habitacion.Capacidad < capacidad {
			continue
		}
		disponibles = append(disponibles, habitacion)
	}
	return disponibles, nil
}

// ListReservas returns the filtered reservations joined with their hotel,
// room and client, ordered by fecha_ingreso, then room floor, then room
// number. An empty result is reported as ErrSinReservas.
func (s *reservaService) ListReservas(ctx context.Context, in ListReservasInput) ([]models.Reserva, error) {
	if in.IDHotel == 0 {
		return nil, &MissingFieldError{Field: "id_hotel"}
	}
	if in.FechaIngreso.IsZero() {
		return nil, &MissingFieldError{Field: "fecha_ingreso"}
	}

	reservas, err := s.reservaRepo.FindWithDetails(ctx, repository.ReservaFilter{
		IDHotel:      in.IDHotel,
		FechaIngreso: in.FechaIngreso,
		FechaSalida:  in.FechaSalida,
		IDCliente:    in.IDCliente,
	})
	if err != nil {
		return nil, err
	}
	if len(reservas) == 0 {
		return nil, ErrSinReservas
	}
	return reservas, nil
}

func validateCreateReserva(in CreateReservaInput) error {
	switch {
	case in.IDHotel == 0:
		return &MissingFieldError{Field: "id_hotel"}
	case in.IDHabitacion == 0:
		return &MissingFieldError{Field: "id_habitacion"}
	case in.FechaIngreso.IsZero():
		return &MissingFieldError{Field: "fecha_ingreso"}
	case in.FechaSalida.IsZero():
		return &MissingFieldError{Field: "fecha_salida"}
	case in.IDCliente == 0:
		return &MissingFieldError{Field: "id_cliente"}
	}
	return nil
}

// isSolapeConstraintError recognizes the postgres exclusion constraint
// rejecting a concurrent overlapping insert.
func isSolapeConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "reservas_sin_solape")
}

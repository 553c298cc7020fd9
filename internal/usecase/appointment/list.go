package appointment

import (
	"context"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista todos os agendamentos, mais recentes primeiro. Sem
// paginação: o volume é humano (agendamentos de lavajato).
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentDTO, error) {

	apps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return assembleMany(ctx, uc.repo, apps)
}

func (uc *ListAppointments) ExecuteByUser(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentDTO, error) {

	apps, err := uc.repo.ListAppointmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return assembleMany(ctx, uc.repo, apps)
}

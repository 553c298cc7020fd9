package appointment

import (
	"context"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/dto"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

// assembleOne resolve as associações de um agendamento e monta a
// projeção via dto.AssembleAppointment.
func assembleOne(
	ctx context.Context,
	repo domain.Repository,
	ap *models.Appointment,
) (*dto.AppointmentDTO, error) {

	links, err := repo.ListAppointmentServices(ctx, []uint{ap.ID})
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]uint, 0, len(links))
	for _, link := range links {
		serviceIDs = append(serviceIDs, link.ServiceID)
	}

	services, err := repo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	out := dto.AssembleAppointment(ap, serviceIDs, services)
	return &out, nil
}

// assembleMany faz o mesmo para uma lista, resolvendo associações e
// serviços em uma consulta cada em vez de N+1.
func assembleMany(
	ctx context.Context,
	repo domain.Repository,
	apps []models.Appointment,
) ([]dto.AppointmentDTO, error) {

	ids := make([]uint, 0, len(apps))
	for _, ap := range apps {
		ids = append(ids, ap.ID)
	}

	links, err := repo.ListAppointmentServices(ctx, ids)
	if err != nil {
		return nil, err
	}

	byAppointment := make(map[uint][]uint, len(apps))
	allServiceIDs := make([]uint, 0, len(links))
	for _, link := range links {
		byAppointment[link.AppointmentID] = append(
			byAppointment[link.AppointmentID],
			link.ServiceID,
		)
		allServiceIDs = append(allServiceIDs, link.ServiceID)
	}

	services, err := repo.FindServicesByIDs(ctx, allServiceIDs)
	if err != nil {
		return nil, err
	}

	byServiceID := make(map[uint]models.Service, len(services))
	for _, svc := range services {
		byServiceID[svc.ID] = svc
	}

	out := make([]dto.AppointmentDTO, 0, len(apps))
	for i := range apps {
		serviceIDs := byAppointment[apps[i].ID]

		resolved := make([]models.Service, 0, len(serviceIDs))
		for _, id := range serviceIDs {
			if svc, ok := byServiceID[id]; ok {
				resolved = append(resolved, svc)
			}
		}

		out = append(out, dto.AssembleAppointment(&apps[i], serviceIDs, resolved))
	}

	return out, nil
}

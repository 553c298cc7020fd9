package appointment

import (
	"context"
	"time"

	"github.com/lavajato/carwash-scheduler/internal/audit"
	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/dto"
	"github.com/lavajato/carwash-scheduler/internal/httperr"
)

// CompletionNotifier dispara, sem bloquear, a notificação de serviço
// finalizado. Falhas de entrega nunca chegam até o use case.
type CompletionNotifier interface {
	Dispatch(appointmentID uint)
}

// ======================================================
// INPUT
// ======================================================

// Campos nil são mantidos como estão; o preço final nunca é recalculado
// em update.
type UpdateAppointmentInput struct {
	Status *string
	Date   *time.Time
	Time   *string

	IncludesPickup *bool
	PickupFee      *float64
	PickupAddress  *string
	PickupNotes    *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier CompletionNotifier
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier CompletionNotifier,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.Status != nil {
		next := domain.Status(*in.Status)
		if !domain.IsValidStatus(next) {
			return nil, httperr.ErrBusiness("invalid_status")
		}

		// Só a transição PARA COMPLETED notifica, uma única vez.
		if domain.NotifiesCompletion(domain.Status(ap.Status), next) {
			uc.notifier.Dispatch(ap.ID)

			uc.audit.Dispatch(audit.Event{
				UserID:   &ap.UserID,
				Action:   "appointment_completed",
				Entity:   "appointment",
				EntityID: &ap.ID,
			})
		}

		ap.Status = string(next)
	}

	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.Time != nil {
		ap.Time = *in.Time
	}
	if in.IncludesPickup != nil {
		ap.IncludesPickup = *in.IncludesPickup
	}
	if in.PickupFee != nil {
		ap.PickupFee = *in.PickupFee
	}
	if in.PickupAddress != nil {
		ap.PickupAddress = *in.PickupAddress
	}
	if in.PickupNotes != nil {
		ap.PickupNotes = *in.PickupNotes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return assembleOne(ctx, uc.repo, ap)
}

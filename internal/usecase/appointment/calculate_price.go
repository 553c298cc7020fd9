package appointment

import (
	"context"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CalculatePrice struct {
	repo domain.Repository
}

func NewCalculatePrice(repo domain.Repository) *CalculatePrice {
	return &CalculatePrice{repo: repo}
}

// Execute resolve os serviços pedidos e delega o cálculo à função pura.
// Ids desconhecidos são descartados em silêncio; só falha quando nenhum
// serviço resolve.
func (uc *CalculatePrice) Execute(
	ctx context.Context,
	size models.CarSize,
	serviceIDs []uint,
) (*domain.PriceBreakdown, error) {

	services, err := uc.repo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return nil, httperr.ErrBusiness("no_services_found")
	}

	breakdown := domain.CalculatePrice(size, services)
	return &breakdown, nil
}

package appointment

import "github.com/lavajato/carwash-scheduler/internal/models"

// ===============================
// Pricing Engine
// ===============================

// PriceItem é uma linha do detalhamento, um serviço resolvido.
type PriceItem struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	BasePrice     float64 `json:"base_price"`
	SizeSurcharge float64 `json:"size_surcharge"`
}

type PriceBreakdown struct {
	BaseTotal     float64     `json:"base_total"`
	SizeSurcharge float64     `json:"size_surcharge"`
	FinalPrice    float64     `json:"final_price"`
	Services      []PriceItem `json:"services"`
}

// sizeMultiplier escala o adicional de cada serviço pelo porte do carro.
// Porte desconhecido cai no multiplicador de MEDIUM; comportamento
// herdado do fluxo original e coberto por teste.
func sizeMultiplier(size models.CarSize) float64 {
	switch size {
	case models.SizeSmall:
		return 0.5
	case models.SizeMedium:
		return 1.0
	case models.SizeLarge:
		return 1.5
	default:
		return 1.0
	}
}

// CalculatePrice soma os preços base dos serviços resolvidos e o
// adicional de cada um escalado pelo porte. Função pura: não toca em
// I/O e não arredonda; formatação de moeda é problema de quem exibe.
func CalculatePrice(size models.CarSize, services []models.Service) PriceBreakdown {
	b := PriceBreakdown{
		Services: make([]PriceItem, 0, len(services)),
	}

	mult := sizeMultiplier(size)

	for _, svc := range services {
		b.BaseTotal += svc.BasePrice
		b.SizeSurcharge += svc.SizeSurcharge * mult

		b.Services = append(b.Services, PriceItem{
			ID:            svc.ID,
			Name:          svc.Name,
			BasePrice:     svc.BasePrice,
			SizeSurcharge: svc.SizeSurcharge,
		})
	}

	b.FinalPrice = b.BaseTotal + b.SizeSurcharge
	return b
}

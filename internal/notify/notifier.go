package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/lavajato/carwash-scheduler/internal/models"
	"github.com/lavajato/carwash-scheduler/internal/validators"
)

// CompletionNotifier entrega a mensagem de serviço finalizado em
// background: o update de status nunca espera (nem falha) pela entrega.
type CompletionNotifier struct {
	db        *gorm.DB
	messenger Messenger
	queue     chan uint
}

func NewCompletionNotifier(db *gorm.DB, messenger Messenger) *CompletionNotifier {
	n := &CompletionNotifier{
		db:        db,
		messenger: messenger,
		queue:     make(chan uint, 100),
	}

	go n.worker()
	return n
}

func (n *CompletionNotifier) worker() {
	for appointmentID := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := n.Notify(ctx, appointmentID); err != nil {
			log.Println("notify error:", err)
		}
		cancel()
	}
}

// Dispatch enfileira sem bloquear; fila cheia descarta (melhor perder
// uma notificação do que travar a API).
func (n *CompletionNotifier) Dispatch(appointmentID uint) {
	select {
	case n.queue <- appointmentID:
	default:
		log.Println("notify queue full, dropping notification")
	}
}

// Notify resolve o agendamento completo e tenta uma única entrega.
func (n *CompletionNotifier) Notify(ctx context.Context, appointmentID uint) error {
	var ap models.Appointment
	if err := n.db.WithContext(ctx).
		Preload("User").
		Preload("Car").
		Preload("Unit").
		First(&ap, appointmentID).Error; err != nil {
		return err
	}

	to := "whatsapp:+" + validators.DigitsOnly(ap.User.Phone)

	return n.messenger.Send(ctx, to, CompletionMessage(&ap))
}

// CompletionMessage formata a mensagem enviada ao cliente quando o
// serviço é finalizado.
func CompletionMessage(ap *models.Appointment) string {
	return fmt.Sprintf(
		`Lavajato - Serviço Finalizado!

Olá %s! Seu serviço foi finalizado com sucesso.

Detalhes do Serviço:
- Carro: %s - %s
- Unidade: %s
- Endereço: %s
- Preço: R$ %.2f

Pontos de Fidelidade:
Você ganhou pontos! Continue usando nossos serviços.

Obrigado por escolher nosso lavajato!`,
		ap.User.Name,
		ap.Car.Model,
		ap.Car.Plate,
		ap.Unit.Name,
		ap.Unit.Address,
		ap.FinalPrice,
	)
}

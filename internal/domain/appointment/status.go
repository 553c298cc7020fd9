package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// IsValidStatus valida o valor recebido no update parcial.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}

// NotifiesCompletion indica se uma troca de status dispara a notificação
// de conclusão: apenas a transição PARA COMPLETED, vinda de qualquer
// outro valor. Reaplicar COMPLETED não dispara de novo.
func NotifiesCompletion(previous, next Status) bool {
	return next == StatusCompleted && previous != StatusCompleted
}

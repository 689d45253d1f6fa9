package domain

// Operation операция над бронированием, меняющая его статус
type Operation string

const (
	OpConfirm    Operation = "confirm"
	OpCancel     Operation = "cancel"
	OpReschedule Operation = "reschedule"
	OpComplete   Operation = "complete"
)

type transitionKey struct {
	From BookingStatus
	Op   Operation
}

// transitions полная таблица допустимых переходов статусов
// Терминальные статусы (cancelled, completed) не имеют исходящих переходов
var transitions = map[transitionKey]BookingStatus{
	{StatusPending, OpConfirm}: StatusConfirmed,
	{StatusPending, OpCancel}:  StatusCancelled,

	{StatusPending, OpReschedule}:     StatusRescheduled,
	{StatusConfirmed, OpReschedule}:   StatusRescheduled,
	{StatusRescheduled, OpReschedule}: StatusRescheduled,

	{StatusConfirmed, OpCancel}:   StatusCancelled,
	{StatusRescheduled, OpCancel}: StatusCancelled,

	{StatusConfirmed, OpComplete}:   StatusCompleted,
	{StatusRescheduled, OpComplete}: StatusCompleted,
}

// NextStatus возвращает статус, в который переводит операция op из статуса from,
// и false, если такой переход не разрешён таблицей
func NextStatus(from BookingStatus, op Operation) (BookingStatus, bool) {
	next, ok := transitions[transitionKey{From: from, Op: op}]
	return next, ok
}

// CanTransition возвращает true, если операция op допустима из статуса from
func CanTransition(from BookingStatus, op Operation) bool {
	_, ok := NextStatus(from, op)
	return ok
}

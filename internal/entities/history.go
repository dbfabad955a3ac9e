package entities

import "time"

type EntityKind string

const (
	KindOrder    EntityKind = "order"
	KindRequest  EntityKind = "request"
	KindDelivery EntityKind = "delivery"
)

func (k EntityKind) String() string {
	return string(k)
}

const NotesMaxLen = 200

// StatusEntry - одна запись append-only истории статусов. Пишется в той же
// транзакции что и смена статуса, порядок записей отражает порядок коммитов.
type StatusEntry struct {
	ID        int64
	Kind      EntityKind
	EntityID  int64
	Status    string
	UpdatedBy int64
	Notes     string
	Timestamp time.Time
}

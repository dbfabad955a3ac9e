// Package transition - чистый валидатор смен статусов. Одна машина
// состояний, параметризованная видом сущности: Order и DeliveryRequest
// исторически носят разные словари статусов, но переходы у них общие.
// Никаких сайд-эффектов: валидатор можно прогнать по всей таблице в тестах.
package transition

import (
	"fmt"

	"meddelivery/internal/entities"
)

// Канонические статусы единой машины. Словари конкретных сущностей
// проецируются на них (см. vocabularies).
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusAssigned  = "assigned"
	StatusPickedUp  = "picked_up"
	StatusInTransit = "in_transit"
	StatusOnTheWay  = "on_the_way"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type rule struct {
	target string
	// sources == nil значит "любой не-терминальный источник"
	sources []string
	roles   []entities.Role
}

// Порядок правил важен: первый матч по (role, target) выигрывает.
var rules = []rule{
	{target: StatusConfirmed, sources: nil, roles: []entities.Role{entities.RolePharmacy}},
	{target: StatusPreparing, sources: nil, roles: []entities.Role{entities.RolePharmacy}},
	{target: StatusReady, sources: nil, roles: []entities.Role{entities.RolePharmacy}},
	{target: StatusCancelled, sources: nil, roles: []entities.Role{entities.RolePharmacy}},

	{target: StatusAssigned, sources: []string{StatusReady}, roles: []entities.Role{entities.RoleDispatcher}},
	{target: StatusOnTheWay, sources: []string{StatusAssigned, StatusPickedUp}, roles: []entities.Role{entities.RoleDispatcher}},
	{target: StatusDelivered, sources: []string{StatusOnTheWay, StatusInTransit}, roles: []entities.Role{entities.RoleDispatcher}},

	{target: StatusPickedUp, sources: []string{StatusAssigned}, roles: []entities.Role{entities.RoleDriver}},
	{target: StatusInTransit, sources: []string{StatusPickedUp}, roles: []entities.Role{entities.RoleDriver}},
	{target: StatusDelivered, sources: []string{StatusInTransit}, roles: []entities.Role{entities.RoleDriver}},

	{target: StatusCancelled, sources: []string{StatusPending}, roles: []entities.Role{entities.RolePatient}},
}

// vocabularies - какие статусы вообще известны каждому виду сущности.
var vocabularies = map[entities.EntityKind]map[string]bool{
	entities.KindOrder: {
		StatusPending: true, StatusConfirmed: true, StatusPreparing: true,
		StatusReady: true, StatusAssigned: true, StatusPickedUp: true,
		StatusInTransit: true, StatusDelivered: true, StatusCancelled: true,
	},
	entities.KindRequest: {
		StatusPending: true, StatusConfirmed: true, StatusPreparing: true,
		StatusReady: true, StatusAssigned: true, StatusOnTheWay: true,
		StatusDelivered: true, StatusCancelled: true,
	},
	entities.KindDelivery: {
		StatusAssigned: true, StatusPickedUp: true, StatusInTransit: true,
		StatusDelivered: true, StatusCancelled: true,
	},
}

func isTerminal(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// Validate отвечает на вопрос "может ли роль перевести сущность вида kind из
// current в requested". Возвращает nil либо ошибку, оборачивающую один из
// сентинелов: ErrUnknownStatus, ErrRoleNotPermitted, ErrIllegalSourceState.
func Validate(kind entities.EntityKind, current, requested string, role entities.Role) error {
	vocab, ok := vocabularies[kind]
	if !ok {
		return fmt.Errorf("%w: unknown entity kind %q", ErrUnknownStatus, kind)
	}
	if !vocab[current] {
		return fmt.Errorf("%w: %s has no status %q", ErrUnknownStatus, kind, current)
	}
	if !vocab[requested] {
		return fmt.Errorf("%w: %s has no status %q", ErrUnknownStatus, kind, requested)
	}

	// Админ - операционный override: любой таргет из не-терминального состояния.
	if role == entities.RoleAdmin {
		if isTerminal(current) {
			return fmt.Errorf("%w: %s is terminal (requested %s)", ErrIllegalSourceState, current, requested)
		}
		return nil
	}

	roleHasTarget := false
	for _, r := range rules {
		if r.target != requested || !roleAllowed(r.roles, role) {
			continue
		}
		roleHasTarget = true

		if r.sources == nil {
			if isTerminal(current) {
				return fmt.Errorf("%w: %s is terminal (requested %s)", ErrIllegalSourceState, current, requested)
			}
			return nil
		}
		for _, src := range r.sources {
			if src == current {
				return nil
			}
		}
	}

	if roleHasTarget {
		return fmt.Errorf("%w: %s is not reachable from %s", ErrIllegalSourceState, requested, current)
	}
	return fmt.Errorf("%w: role %s may not set status %s", ErrRoleNotPermitted, role, requested)
}

func roleAllowed(roles []entities.Role, role entities.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

package audit

import (
	"fmt"

	"github.com/entitykit/entitykit/pkg/lifecycle"
)

// OperationEvent records one completed lifecycle phase for an entity.
type OperationEvent struct {
	Phase      lifecycle.EventType
	EntityType string
	EntityKey  string
}

func (e OperationEvent) MessageID() string {
	return e.Phase.String()
}

func (e OperationEvent) Message() string {
	if e.EntityKey != "" {
		return fmt.Sprintf("%s fired for %s %q", e.Phase, e.EntityType, e.EntityKey)
	}
	return fmt.Sprintf("%s fired for %s", e.Phase, e.EntityType)
}

func (e OperationEvent) Severity() Severity {
	return SeverityInfo
}

func (e OperationEvent) Facility() int {
	return FacilityLocal0
}

func (e OperationEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAction: {
			"phase": e.Phase.String(),
		},
		SDIDEntity: {
			"type": e.EntityType,
		},
	}
	if e.EntityKey != "" {
		sd[SDIDEntity]["key"] = e.EntityKey
	}
	return sd
}

package lifecycle

import (
	"sort"

	"github.com/everflown/logistics-api/internal/domain/entity"
)

// FilterUrgent devuelve las tareas urgentes: incompletas con prioridad
// "urgent" o "high", ordenadas ascendente por fecha límite (empates conservan
// el orden de entrada) y truncadas a limit. limit <= 0 devuelve el conjunto
// filtrado completo.
//
// La entrada no se modifica; invocar de nuevo con los mismos datos produce el
// mismo resultado.
func FilterUrgent(followUps []entity.FollowUp, limit int) []entity.FollowUp {
	urgent := make([]entity.FollowUp, 0, len(followUps))
	for _, f := range followUps {
		if f.Completed {
			continue
		}
		if f.Priority != entity.FollowUpPriorityUrgent && f.Priority != entity.FollowUpPriorityHigh {
			continue
		}
		urgent = append(urgent, f)
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].DueDate.Before(urgent[j].DueDate)
	})

	if limit > 0 && len(urgent) > limit {
		urgent = urgent[:limit]
	}
	return urgent
}

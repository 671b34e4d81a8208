package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
)

func task(id, priority string, due time.Time, completed bool) entity.FollowUp {
	return entity.FollowUp{ID: id, Priority: priority, DueDate: due, Completed: completed}
}

// Escenario: 5 tareas (3 urgentes incompletas, 1 urgente completada,
// 1 baja incompleta), limit=2 → exactamente las 2 urgentes incompletas más
// próximas, ordenadas por fecha límite ascendente.
func TestFilterUrgent_FiltroOrdenYLimite(t *testing.T) {
	tasks := []entity.FollowUp{
		task("c", "urgent", now.Add(72*time.Hour), false),
		task("a", "urgent", now.Add(24*time.Hour), false),
		task("completada", "urgent", now.Add(-time.Hour), true),
		task("baja", "low", now.Add(time.Hour), false),
		task("b", "urgent", now.Add(48*time.Hour), false),
	}

	got := lifecycle.FilterUrgent(tasks, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

// "high" también cuenta como urgente; "medium" y "low" no.
func TestFilterUrgent_PrioridadesIncluidas(t *testing.T) {
	tasks := []entity.FollowUp{
		task("h", "high", now, false),
		task("m", "medium", now, false),
		task("l", "low", now, false),
		task("u", "urgent", now, false),
	}

	got := lifecycle.FilterUrgent(tasks, 0)

	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []string{"h", "u"}, ids)
}

// Empates de fecha conservan el orden de entrada (orden estable).
func TestFilterUrgent_EmpatesEstables(t *testing.T) {
	due := now.Add(time.Hour)
	tasks := []entity.FollowUp{
		task("primera", "high", due, false),
		task("segunda", "urgent", due, false),
		task("tercera", "high", due, false),
	}

	got := lifecycle.FilterUrgent(tasks, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "primera", got[0].ID)
	assert.Equal(t, "segunda", got[1].ID)
	assert.Equal(t, "tercera", got[2].ID)
}

// Consulta pura: invocar dos veces con la misma entrada produce lo mismo y
// no muta el slice original.
func TestFilterUrgent_NoConsumeLaEntrada(t *testing.T) {
	tasks := []entity.FollowUp{
		task("b", "urgent", now.Add(2*time.Hour), false),
		task("a", "urgent", now.Add(time.Hour), false),
	}

	first := lifecycle.FilterUrgent(tasks, 0)
	second := lifecycle.FilterUrgent(tasks, 0)

	assert.Equal(t, first, second)
	assert.Equal(t, "b", tasks[0].ID, "la entrada no debe reordenarse")
}

func TestFilterUrgent_SinLimite(t *testing.T) {
	tasks := []entity.FollowUp{
		task("a", "urgent", now, false),
		task("b", "high", now.Add(time.Hour), false),
		task("c", "urgent", now.Add(2*time.Hour), false),
	}

	assert.Len(t, lifecycle.FilterUrgent(tasks, 0), 3)
	assert.Len(t, lifecycle.FilterUrgent(tasks, -1), 3)
	assert.Len(t, lifecycle.FilterUrgent(tasks, 10), 3, "limit mayor que el conjunto no trunca")
}

package usecase

import (
	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/state"
)

// PlanningDataUseCase lecturas de solo consulta sobre el calendario y la
// colección canónica de hechos. Las semanas son de solo importación: no hay
// mutaciones aquí.
type PlanningDataUseCase struct {
	container *state.Container
}

// NewPlanningDataUseCase construye el caso de uso.
func NewPlanningDataUseCase(container *state.Container) *PlanningDataUseCase {
	return &PlanningDataUseCase{container: container}
}

// ListWeeks devuelve el calendario en orden de hoja.
func (uc *PlanningDataUseCase) ListWeeks() *dto.WeekListResponse {
	snap := uc.container.Snapshot()
	items := make([]dto.WeekResponse, 0, len(snap.Weeks))
	for _, w := range snap.Weeks {
		items = append(items, dto.WeekResponse{
			SeqNo:      w.SeqNo,
			ID:         w.ID,
			Label:      w.Label,
			Month:      w.Month,
			MonthLabel: w.MonthLabel,
		})
	}
	return &dto.WeekListResponse{Items: items}
}

// ListFacts devuelve la colección canónica de hechos de planificación.
func (uc *PlanningDataUseCase) ListFacts() *dto.PlanningFactListResponse {
	snap := uc.container.Snapshot()
	items := make([]dto.PlanningFactResponse, 0, len(snap.Facts))
	for _, f := range snap.Facts {
		items = append(items, dto.PlanningFactResponse{
			Store:      f.Store,
			SKU:        f.SKU,
			Week:       f.Week,
			SalesUnits: f.SalesUnits,
		})
	}
	return &dto.PlanningFactListResponse{Items: items}
}

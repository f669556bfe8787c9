package entity

// FactKey es la clave compuesta (tienda, SKU, semana) que identifica un hecho
// de planificación. A lo sumo existe un hecho por clave.
type FactKey struct {
	Store string
	SKU   string
	Week  string
}

// PlanningFact es el registro canónico de unidades planificadas para una
// combinación tienda/SKU/semana. Las referencias no se validan contra las
// otras colecciones: un hecho huérfano se proyecta como cero, nunca falla.
type PlanningFact struct {
	Store      string
	SKU        string
	Week       string
	SalesUnits int64
}

// Key devuelve la clave compuesta del hecho.
func (f PlanningFact) Key() FactKey {
	return FactKey{Store: f.Store, SKU: f.SKU, Week: f.Week}
}

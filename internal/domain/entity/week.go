package entity

// Week representa una semana del calendario comercial. Solo se crea vía
// importación; nunca se edita manualmente. Month agrupa las semanas en la
// grilla y MonthLabel es su etiqueta de presentación.
type Week struct {
	SeqNo      int // orden cronológico
	ID         string
	Label      string
	Month      string
	MonthLabel string
}

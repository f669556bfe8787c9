package entity

// Store representa una tienda del plan comercial.
// SeqNo es el orden de visualización y también la clave de ordenamiento manual;
// se intercambia por pares al reordenar (mover arriba/abajo).
type Store struct {
	SeqNo int
	ID    string // único dentro de la colección
	Label string
	City  string
	State string
}

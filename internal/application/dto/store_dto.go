package dto

// CreateStoreRequest alta manual de tienda. El SeqNo no se envía: se asigna
// como el máximo existente más uno.
type CreateStoreRequest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	City  string `json:"city"`
	State string `json:"state"`
}

// ReorderStoresRequest nuevo orden completo de tiendas (lista de ids).
// Debe ser una permutación exacta de los ids existentes.
type ReorderStoresRequest struct {
	Order []string `json:"order"`
}

// StoreResponse representación de una tienda.
type StoreResponse struct {
	SeqNo int    `json:"seqNo"`
	ID    string `json:"id"`
	Label string `json:"label"`
	City  string `json:"city"`
	State string `json:"state"`
}

// StoreListResponse listado de tiendas en orden de visualización.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}

package dto

import "github.com/shopspring/decimal"

// CreateSKURequest alta manual de SKU.
type CreateSKURequest struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	Class      string          `json:"class"`
	Department string          `json:"department"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
}

// SKUResponse representación de un SKU.
type SKUResponse struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	Class      string          `json:"class"`
	Department string          `json:"department"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
}

// SKUListResponse listado de SKUs.
type SKUListResponse struct {
	Items []SKUResponse `json:"items"`
}

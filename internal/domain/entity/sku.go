package entity

import "github.com/shopspring/decimal"

// SKU representa un artículo planificable con su precio y costo unitario.
// Price y Cost no se editan en sitio: cualquier cambio reemplaza el registro
// completo en la colección.
type SKU struct {
	ID         string // único dentro de la colección
	Label      string
	Class      string
	Department string
	Price      decimal.Decimal // precio de venta unitario
	Cost       decimal.Decimal // costo unitario
}

package entity

import "time"

// Customer representa un cliente del CRM.
// Es dueño (por clave foránea) de sus ventas e interacciones.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt time.Time // se asigna una sola vez al crear
}

// CustomerWithRelations cliente junto con sus ventas e interacciones.
type CustomerWithRelations struct {
	Customer
	Sales        []*Sale
	Interactions []*Interaction
}

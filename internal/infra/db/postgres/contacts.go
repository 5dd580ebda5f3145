package postgres

import (
	"context"

	"nf-demos/go_backend/internal/domain/contact"
)

func (db *DB) InsertContact(ctx context.Context, c contact.Contact) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO contactos (ticket, nombre, apellido, telefono, correo, mensaje, fecha)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.Ticket, c.FirstName, c.LastName, c.Phone, c.Email, c.Message, c.CreatedAt)
	return err
}

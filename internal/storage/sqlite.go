package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"contacts-book/internal/models"
)

// seedColumns are read in this order; each maps to the field at the same index
var seedColumns = []models.Field{
	models.FieldFirstName,
	models.FieldLastName,
	models.FieldPhone,
	models.FieldEmail,
	models.FieldStreet,
	models.FieldApartment,
	models.FieldCity,
	models.FieldState,
	models.FieldZipcode,
	models.FieldEmergency,
}

const seedQuery = `SELECT first_name, last_name, phone, email, street, apartment, city, state, zipcode, emergency FROM contacts`

// SQLiteSeed returns a source reading the contacts table of a SQLite file.
// NULL columns leave the field unset. Rows read before an error are returned with it.
func SQLiteSeed(path string) Source {
	return SourceFunc(func(ctx context.Context) ([]models.Contact, error) {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
		if err != nil {
			return nil, fmt.Errorf("failed to open seed database: %w", err)
		}
		defer db.Close()

		rows, err := db.QueryContext(ctx, seedQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to query seed database: %w", err)
		}
		defer rows.Close()

		var contacts []models.Contact
		for rows.Next() {
			values := make([]sql.NullString, len(seedColumns))
			dest := make([]any, len(values))
			for i := range values {
				dest[i] = &values[i]
			}
			if err := rows.Scan(dest...); err != nil {
				return contacts, fmt.Errorf("failed to scan seed row %d: %w", len(contacts)+1, err)
			}

			c := models.NewContact()
			for i, field := range seedColumns {
				if values[i].Valid {
					c = c.With(field, values[i].String)
				}
			}
			contacts = append(contacts, c)
		}
		if err := rows.Err(); err != nil {
			return contacts, fmt.Errorf("failed to read seed database: %w", err)
		}
		return contacts, nil
	})
}

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"immoBack/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return models.Property{}, err
	}

	query := `
		INSERT INTO properties
			(title, description, price, location_city, location_address, country,
			 property_type, rooms, ground_area, house_area, status, images, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.LocationCity, p.LocationAddress,
		nullString(p.Country), p.PropertyType, p.Rooms, p.GroundArea, p.HouseArea,
		nullString(p.Status), images, p.CreatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Property{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	query := `
		SELECT id, title, description, price, location_city, location_address, country,
		       property_type, rooms, ground_area, house_area, status, images, created_at, updated_at
		FROM properties
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id int64) (models.Property, error) {
	query := `
		SELECT id, title, description, price, location_city, location_address, country,
		       property_type, rooms, ground_area, house_area, status, images, created_at, updated_at
		FROM properties
		WHERE id = ?
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	p, err := scanProperty(row.Scan)
	if err == sql.ErrNoRows {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// UpdateProperty replaces the stored record in full, images included. There
// is no concurrency token; the last writer wins.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return models.Property{}, err
	}

	query := `
		UPDATE properties
		SET title = ?, description = ?, price = ?, location_city = ?, location_address = ?,
		    country = ?, property_type = ?, rooms = ?, ground_area = ?, house_area = ?,
		    status = ?, images = ?, updated_at = NOW()
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.LocationCity, p.LocationAddress,
		nullString(p.Country), p.PropertyType, p.Rooms, p.GroundArea, p.HouseArea,
		nullString(p.Status), images, p.ID,
	)
	if err != nil {
		return models.Property{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Property{}, err
	}
	if rowsAffected == 0 {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return r.GetPropertyByID(ctx, p.ID)
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id int64) error {
	query := `DELETE FROM properties WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func scanProperty(scan func(dest ...any) error) (models.Property, error) {
	var (
		p         models.Property
		country   sql.NullString
		status    sql.NullString
		images    []byte
		updatedAt sql.NullTime
	)
	err := scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.LocationCity, &p.LocationAddress,
		&country, &p.PropertyType, &p.Rooms, &p.GroundArea, &p.HouseArea,
		&status, &images, &p.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}

	p.Country = country.String
	p.Status = status.String
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return models.Property{}, err
		}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

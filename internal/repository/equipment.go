package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service"
	"github.com/shenikar/safety_incident_tracker/pkg/postgres"
)

const equipmentColumns = `
	equipment_id,
	equipment_name,
	company_id,
	location_id,
	inspection_date,
	is_checked,
	inspection_interval,
	inspected_by,
	status,
	description,
	image`

type EquipmentRepository struct {
	db *pgxpool.Pool
}

func NewEquipmentRepository(db *pgxpool.Pool) service.EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func scanEquipment(row pgx.Row) (*models.Equipment, error) {
	e := &models.Equipment{}
	err := row.Scan(
		&e.EquipmentID,
		&e.EquipmentName,
		&e.CompanyID,
		&e.LocationID,
		&e.InspectionDate,
		&e.IsChecked,
		&e.InspectionInterval,
		&e.InspectedBy,
		&e.Status,
		&e.Description,
		&e.Image,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create выдает номер E#### и сохраняет оборудование вместе со связью с проверяющим
func (r *EquipmentRepository) Create(ctx context.Context, e *models.Equipment) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		equipmentID, err := nextID(ctx, tx, identifier.PrefixEquipment)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO equipments (
				equipment_id, equipment_name, company_id, location_id, inspection_date,
				is_checked, inspection_interval, inspected_by, status, description, image
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`
		_, err = tx.Exec(ctx, query,
			equipmentID,
			e.EquipmentName,
			e.CompanyID,
			e.LocationID,
			e.InspectionDate,
			e.IsChecked,
			e.InspectionInterval,
			e.InspectedBy,
			string(e.Status),
			e.Description,
			e.Image,
		)
		if err != nil {
			return fmt.Errorf("failed to create equipment: %w", err)
		}

		if err := linkInspector(ctx, tx, e.InspectedBy, equipmentID); err != nil {
			return err
		}
		e.EquipmentID = equipmentID
		return nil
	})
}

func linkInspector(ctx context.Context, q querier, employeeID int, equipmentID string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO employee_equipments (employee_id, equipment_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`, employeeID, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to link equipment to inspector: %w", err)
	}
	return nil
}

// FindDuplicate ищет оборудование с тем же названием, локацией и описанием
func (r *EquipmentRepository) FindDuplicate(ctx context.Context, name, locationID, description string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM equipments
			WHERE equipment_name = $1 AND location_id = $2 AND description = $3
		);
	`, name, locationID, description).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate equipment: %w", err)
	}
	return exists, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, equipmentID string) (*models.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE equipment_id = $1;`
	e, err := scanEquipment(r.db.QueryRow(ctx, query, equipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("equipment %s: %w", equipmentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return e, nil
}

func (r *EquipmentRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE company_id = $1 ORDER BY equipment_id;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipments: %w", err)
	}
	defer rows.Close()

	equipments := make([]*models.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment row: %w", err)
		}
		equipments = append(equipments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error equipments iteration: %w", err)
	}
	return equipments, nil
}

// RecordInspection сохраняет результат проверки и возвращает обновленную запись
func (r *EquipmentRepository) RecordInspection(ctx context.Context, equipmentID string, rec models.InspectionRecord) (*models.Equipment, error) {
	var updated *models.Equipment

	err := postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE equipments SET
				inspection_date = $1,
				inspected_by = $2,
				is_checked = $3,
				status = $4,
				description = COALESCE($5, description)
			WHERE equipment_id = $6
			RETURNING ` + equipmentColumns + `;
		`
		e, err := scanEquipment(tx.QueryRow(ctx, query,
			rec.InspectionDate,
			rec.InspectedBy,
			rec.IsChecked,
			string(rec.Status),
			rec.Description,
			equipmentID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("equipment %s: %w", equipmentID, models.ErrNotFound)
			}
			return fmt.Errorf("failed to record inspection: %w", err)
		}

		if err := linkInspector(ctx, tx, rec.InspectedBy, equipmentID); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete удаляет оборудование; связи с проверяющими удаляются каскадом
func (r *EquipmentRepository) Delete(ctx context.Context, equipmentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM equipments WHERE equipment_id = $1;`, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s: %w", equipmentID, models.ErrNotFound)
	}
	return nil
}

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

// DirectoryRepository хранит справочники: сотрудники, отделы, локации, типы травм
type DirectoryRepository struct {
	db *pgxpool.Pool
}

func NewDirectoryRepository(db *pgxpool.Pool) service.DirectoryRepository {
	return &DirectoryRepository{db: db}
}

const employeeColumns = `employee_id, COALESCE(department_id, ''), company_id, first_name, last_name, date_of_birth, email, role`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	e := &models.Employee{}
	if err := row.Scan(
		&e.EmployeeID,
		&e.DepartmentID,
		&e.CompanyID,
		&e.FirstName,
		&e.LastName,
		&e.DateOfBirth,
		&e.Email,
		&e.Role,
	); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *DirectoryRepository) CreateEmployee(ctx context.Context, e *models.Employee) error {
	query := `
		INSERT INTO employees (department_id, company_id, first_name, last_name, date_of_birth, email, role)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7)
		RETURNING employee_id;
	`
	err := r.db.QueryRow(ctx, query,
		e.DepartmentID,
		e.CompanyID,
		e.FirstName,
		e.LastName,
		e.DateOfBirth,
		e.Email,
		string(e.Role),
	).Scan(&e.EmployeeID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee with email %s: %w", e.Email, models.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: department %s does not exist", models.ErrValidation, e.DepartmentID)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *DirectoryRepository) GetEmployee(ctx context.Context, employeeID int) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	e, err := scanEmployee(r.db.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee %d: %w", employeeID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *DirectoryRepository) ListEmployeesByCompany(ctx context.Context, companyID int) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY employee_id;`
	return r.listEmployees(ctx, query, companyID)
}

func (r *DirectoryRepository) ListEmployeesByDepartment(ctx context.Context, companyID int, departmentID string) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND department_id = $2 ORDER BY employee_id;`
	return r.listEmployees(ctx, query, companyID, departmentID)
}

func (r *DirectoryRepository) listEmployees(ctx context.Context, query string, args ...any) ([]*models.Employee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error employees iteration: %w", err)
	}
	return employees, nil
}

// CreateDepartment выдает номер D#### и сохраняет отдел
func (r *DirectoryRepository) CreateDepartment(ctx context.Context, d *models.Department) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		departmentID, err := nextID(ctx, tx, identifier.PrefixDepartment)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO departments (department_id, company_id, department_name)
			VALUES ($1, $2, $3);
		`, departmentID, d.CompanyID, d.DepartmentName)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("department %q: %w", d.DepartmentName, models.ErrDuplicate)
			}
			return fmt.Errorf("failed to create department: %w", err)
		}
		d.DepartmentID = departmentID
		return nil
	})
}

func (r *DirectoryRepository) GetDepartment(ctx context.Context, departmentID string) (*models.Department, error) {
	d := &models.Department{}
	err := r.db.QueryRow(ctx, `
		SELECT department_id, company_id, department_name FROM departments WHERE department_id = $1;
	`, departmentID).Scan(&d.DepartmentID, &d.CompanyID, &d.DepartmentName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("department %s: %w", departmentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return d, nil
}

func (r *DirectoryRepository) ListDepartments(ctx context.Context, companyID int) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `
		SELECT department_id, company_id, department_name FROM departments
		WHERE company_id = $1 ORDER BY department_id;
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	departments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Department, error) {
		d := &models.Department{}
		err := row.Scan(&d.DepartmentID, &d.CompanyID, &d.DepartmentName)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan department rows: %w", err)
	}
	return departments, nil
}

const locationColumns = `location_id, location_name, company_id, manager_id, latitude, longitude`

func scanLocation(row pgx.Row) (*models.Location, error) {
	l := &models.Location{}
	if err := row.Scan(&l.LocationID, &l.LocationName, &l.CompanyID, &l.ManagerID, &l.Latitude, &l.Longitude); err != nil {
		return nil, err
	}
	return l, nil
}

// CreateLocation выдает номер L#### и сохраняет локацию
func (r *DirectoryRepository) CreateLocation(ctx context.Context, l *models.Location) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		locationID, err := nextID(ctx, tx, identifier.PrefixLocation)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO locations (location_id, location_name, company_id, manager_id, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6);
		`, locationID, l.LocationName, l.CompanyID, l.ManagerID, l.Latitude, l.Longitude)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("location %q: %w", l.LocationName, models.ErrDuplicate)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: manager does not exist", models.ErrValidation)
			}
			return fmt.Errorf("failed to create location: %w", err)
		}
		l.LocationID = locationID
		return nil
	})
}

func (r *DirectoryRepository) GetLocation(ctx context.Context, locationID string) (*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`
	l, err := scanLocation(r.db.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location %s: %w", locationID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return l, nil
}

func (r *DirectoryRepository) ListLocations(ctx context.Context, companyID int) ([]*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE company_id = $1 ORDER BY location_id;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	locations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan location rows: %w", err)
	}
	return locations, nil
}

// CreateInjuryType выдает номер T#### и сохраняет тип травмы
func (r *DirectoryRepository) CreateInjuryType(ctx context.Context, t *models.InjuryType) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		injuryTypeID, err := nextID(ctx, tx, identifier.PrefixInjuryType)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO injury_types (injury_type_id, injury_type) VALUES ($1, $2);
		`, injuryTypeID, t.InjuryType)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("injury type %q: %w", t.InjuryType, models.ErrDuplicate)
			}
			return fmt.Errorf("failed to create injury type: %w", err)
		}
		t.InjuryTypeID = injuryTypeID
		return nil
	})
}

func (r *DirectoryRepository) GetInjuryType(ctx context.Context, injuryTypeID string) (*models.InjuryType, error) {
	t := &models.InjuryType{}
	err := r.db.QueryRow(ctx, `
		SELECT injury_type_id, injury_type FROM injury_types WHERE injury_type_id = $1;
	`, injuryTypeID).Scan(&t.InjuryTypeID, &t.InjuryType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("injury type %s: %w", injuryTypeID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get injury type: %w", err)
	}
	return t, nil
}

func (r *DirectoryRepository) ListInjuryTypes(ctx context.Context) ([]*models.InjuryType, error) {
	rows, err := r.db.Query(ctx, `SELECT injury_type_id, injury_type FROM injury_types ORDER BY injury_type_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list injury types: %w", err)
	}
	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.InjuryType, error) {
		t := &models.InjuryType{}
		err := row.Scan(&t.InjuryTypeID, &t.InjuryType)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan injury type rows: %w", err)
	}
	return types, nil
}

// UpdateEmployee перезаписывает все изменяемые поля сотрудника
func (r *DirectoryRepository) UpdateEmployee(ctx context.Context, e *models.Employee) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE employees
		SET department_id = NULLIF($2, ''), first_name = $3, last_name = $4, date_of_birth = $5, email = $6, role = $7
		WHERE employee_id = $1;
	`, e.EmployeeID, e.DepartmentID, e.FirstName, e.LastName, e.DateOfBirth, e.Email, string(e.Role))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee with email %s: %w", e.Email, models.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: department %s does not exist", models.ErrValidation, e.DepartmentID)
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %d: %w", e.EmployeeID, models.ErrNotFound)
	}
	return nil
}

// DeleteEmployee удаляет сотрудника и его связи с оповещениями и оборудованием.
// Сотрудник, упомянутый в отчетах или проверках оборудования, не удаляется.
func (r *DirectoryRepository) DeleteEmployee(ctx context.Context, employeeID int) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var referenced bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM reports WHERE $1 IN (report_by, injured_employee_id, witness_id))
				OR EXISTS (SELECT 1 FROM pending_reports WHERE $1 IN (report_by, injured_employee_id, witness_id))
				OR EXISTS (SELECT 1 FROM equipments WHERE inspected_by = $1);
		`, employeeID).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("failed to check employee references: %w", err)
		}
		if referenced {
			return fmt.Errorf("%w: employee %d is referenced by reports or equipment", models.ErrValidation, employeeID)
		}

		for _, query := range []string{
			`DELETE FROM employee_alerts WHERE employee_id = $1;`,
			`DELETE FROM employee_equipments WHERE employee_id = $1;`,
			`DELETE FROM employee_reports WHERE employee_id = $1;`,
		} {
			if _, err := tx.Exec(ctx, query, employeeID); err != nil {
				return fmt.Errorf("failed to unlink employee: %w", err)
			}
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: employee %d manages a location", models.ErrValidation, employeeID)
			}
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("employee %d: %w", employeeID, models.ErrNotFound)
		}
		return nil
	})
}

func (r *DirectoryRepository) UpdateDepartment(ctx context.Context, d *models.Department) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE departments SET department_name = $2 WHERE department_id = $1;
	`, d.DepartmentID, d.DepartmentName)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("department %q: %w", d.DepartmentName, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("department %s: %w", d.DepartmentID, models.ErrNotFound)
	}
	return nil
}

// DeleteDepartment удаляет отдел вместе с адресованными ему оповещениями-связями.
// Отдел с сотрудниками удалить нельзя.
func (r *DirectoryRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM department_alerts WHERE department_id = $1;`, departmentID); err != nil {
			return fmt.Errorf("failed to unlink department alerts: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: department %s still has employees", models.ErrValidation, departmentID)
			}
			return fmt.Errorf("failed to delete department: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("department %s: %w", departmentID, models.ErrNotFound)
		}
		return nil
	})
}

func (r *DirectoryRepository) UpdateLocation(ctx context.Context, l *models.Location) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE locations SET location_name = $2, manager_id = $3, latitude = $4, longitude = $5
		WHERE location_id = $1;
	`, l.LocationID, l.LocationName, l.ManagerID, l.Latitude, l.Longitude)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("location %q: %w", l.LocationName, models.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: manager does not exist", models.ErrValidation)
		}
		return fmt.Errorf("failed to update location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location %s: %w", l.LocationID, models.ErrNotFound)
	}
	return nil
}

// DeleteLocation удаляет локацию, если на нее не ссылаются отчеты и оборудование
func (r *DirectoryRepository) DeleteLocation(ctx context.Context, locationID string) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var referenced bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM reports WHERE location_id = $1)
				OR EXISTS (SELECT 1 FROM pending_reports WHERE location_id = $1)
				OR EXISTS (SELECT 1 FROM equipments WHERE location_id = $1);
		`, locationID).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("failed to check location references: %w", err)
		}
		if referenced {
			return fmt.Errorf("%w: location %s is referenced by reports or equipment", models.ErrValidation, locationID)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM locations WHERE location_id = $1;`, locationID)
		if err != nil {
			return fmt.Errorf("failed to delete location: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("location %s: %w", locationID, models.ErrNotFound)
		}
		return nil
	})
}

func (r *DirectoryRepository) UpdateInjuryType(ctx context.Context, t *models.InjuryType) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE injury_types SET injury_type = $2 WHERE injury_type_id = $1;
	`, t.InjuryTypeID, t.InjuryType)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("injury type %q: %w", t.InjuryType, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to update injury type: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("injury type %s: %w", t.InjuryTypeID, models.ErrNotFound)
	}
	return nil
}

// DeleteInjuryType удаляет тип травмы, не использованный ни в одном отчете
func (r *DirectoryRepository) DeleteInjuryType(ctx context.Context, injuryTypeID string) error {
	return postgres.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var referenced bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM reports WHERE injury_type_id = $1)
				OR EXISTS (SELECT 1 FROM pending_reports WHERE injury_type_id = $1);
		`, injuryTypeID).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("failed to check injury type references: %w", err)
		}
		if referenced {
			return fmt.Errorf("%w: injury type %s is referenced by reports", models.ErrValidation, injuryTypeID)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM injury_types WHERE injury_type_id = $1;`, injuryTypeID)
		if err != nil {
			return fmt.Errorf("failed to delete injury type: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("injury type %s: %w", injuryTypeID, models.ErrNotFound)
		}
		return nil
	})
}

// ListInjuryTypesByCompany возвращает типы травм из утвержденных отчетов компании
func (r *DirectoryRepository) ListInjuryTypesByCompany(ctx context.Context, companyID int) ([]*models.InjuryType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT t.injury_type_id, t.injury_type
		FROM injury_types t
		JOIN reports r ON r.injury_type_id = t.injury_type_id
		WHERE r.company_id = $1
		ORDER BY t.injury_type_id;
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company injury types: %w", err)
	}
	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.InjuryType, error) {
		t := &models.InjuryType{}
		err := row.Scan(&t.InjuryTypeID, &t.InjuryType)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan injury type rows: %w", err)
	}
	return types, nil
}

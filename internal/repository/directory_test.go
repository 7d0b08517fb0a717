package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_UpdateAndDeleteRespectReferences(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	dir := NewDirectoryRepository(db).(*DirectoryRepository)
	reports := NewReportRepository(db, nil, time.Minute).(*ReportRepository)

	department := &models.Department{CompanyID: 7, DepartmentName: "Warehouse"}
	require.NoError(t, dir.CreateDepartment(ctx, department))
	assert.Equal(t, "D0001", department.DepartmentID)

	employee := &models.Employee{
		DepartmentID: department.DepartmentID,
		CompanyID:    7,
		FirstName:    "Ann",
		LastName:     "Lee",
		DateOfBirth:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Email:        "ann.lee@helpmet.test",
		Role:         models.RoleEmployee,
	}
	require.NoError(t, dir.CreateEmployee(ctx, employee))

	location := &models.Location{LocationName: "Dock", CompanyID: 7, Latitude: 49.2, Longitude: -123.1}
	require.NoError(t, dir.CreateLocation(ctx, location))
	injuryType := &models.InjuryType{InjuryType: "Fracture"}
	require.NoError(t, dir.CreateInjuryType(ctx, injuryType))

	// Отдел с сотрудником удалить нельзя
	err := dir.DeleteDepartment(ctx, department.DepartmentID)
	assert.ErrorIs(t, err, models.ErrValidation)

	// Изменение сотрудника
	employee.Role = models.RoleManager
	require.NoError(t, dir.UpdateEmployee(ctx, employee))
	stored, err := dir.GetEmployee(ctx, employee.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, stored.Role)

	// Утвержденный отчет закрепляет сотрудника, локацию и тип травмы
	pending := &models.PendingReport{
		CompanyID:         7,
		ReportBy:          employee.EmployeeID,
		InjuredEmployeeID: employee.EmployeeID,
		DateOfInjury:      time.Date(2024, 3, 14, 7, 0, 0, 0, time.UTC),
		ReportDate:        time.Now(),
		LocationID:        location.LocationID,
		InjuryTypeID:      injuryType.InjuryTypeID,
		Severity:          3,
		Description:       "Slipped on the dock",
		Status:            models.StatusOnGoing,
		ReviewDate:        time.Now(),
	}
	require.NoError(t, reports.CreatePending(ctx, pending))
	_, err = reports.Promote(ctx, pending.ID, time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, dir.DeleteEmployee(ctx, employee.EmployeeID), models.ErrValidation)
	assert.ErrorIs(t, dir.DeleteLocation(ctx, location.LocationID), models.ErrValidation)
	assert.ErrorIs(t, dir.DeleteInjuryType(ctx, injuryType.InjuryTypeID), models.ErrValidation)

	types, err := dir.ListInjuryTypesByCompany(ctx, 7)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Fracture", types[0].InjuryType)

	types, err = dir.ListInjuryTypesByCompany(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestDirectory_DeleteAndUpdateMissing(t *testing.T) {
	// Подготовка
	db := newTestDB(t)
	ctx := context.Background()
	dir := NewDirectoryRepository(db).(*DirectoryRepository)

	injuryType := &models.InjuryType{InjuryType: "Burn"}
	require.NoError(t, dir.CreateInjuryType(ctx, injuryType))
	other := &models.InjuryType{InjuryType: "Cut"}
	require.NoError(t, dir.CreateInjuryType(ctx, other))

	// Действие и проверки
	other.InjuryType = "Burn"
	assert.ErrorIs(t, dir.UpdateInjuryType(ctx, other), models.ErrDuplicate)

	require.NoError(t, dir.DeleteInjuryType(ctx, injuryType.InjuryTypeID))
	_, err := dir.GetInjuryType(ctx, injuryType.InjuryTypeID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, dir.DeleteInjuryType(ctx, injuryType.InjuryTypeID), models.ErrNotFound)
	assert.ErrorIs(t, dir.DeleteEmployee(ctx, 100400999), models.ErrNotFound)
	assert.ErrorIs(t, dir.DeleteLocation(ctx, "L0099"), models.ErrNotFound)
	assert.ErrorIs(t, dir.UpdateDepartment(ctx, &models.Department{DepartmentID: "D0099", DepartmentName: "Ghost"}), models.ErrNotFound)
}

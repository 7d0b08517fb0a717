package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectoryService(t *testing.T) (*directoryService, *mocks.MockDirectoryRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDirectoryRepository(ctrl)

	svc := NewDirectoryService(repoMock, newTestLogger()).(*directoryService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repoMock
}

func TestCreateEmployee_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	employee := &models.Employee{
		CompanyID:   7,
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Email:       " Ann.Lee@HelpMet.test ",
		Role:        models.RoleSafetyOfficer,
	}

	// Ожидания
	repoMock.EXPECT().
		CreateEmployee(ctx, employee).
		DoAndReturn(func(_ context.Context, e *models.Employee) error {
			e.EmployeeID = 100400001
			return nil
		})

	// Действие
	err := svc.CreateEmployee(ctx, employee)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 100400001, employee.EmployeeID)
	assert.Equal(t, "ann.lee@helpmet.test", employee.Email)
}

func TestCreateEmployee_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		employee *models.Employee
	}{
		{name: "Неизвестная роль", employee: &models.Employee{FirstName: "Ann", LastName: "Lee", Email: "a@helpmet.test", Role: "CEO", DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}},
		{name: "Дата рождения в будущем", employee: &models.Employee{FirstName: "Ann", LastName: "Lee", Email: "a@helpmet.test", Role: models.RoleHR, DateOfBirth: fixedNow.AddDate(1, 0, 0)}},
		{name: "Пустое имя", employee: &models.Employee{FirstName: " ", LastName: "Lee", Email: "a@helpmet.test", Role: models.RoleHR, DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			svc, _ := newTestDirectoryService(t)

			// Действие
			err := svc.CreateEmployee(context.Background(), tc.employee)

			// Проверки
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreateEmployee_Duplicate(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	employee := &models.Employee{
		FirstName:   "Ann",
		LastName:    "Lee",
		Role:        models.RoleEmployee,
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:       "a@helpmet.test",
	}

	// Ожидания
	repoMock.EXPECT().
		CreateEmployee(ctx, employee).
		Return(fmt.Errorf("employee with email a@helpmet.test: %w", models.ErrDuplicate))

	// Действие
	err := svc.CreateEmployee(ctx, employee)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestCreateLocation_CoordinatesOutOfRange(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)

	// Ожидания
	repoMock.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateLocation(context.Background(), &models.Location{LocationName: "Dock", Latitude: 91})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateDepartment_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	department := &models.Department{CompanyID: 7, DepartmentName: " Logistics "}

	// Ожидания
	repoMock.EXPECT().
		CreateDepartment(ctx, department).
		DoAndReturn(func(_ context.Context, d *models.Department) error {
			d.DepartmentID = "D0003"
			return nil
		})

	// Действие
	err := svc.CreateDepartment(ctx, department)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "D0003", department.DepartmentID)
	assert.Equal(t, "Logistics", department.DepartmentName)
}

func TestListDepartmentEmployees(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	expected := []*models.Employee{{EmployeeID: 100400001, DepartmentID: "D0001"}}

	// Ожидания
	repoMock.EXPECT().ListEmployeesByDepartment(ctx, 7, "D0001").Return(expected, nil)

	// Действие
	employees, err := svc.ListDepartmentEmployees(ctx, 7, "D0001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, employees)
}

func TestUpdateEmployee_AppliesOnlyGivenFields(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	stored := &models.Employee{
		EmployeeID:   100400001,
		DepartmentID: "D0001",
		CompanyID:    7,
		FirstName:    "Ann",
		LastName:     "Lee",
		DateOfBirth:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Email:        "ann.lee@helpmet.test",
		Role:         models.RoleEmployee,
	}
	email := " Ann.Smith@HelpMet.test "
	role := models.RoleManager

	// Ожидания
	repoMock.EXPECT().GetEmployee(ctx, 100400001).Return(stored, nil)
	repoMock.EXPECT().
		UpdateEmployee(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Employee) error {
			assert.Equal(t, "ann.smith@helpmet.test", e.Email)
			assert.Equal(t, models.RoleManager, e.Role)
			assert.Equal(t, "Lee", e.LastName)
			assert.Equal(t, "D0001", e.DepartmentID)
			return nil
		})

	// Действие
	updated, err := svc.UpdateEmployee(ctx, 100400001, models.EmployeeUpdate{Email: &email, Role: &role})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "ann.smith@helpmet.test", updated.Email)
}

func TestUpdateEmployee_Invalid(t *testing.T) {
	future := fixedNow.AddDate(0, 1, 0)
	unknownRole := models.EmployeeRole("CEO")

	testCases := []struct {
		name      string
		upd       models.EmployeeUpdate
		loadsFrom bool
	}{
		{name: "Нет полей для изменения", upd: models.EmployeeUpdate{}},
		{name: "Дата рождения в будущем", upd: models.EmployeeUpdate{DateOfBirth: &future}, loadsFrom: true},
		{name: "Неизвестная роль", upd: models.EmployeeUpdate{Role: &unknownRole}, loadsFrom: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			svc, repoMock := newTestDirectoryService(t)
			ctx := context.Background()

			// Ожидания
			if tc.loadsFrom {
				repoMock.EXPECT().GetEmployee(ctx, 100400001).Return(&models.Employee{
					EmployeeID:  100400001,
					FirstName:   "Ann",
					LastName:    "Lee",
					DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
					Email:       "ann.lee@helpmet.test",
					Role:        models.RoleEmployee,
				}, nil)
			}
			repoMock.EXPECT().UpdateEmployee(gomock.Any(), gomock.Any()).Times(0)

			// Действие
			_, err := svc.UpdateEmployee(ctx, 100400001, tc.upd)

			// Проверки
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()
	name := "Bo"

	// Ожидания
	repoMock.EXPECT().GetEmployee(ctx, 100400099).Return(nil, fmt.Errorf("employee 100400099: %w", models.ErrNotFound))
	repoMock.EXPECT().UpdateEmployee(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.UpdateEmployee(ctx, 100400099, models.EmployeeUpdate{FirstName: &name})

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteEmployee_Referenced(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		DeleteEmployee(ctx, 100400001).
		Return(fmt.Errorf("%w: employee 100400001 is referenced by injury reports", models.ErrValidation))

	// Действие
	err := svc.DeleteEmployee(ctx, 100400001)

	// Проверки
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateDepartment(t *testing.T) {
	t.Run("Пустое название", func(t *testing.T) {
		// Подготовка
		svc, repoMock := newTestDirectoryService(t)

		// Ожидания
		repoMock.EXPECT().GetDepartment(gomock.Any(), gomock.Any()).Times(0)

		// Действие
		_, err := svc.UpdateDepartment(context.Background(), "D0001", "   ")

		// Проверки
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("Переименование", func(t *testing.T) {
		// Подготовка
		svc, repoMock := newTestDirectoryService(t)
		ctx := context.Background()

		// Ожидания
		repoMock.EXPECT().GetDepartment(ctx, "D0001").Return(&models.Department{DepartmentID: "D0001", CompanyID: 7, DepartmentName: "Ops"}, nil)
		repoMock.EXPECT().
			UpdateDepartment(ctx, &models.Department{DepartmentID: "D0001", CompanyID: 7, DepartmentName: "Operations"}).
			Return(nil)

		// Действие
		d, err := svc.UpdateDepartment(ctx, "D0001", " Operations ")

		// Проверки
		require.NoError(t, err)
		assert.Equal(t, "Operations", d.DepartmentName)
	})
}

func TestUpdateLocation(t *testing.T) {
	stored := func() *models.Location {
		return &models.Location{LocationID: "L0002", LocationName: "Dock", CompanyID: 7, Latitude: 49.2, Longitude: -123.1}
	}

	t.Run("Широта вне диапазона", func(t *testing.T) {
		// Подготовка
		svc, repoMock := newTestDirectoryService(t)
		ctx := context.Background()
		lat := -91.0

		// Ожидания
		repoMock.EXPECT().GetLocation(ctx, "L0002").Return(stored(), nil)
		repoMock.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).Times(0)

		// Действие
		_, err := svc.UpdateLocation(ctx, "L0002", models.LocationUpdate{Latitude: &lat})

		// Проверки
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("Назначение менеджера", func(t *testing.T) {
		// Подготовка
		svc, repoMock := newTestDirectoryService(t)
		ctx := context.Background()
		manager := 100400002

		// Ожидания
		repoMock.EXPECT().GetLocation(ctx, "L0002").Return(stored(), nil)
		repoMock.EXPECT().UpdateLocation(ctx, gomock.Any()).Return(nil)

		// Действие
		l, err := svc.UpdateLocation(ctx, "L0002", models.LocationUpdate{ManagerID: &manager})

		// Проверки
		require.NoError(t, err)
		require.NotNil(t, l.ManagerID)
		assert.Equal(t, 100400002, *l.ManagerID)
		assert.Equal(t, "Dock", l.LocationName)
	})
}

func TestUpdateInjuryType_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		UpdateInjuryType(ctx, &models.InjuryType{InjuryTypeID: "T0042", InjuryType: "Burn"}).
		Return(fmt.Errorf("injury type T0042: %w", models.ErrNotFound))

	// Действие
	_, err := svc.UpdateInjuryType(ctx, "T0042", "Burn")

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListCompanyInjuryTypes_Empty(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestDirectoryService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListInjuryTypesByCompany(ctx, 7).Return([]*models.InjuryType{}, nil)

	// Действие
	types, err := svc.ListCompanyInjuryTypes(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, types)
}

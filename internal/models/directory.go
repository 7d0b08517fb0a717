package models

import "time"

// EmployeeRole - роль сотрудника в компании
type EmployeeRole string

const (
	RoleHR            EmployeeRole = "HR"
	RoleEmployee      EmployeeRole = "Employee"
	RoleManager       EmployeeRole = "Manager"
	RoleSafetyOfficer EmployeeRole = "Safety Officer"
)

type Employee struct {
	EmployeeID   int          `json:"employeeID"`
	DepartmentID string       `json:"departmentID"`
	CompanyID    int          `json:"companyID"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	DateOfBirth  time.Time    `json:"dateOfBirth"`
	Email        string       `json:"email"`
	Role         EmployeeRole `json:"role"`
}

type Department struct {
	DepartmentID   string `json:"departmentID"`
	CompanyID      int    `json:"companyID"`
	DepartmentName string `json:"departmentName"`
}

type Location struct {
	LocationID   string  `json:"locationID"`
	LocationName string  `json:"locationName"`
	CompanyID    int     `json:"companyID"`
	ManagerID    *int    `json:"managerID,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type InjuryType struct {
	InjuryTypeID string `json:"injuryTypeID"`
	InjuryType   string `json:"injuryType"`
}

// EmployeeUpdate - частичное изменение сотрудника, nil означает "не менять"
type EmployeeUpdate struct {
	DepartmentID *string
	FirstName    *string
	LastName     *string
	DateOfBirth  *time.Time
	Email        *string
	Role         *EmployeeRole
}

func (u EmployeeUpdate) IsEmpty() bool {
	return u.DepartmentID == nil && u.FirstName == nil && u.LastName == nil &&
		u.DateOfBirth == nil && u.Email == nil && u.Role == nil
}

func (u EmployeeUpdate) Apply(e *Employee) {
	if u.DepartmentID != nil {
		e.DepartmentID = *u.DepartmentID
	}
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.DateOfBirth != nil {
		e.DateOfBirth = *u.DateOfBirth
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Role != nil {
		e.Role = *u.Role
	}
}

// LocationUpdate - частичное изменение локации
type LocationUpdate struct {
	LocationName *string
	ManagerID    *int
	Latitude     *float64
	Longitude    *float64
}

func (u LocationUpdate) IsEmpty() bool {
	return u.LocationName == nil && u.ManagerID == nil && u.Latitude == nil && u.Longitude == nil
}

func (u LocationUpdate) Apply(l *Location) {
	if u.LocationName != nil {
		l.LocationName = *u.LocationName
	}
	if u.ManagerID != nil {
		manager := *u.ManagerID
		l.ManagerID = &manager
	}
	if u.Latitude != nil {
		l.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		l.Longitude = *u.Longitude
	}
}

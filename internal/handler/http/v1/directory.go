package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
	"github.com/shenikar/safety_incident_tracker/internal/models"
)

// @Summary Create an employee
// @Description Create an employee of a company. Email and date of birth must be unique together. Requires API key.
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param employee body CreateEmployeeRequest true "Employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} map[string]string "Invalid request body, validation error or duplicate employee"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/employees [post]
func (h *Handler) createEmployee(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createEmployee").WithField("company_id", companyID)

	var input CreateEmployeeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	employee, err := h.DTOToEmployee(companyID, input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	if err := h.directoryService.CreateEmployee(c.Request.Context(), employee); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// @Summary List employees of a company
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} models.Employee
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/employees [get]
func (h *Handler) listEmployees(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listEmployees").WithField("company_id", companyID)

	employees, err := h.directoryService.ListEmployees(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// @Summary List employees of a department
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param departmentID path string true "Department ID"
// @Success 200 {array} models.Employee
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/departments/{departmentID}/employees [get]
func (h *Handler) listDepartmentEmployees(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	departmentID, ok := codeParam(c, "departmentID", identifier.PrefixDepartment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listDepartmentEmployees").WithField("department_id", departmentID)

	employees, err := h.directoryService.ListDepartmentEmployees(c.Request.Context(), companyID, departmentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// @Summary Get employee by ID
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 400 {object} map[string]string "Invalid employee ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [get]
func (h *Handler) getEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}
	log := h.logger.WithField("method", "getEmployee").WithField("employee_id", employeeID)

	employee, err := h.directoryService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// @Summary Update an employee
// @Description Change only the given fields of an employee. Requires API key.
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Employee ID"
// @Param employee body UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} models.Employee
// @Failure 400 {object} map[string]string "Invalid request body, no fields to update or duplicate employee"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /employees/{id} [put]
func (h *Handler) updateEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}
	log := h.logger.WithField("method", "updateEmployee").WithField("employee_id", employeeID)

	var input UpdateEmployeeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	update, err := h.DTOToEmployeeUpdate(input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	employee, err := h.directoryService.UpdateEmployee(c.Request.Context(), employeeID, update)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// @Summary Delete an employee
// @Description Employees referenced by reports or equipment inspections cannot be deleted. Requires API key.
// @Tags Directory
// @Security ApiKeyAuth
// @Param id path int true "Employee ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid employee ID or employee still referenced"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /employees/{id} [delete]
func (h *Handler) deleteEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}
	log := h.logger.WithField("method", "deleteEmployee").WithField("employee_id", employeeID)

	if err := h.directoryService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a department
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param department body CreateDepartmentRequest true "Department"
// @Success 201 {object} models.Department
// @Failure 400 {object} map[string]string "Invalid request body or duplicate department"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/departments [post]
func (h *Handler) createDepartment(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createDepartment").WithField("company_id", companyID)

	var input CreateDepartmentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	department := &models.Department{CompanyID: companyID, DepartmentName: input.DepartmentName}
	if err := h.directoryService.CreateDepartment(c.Request.Context(), department); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

// @Summary List departments of a company
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} models.Department
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listDepartments").WithField("company_id", companyID)

	departments, err := h.directoryService.ListDepartments(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// @Summary Get department by ID
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Department ID"
// @Success 200 {object} models.Department
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Router /departments/{id} [get]
func (h *Handler) getDepartment(c *gin.Context) {
	departmentID, ok := codeParam(c, "id", identifier.PrefixDepartment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getDepartment").WithField("department_id", departmentID)

	department, err := h.directoryService.GetDepartment(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// @Summary Rename a department
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Department ID"
// @Param department body UpdateDepartmentRequest true "Department"
// @Success 200 {object} models.Department
// @Failure 400 {object} map[string]string "Invalid request body or duplicate department"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{id} [put]
func (h *Handler) updateDepartment(c *gin.Context) {
	departmentID, ok := codeParam(c, "id", identifier.PrefixDepartment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateDepartment").WithField("department_id", departmentID)

	var input UpdateDepartmentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	department, err := h.directoryService.UpdateDepartment(c.Request.Context(), departmentID, input.DepartmentName)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// @Summary Delete a department
// @Description Only departments without employees can be deleted. Requires API key.
// @Tags Directory
// @Security ApiKeyAuth
// @Param id path string true "Department ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Department still has employees"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{id} [delete]
func (h *Handler) deleteDepartment(c *gin.Context) {
	departmentID, ok := codeParam(c, "id", identifier.PrefixDepartment)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteDepartment").WithField("department_id", departmentID)

	if err := h.directoryService.DeleteDepartment(c.Request.Context(), departmentID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a location
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Param location body CreateLocationRequest true "Location"
// @Success 201 {object} models.Location
// @Failure 400 {object} map[string]string "Invalid request body or duplicate location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/locations [post]
func (h *Handler) createLocation(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createLocation").WithField("company_id", companyID)

	var input CreateLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	location := &models.Location{
		LocationName: input.LocationName,
		CompanyID:    companyID,
		ManagerID:    input.ManagerID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}
	if err := h.directoryService.CreateLocation(c.Request.Context(), location); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// @Summary List locations of a company
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} models.Location
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listLocations").WithField("company_id", companyID)

	locations, err := h.directoryService.ListLocations(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// @Summary Get location by ID
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Router /locations/{id} [get]
func (h *Handler) getLocation(c *gin.Context) {
	locationID, ok := codeParam(c, "id", identifier.PrefixLocation)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getLocation").WithField("location_id", locationID)

	location, err := h.directoryService.GetLocation(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// @Summary Update a location
// @Description Change only the given fields of a location. Requires API key.
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Param location body UpdateLocationRequest true "Fields to change"
// @Success 200 {object} models.Location
// @Failure 400 {object} map[string]string "Invalid request body, no fields to update or duplicate location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [put]
func (h *Handler) updateLocation(c *gin.Context) {
	locationID, ok := codeParam(c, "id", identifier.PrefixLocation)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("location_id", locationID)

	var input UpdateLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	update := models.LocationUpdate{
		LocationName: input.LocationName,
		ManagerID:    input.ManagerID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}
	location, err := h.directoryService.UpdateLocation(c.Request.Context(), locationID, update)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// @Summary Delete a location
// @Description Locations referenced by reports or equipment cannot be deleted. Requires API key.
// @Tags Directory
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Location still referenced"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [delete]
func (h *Handler) deleteLocation(c *gin.Context) {
	locationID, ok := codeParam(c, "id", identifier.PrefixLocation)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteLocation").WithField("location_id", locationID)

	if err := h.directoryService.DeleteLocation(c.Request.Context(), locationID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create an injury type
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param injuryType body CreateInjuryTypeRequest true "Injury type"
// @Success 201 {object} models.InjuryType
// @Failure 400 {object} map[string]string "Invalid request body or duplicate injury type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /injurytypes [post]
func (h *Handler) createInjuryType(c *gin.Context) {
	var input CreateInjuryTypeRequest
	log := h.logger.WithField("method", "createInjuryType")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	injuryType := &models.InjuryType{InjuryType: input.InjuryType}
	if err := h.directoryService.CreateInjuryType(c.Request.Context(), injuryType); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, injuryType)
}

// @Summary List injury types
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.InjuryType
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /injurytypes [get]
func (h *Handler) listInjuryTypes(c *gin.Context) {
	log := h.logger.WithField("method", "listInjuryTypes")

	types, err := h.directoryService.ListInjuryTypes(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary List injury types seen in a company's reports
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Company ID"
// @Success 200 {array} models.InjuryType
// @Failure 400 {object} map[string]string "Invalid company ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companies/{id}/injurytypes [get]
func (h *Handler) listCompanyInjuryTypes(c *gin.Context) {
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listCompanyInjuryTypes").WithField("company_id", companyID)

	types, err := h.directoryService.ListCompanyInjuryTypes(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Get injury type by ID
// @Tags Directory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Injury type ID"
// @Success 200 {object} models.InjuryType
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Injury type not found"
// @Router /injurytypes/{id} [get]
func (h *Handler) getInjuryType(c *gin.Context) {
	injuryTypeID, ok := codeParam(c, "id", identifier.PrefixInjuryType)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getInjuryType").WithField("injury_type_id", injuryTypeID)

	injuryType, err := h.directoryService.GetInjuryType(c.Request.Context(), injuryTypeID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, injuryType)
}

// @Summary Rename an injury type
// @Tags Directory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Injury type ID"
// @Param injuryType body UpdateInjuryTypeRequest true "Injury type"
// @Success 200 {object} models.InjuryType
// @Failure 400 {object} map[string]string "Invalid request body or duplicate injury type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Injury type not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /injurytypes/{id} [put]
func (h *Handler) updateInjuryType(c *gin.Context) {
	injuryTypeID, ok := codeParam(c, "id", identifier.PrefixInjuryType)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateInjuryType").WithField("injury_type_id", injuryTypeID)

	var input UpdateInjuryTypeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	injuryType, err := h.directoryService.UpdateInjuryType(c.Request.Context(), injuryTypeID, input.InjuryType)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, injuryType)
}

// @Summary Delete an injury type
// @Description Injury types used by reports cannot be deleted. Requires API key.
// @Tags Directory
// @Security ApiKeyAuth
// @Param id path string true "Injury type ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Injury type still referenced"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Injury type not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /injurytypes/{id} [delete]
func (h *Handler) deleteInjuryType(c *gin.Context) {
	injuryTypeID, ok := codeParam(c, "id", identifier.PrefixInjuryType)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteInjuryType").WithField("injury_type_id", injuryTypeID)

	if err := h.directoryService.DeleteInjuryType(c.Request.Context(), injuryTypeID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

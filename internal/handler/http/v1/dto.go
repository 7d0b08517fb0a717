package v1

import "time"

// SubmitReportRequest DTO для подачи отчета о травме (JSON или multipart с полями image)
// @Description DTO для подачи отчета о травме
type SubmitReportRequest struct {
	ReportBy          int    `json:"reportBy" form:"reportBy" validate:"required,gt=0"`
	InjuredEmployeeID int    `json:"injuredEmployeeID" form:"injuredEmployeeID" validate:"required,gt=0"`
	DateOfInjury      string `json:"dateOfInjury" form:"dateOfInjury" validate:"required"`
	LocationID        string `json:"locationID" form:"locationID" validate:"required"`
	InjuryTypeID      string `json:"injuryTypeID" form:"injuryTypeID" validate:"required"`
	Severity          int    `json:"severity" form:"severity" validate:"required,min=1,max=5"`
	Description       string `json:"description" form:"description" validate:"required,max=500"`
	WitnessID         *int   `json:"witnessID,omitempty" form:"witnessID"`
}

// UpdateReportRequest DTO для исправления черновика после отказа; все поля необязательны
// @Description DTO для исправления черновика после отказа
type UpdateReportRequest struct {
	InjuredEmployeeID *int    `json:"injuredEmployeeID,omitempty" form:"injuredEmployeeID" validate:"omitempty,gt=0"`
	DateOfInjury      *string `json:"dateOfInjury,omitempty" form:"dateOfInjury"`
	LocationID        *string `json:"locationID,omitempty" form:"locationID"`
	InjuryTypeID      *string `json:"injuryTypeID,omitempty" form:"injuryTypeID"`
	Severity          *int    `json:"severity,omitempty" form:"severity" validate:"omitempty,min=1,max=5"`
	Description       *string `json:"description,omitempty" form:"description" validate:"omitempty,max=500"`
	WitnessID         *int    `json:"witnessID,omitempty" form:"witnessID"`
}

// ReviewReportRequest DTO для решения проверяющего
// @Description DTO для решения проверяющего
type ReviewReportRequest struct {
	ID     string `json:"_id" validate:"required,uuid"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason,omitempty"`
}

// ApproveReportRequest DTO для утверждения черновика
// @Description DTO для утверждения черновика
type ApproveReportRequest struct {
	ID string `json:"pendingReportId" validate:"required,uuid"`
}

// HoldReportRequest DTO для перевода черновика в On hold
// @Description DTO для перевода черновика в On hold
type HoldReportRequest struct {
	ID     string `json:"_id" validate:"required,uuid"`
	Reason string `json:"reason" validate:"required"`
}

// StatusResponse DTO для ответа со статусом черновика
// @Description DTO для ответа со статусом черновика
type StatusResponse struct {
	Status string `json:"status"`
}

// CreateAlertRequest DTO для создания оповещения (multipart с полями attachments)
// @Description DTO для создания оповещения
type CreateAlertRequest struct {
	AlertName     string   `json:"alertName" form:"alertName" validate:"required,max=100"`
	SentAt        string   `json:"sentAt,omitempty" form:"sentAt"`
	Description   string   `json:"description" form:"description" validate:"required,max=300"`
	Type          string   `json:"type" form:"type" validate:"required,max=50"`
	RecipientType string   `json:"recipientType" form:"recipientType" validate:"required,oneof=employee department"`
	Recipients    []string `json:"recipients" form:"recipients" validate:"required,min=1,dive,required"`
	CC            string   `json:"cc,omitempty" form:"cc" validate:"omitempty,email"`
}

// UpdateAlertRequest DTO для изменения запланированного оповещения
// @Description DTO для изменения запланированного оповещения
type UpdateAlertRequest struct {
	AlertName          *string  `json:"alertName,omitempty" form:"alertName" validate:"omitempty,max=100"`
	Description        *string  `json:"description,omitempty" form:"description" validate:"omitempty,max=300"`
	CC                 *string  `json:"cc,omitempty" form:"cc" validate:"omitempty,email"`
	SentAt             *string  `json:"sentAt,omitempty" form:"sentAt"`
	RemovedAttachments []string `json:"removedAttachments,omitempty" form:"removedAttachments"`
}

// SendReportEmailRequest DTO для рассылки просьбы заполнить отчет
// @Description DTO для рассылки просьбы заполнить отчет
type SendReportEmailRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
	Remark     string   `json:"remark,omitempty"`
}

// CreateEmployeeRequest DTO для создания сотрудника
// @Description DTO для создания сотрудника
type CreateEmployeeRequest struct {
	DepartmentID string `json:"departmentID,omitempty"`
	FirstName    string `json:"firstName" validate:"required,max=30"`
	LastName     string `json:"lastName" validate:"required,max=30"`
	DateOfBirth  string `json:"dateOfBirth" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"role" validate:"required,oneof=HR Employee Manager 'Safety Officer'"`
}

// CreateDepartmentRequest DTO для создания отдела
// @Description DTO для создания отдела
type CreateDepartmentRequest struct {
	DepartmentName string `json:"departmentName" validate:"required,max=30"`
}

// CreateLocationRequest DTO для создания локации
// @Description DTO для создания локации
type CreateLocationRequest struct {
	LocationName string  `json:"locationName" validate:"required,max=30"`
	ManagerID    *int    `json:"managerID,omitempty"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
}

// CreateInjuryTypeRequest DTO для создания типа травмы
// @Description DTO для создания типа травмы
type CreateInjuryTypeRequest struct {
	InjuryType string `json:"injuryType" validate:"required,max=30"`
}

// UpdateEmployeeRequest DTO для частичного изменения сотрудника
// @Description DTO для частичного изменения сотрудника, отсутствующие поля не меняются
type UpdateEmployeeRequest struct {
	DepartmentID *string `json:"departmentID,omitempty"`
	FirstName    *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=30"`
	LastName     *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=30"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Role         *string `json:"role,omitempty" validate:"omitempty,oneof=HR Employee Manager 'Safety Officer'"`
}

// UpdateDepartmentRequest DTO для переименования отдела
// @Description DTO для переименования отдела
type UpdateDepartmentRequest struct {
	DepartmentName string `json:"departmentName" validate:"required,max=30"`
}

// UpdateLocationRequest DTO для частичного изменения локации
// @Description DTO для частичного изменения локации
type UpdateLocationRequest struct {
	LocationName *string  `json:"locationName,omitempty" validate:"omitempty,min=1,max=30"`
	ManagerID    *int     `json:"managerID,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdateInjuryTypeRequest DTO для переименования типа травмы
// @Description DTO для переименования типа травмы
type UpdateInjuryTypeRequest struct {
	InjuryType string `json:"injuryType" validate:"required,max=30"`
}

// CreateEquipmentRequest DTO для регистрации оборудования
// @Description DTO для регистрации оборудования
type CreateEquipmentRequest struct {
	EquipmentName      string `json:"equipmentName" validate:"required,max=30"`
	LocationID         string `json:"locationID" validate:"required"`
	InspectionDate     string `json:"inspectionDate,omitempty"`
	IsChecked          bool   `json:"isChecked"`
	InspectionInterval int    `json:"inspectionInterval" validate:"required,gt=0"`
	InspectedBy        int    `json:"inspectedBy" validate:"required,gt=0"`
	Status             string `json:"status,omitempty" validate:"omitempty,oneof=Good 'Needs Maintenance' 'Out of Service'"`
	Description        string `json:"description,omitempty" validate:"omitempty,max=500"`
	Image              string `json:"image,omitempty" validate:"omitempty,url"`
}

// InspectionRequest DTO для записи результата проверки оборудования
// @Description DTO для записи результата проверки оборудования
type InspectionRequest struct {
	InspectionDate string  `json:"inspectionDate,omitempty"`
	InspectedBy    int     `json:"inspectedBy" validate:"required,gt=0"`
	IsChecked      bool    `json:"isChecked"`
	Status         string  `json:"status" validate:"required,oneof=Good 'Needs Maintenance' 'Out of Service'"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// EquipmentResponse DTO для ответа с оборудованием и датой следующей проверки
// @Description DTO для ответа с оборудованием
type EquipmentResponse struct {
	EquipmentID        string    `json:"equipmentID"`
	EquipmentName      string    `json:"equipmentName"`
	CompanyID          int       `json:"companyID"`
	LocationID         string    `json:"locationID"`
	InspectionDate     time.Time `json:"inspectionDate"`
	IsChecked          bool      `json:"isChecked"`
	InspectionInterval int       `json:"inspectionInterval"`
	InspectedBy        int       `json:"inspectedBy"`
	Status             string    `json:"status"`
	Description        string    `json:"description"`
	Image              string    `json:"image,omitempty"`
	NextInspectionDue  time.Time `json:"nextInspectionDue"`
	Overdue            bool      `json:"overdue"`
}

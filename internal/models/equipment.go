package models

import "time"

// EquipmentStatus - техническое состояние оборудования
type EquipmentStatus string

const (
	EquipmentGood             EquipmentStatus = "Good"
	EquipmentNeedsMaintenance EquipmentStatus = "Needs Maintenance"
	EquipmentOutOfService     EquipmentStatus = "Out of Service"
)

type Equipment struct {
	EquipmentID        string          `json:"equipmentID"`
	EquipmentName      string          `json:"equipmentName"`
	CompanyID          int             `json:"companyID"`
	LocationID         string          `json:"locationID"`
	InspectionDate     time.Time       `json:"inspectionDate"`
	IsChecked          bool            `json:"isChecked"`
	InspectionInterval int             `json:"inspectionInterval"` // в днях
	InspectedBy        int             `json:"inspectedBy"`
	Status             EquipmentStatus `json:"status"`
	Description        string          `json:"description"`
	Image              string          `json:"image,omitempty"`
}

// NextInspectionDue - дата следующей плановой проверки
func (e *Equipment) NextInspectionDue() time.Time {
	return e.InspectionDate.AddDate(0, 0, e.InspectionInterval)
}

// IsOverdue сообщает, что плановая проверка просрочена на момент now
func (e *Equipment) IsOverdue(now time.Time) bool {
	return now.After(e.NextInspectionDue())
}

// InspectionRecord - результат очередной проверки оборудования
type InspectionRecord struct {
	InspectionDate time.Time
	InspectedBy    int
	IsChecked      bool
	Status         EquipmentStatus
	Description    *string
}

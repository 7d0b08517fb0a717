package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Черновики и постоянные отчеты
	reports := protected.Group("/reports")
	{
		reports.POST("/submit", h.submitReport)
		reports.PUT("/review", h.reviewReport)
		reports.POST("/approve", h.approveReport)
		reports.POST("/hold", h.holdReport)
		reports.GET("/pending/:id", h.getPendingReport)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/pdf", h.getReportPDF)
	}
	protected.GET("/update-report/:id", h.getSubmittedReport)
	protected.PUT("/update-report/:id", h.updateSubmittedReport)

	// Статистика для дашборда
	protected.GET("/injury-type-stats", h.injuryTypeStats)
	protected.GET("/weekly-injury-stats", h.weeklyInjuryStats)
	protected.GET("/previous-weekly-injury-stats", h.previousWeeklyInjuryStats)
	protected.GET("/monthly-epidemic-data", h.monthlyEpidemicData)

	protected.POST("/email/send-report-email", h.sendReportEmail)

	// Все, что принадлежит компании
	companies := protected.Group("/companies/:id")
	{
		companies.GET("/reports", h.listReports)
		companies.GET("/reports/pending", h.listPendingReports)
		companies.GET("/reports/export", h.exportReports)

		companies.POST("/alerts", h.createAlert)
		companies.GET("/alerts", h.listAlerts)

		companies.POST("/employees", h.createEmployee)
		companies.GET("/employees", h.listEmployees)
		companies.POST("/departments", h.createDepartment)
		companies.GET("/departments", h.listDepartments)
		companies.GET("/departments/:departmentID/employees", h.listDepartmentEmployees)
		companies.POST("/locations", h.createLocation)
		companies.GET("/locations", h.listLocations)
		companies.GET("/injurytypes", h.listCompanyInjuryTypes)

		companies.POST("/equipments", h.createEquipment)
		companies.GET("/equipments", h.listEquipments)
	}

	protected.GET("/alerts/:id", h.getAlert)
	protected.PUT("/alerts/:id", h.updateAlert)

	protected.GET("/employees/:id", h.getEmployee)
	protected.PUT("/employees/:id", h.updateEmployee)
	protected.DELETE("/employees/:id", h.deleteEmployee)
	protected.GET("/departments/:id", h.getDepartment)
	protected.PUT("/departments/:id", h.updateDepartment)
	protected.DELETE("/departments/:id", h.deleteDepartment)
	protected.GET("/locations/:id", h.getLocation)
	protected.PUT("/locations/:id", h.updateLocation)
	protected.DELETE("/locations/:id", h.deleteLocation)
	protected.POST("/injurytypes", h.createInjuryType)
	protected.GET("/injurytypes", h.listInjuryTypes)
	protected.GET("/injurytypes/:id", h.getInjuryType)
	protected.PUT("/injurytypes/:id", h.updateInjuryType)
	protected.DELETE("/injurytypes/:id", h.deleteInjuryType)

	equipments := protected.Group("/equipments")
	{
		equipments.GET("/:id", h.getEquipment)
		equipments.PUT("/:id", h.recordInspection)
		equipments.DELETE("/:id", h.deleteEquipment)
		equipments.GET("/:id/label", h.getEquipmentLabel)
	}
}

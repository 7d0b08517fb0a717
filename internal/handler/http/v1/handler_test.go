package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/models"
	"github.com/shenikar/safety_incident_tracker/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

type serviceMocks struct {
	reports   *mocks.MockReportService
	alerts    *mocks.MockAlertService
	directory *mocks.MockDirectoryService
	equipment *mocks.MockEquipmentService
	stats     *mocks.MockStatsService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		reports:   mocks.NewMockReportService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		directory: mocks.NewMockDirectoryService(ctrl),
		equipment: mocks.NewMockEquipmentService(ctrl),
		stats:     mocks.NewMockStatsService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        []string{"test-api-key"},
		ReportTimeZone: "America/Vancouver",
		AppBaseURL:     "https://helpmet.test",
	}

	handler := NewHandler(m.reports, m.alerts, m.directory, m.equipment, m.stats, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// multipartBody собирает multipart-форму с полями и одним файлом
func multipartBody(t *testing.T, fields map[string][]string, fileField, fileName, content string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHealthCheck_NoAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/R0001", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/reports/R0001", nil, map[string]string{"X-API-Key": "wrong-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.reports.EXPECT().GetReport(gomock.Any(), "R0001").Return(&models.Report{ReportID: "R0001"}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/R0001", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitReport_JSON(t *testing.T) {
	_, m, router := newTestHandler(t)
	newID := uuid.New()
	loc, err := time.LoadLocation("America/Vancouver")
	require.NoError(t, err)
	reqBody := SubmitReportRequest{
		ReportBy:          100400001,
		InjuredEmployeeID: 100400002,
		DateOfInjury:      "2024-03-14",
		LocationID:        "L0001",
		InjuryTypeID:      "T0002",
		Severity:          5,
		Description:       "Fell from the ladder",
	}

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any(), gomock.Len(0)).
		DoAndReturn(func(_ context.Context, r *models.PendingReport, _ []models.Upload) error {
			assert.True(t, r.DateOfInjury.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, loc)))
			assert.Nil(t, r.WitnessID)
			r.ID = newID
			r.Status = models.StatusOnGoing
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/submit", jsonBody(t, reqBody), apiKey)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.PendingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, newID, resp.ID)
	assert.Equal(t, models.StatusOnGoing, resp.Status)
}

func TestSubmitReport_MultipartWithImage(t *testing.T) {
	_, m, router := newTestHandler(t)
	body, contentType := multipartBody(t, map[string][]string{
		"reportBy":          {"100400001"},
		"injuredEmployeeID": {"100400002"},
		"dateOfInjury":      {"2024-03-14"},
		"locationID":        {"L0001"},
		"injuryTypeID":      {"T0002"},
		"severity":          {"2"},
		"description":       {"Cut finger"},
		"witnessID":         {"100400003"},
	}, "image", "finger.png", "png-bytes")

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.PendingReport, images []models.Upload) error {
			require.NotNil(t, r.WitnessID)
			assert.Equal(t, 100400003, *r.WitnessID)
			require.Len(t, images, 1)
			assert.Equal(t, "finger.png", images[0].Filename)

			f, err := images[0].Open()
			require.NoError(t, err)
			defer f.Close()
			data, err := io.ReadAll(f)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/submit", body, apiKey, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitReport_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := SubmitReportRequest{ // Тяжесть вне диапазона
		ReportBy:          100400001,
		InjuredEmployeeID: 100400002,
		DateOfInjury:      "2024-03-14",
		LocationID:        "L0001",
		InjuryTypeID:      "T0002",
		Severity:          7,
		Description:       "Fell",
	}

	m.reports.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/submit", jsonBody(t, reqBody), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'max' tag")
}

func TestSubmitReport_InvalidDate(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := SubmitReportRequest{
		ReportBy:          100400001,
		InjuredEmployeeID: 100400002,
		DateOfInjury:      "14/03/2024",
		LocationID:        "L0001",
		InjuryTypeID:      "T0002",
		Severity:          1,
		Description:       "Fell",
	}

	m.reports.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/submit", jsonBody(t, reqBody), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid dateOfInjury")
}

func TestReviewReport(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name         string
		body         string
		mockSetup    func(m serviceMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Утверждение",
			body: fmt.Sprintf(`{"_id":%q,"action":"approve"}`, id),
			mockSetup: func(m serviceMocks) {
				m.reports.EXPECT().
					ReviewReport(gomock.Any(), id, models.ActionApprove, "").
					Return(&models.ReviewOutcome{Status: models.StatusCompleted, ReportID: "R0008"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"Completed","reportID":"R0008"}`,
		},
		{
			name: "Отказ",
			body: fmt.Sprintf(`{"_id":%q,"action":"reject","reason":"Missing witness"}`, id),
			mockSetup: func(m serviceMocks) {
				m.reports.EXPECT().
					ReviewReport(gomock.Any(), id, models.ActionReject, "Missing witness").
					Return(&models.ReviewOutcome{Status: models.StatusOnHold}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"On hold"}`,
		},
		{
			name:         "Неизвестное действие",
			body:         fmt.Sprintf(`{"_id":%q,"action":"archive"}`, id),
			mockSetup:    func(m serviceMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Уже утвержден параллельным запросом",
			body: fmt.Sprintf(`{"_id":%q,"action":"approve"}`, id),
			mockSetup: func(m serviceMocks) {
				m.reports.EXPECT().
					ReviewReport(gomock.Any(), id, models.ActionApprove, "").
					Return(nil, fmt.Errorf("service: could not approve report: %w", models.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Дубликат травмы",
			body: fmt.Sprintf(`{"_id":%q,"action":"approve"}`, id),
			mockSetup: func(m serviceMocks) {
				m.reports.EXPECT().
					ReviewReport(gomock.Any(), id, models.ActionApprove, "").
					Return(nil, fmt.Errorf("service: %w: injury report already exists", models.ErrDuplicate))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"service: duplicate record: injury report already exists"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			tc.mockSetup(m)

			w := makeRequest(router, http.MethodPut, "/api/v1/reports/review", strings.NewReader(tc.body), apiKey)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}

func TestApproveReport_InvalidTransition(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.reports.EXPECT().
		ApproveReport(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: could not approve report: %w", models.ErrInvalidTransition))

	body := fmt.Sprintf(`{"pendingReportId":%q}`, id)
	w := makeRequest(router, http.MethodPost, "/api/v1/reports/approve", strings.NewReader(body), apiKey)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHoldReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.reports.EXPECT().HoldReport(gomock.Any(), id, "Blurry photos").Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/hold", strings.NewReader(fmt.Sprintf(`{"_id":%q,"reason":"Blurry photos"}`, id)), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"On hold"}`, w.Body.String())
}

func TestGetPendingReport_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.reports.EXPECT().GetPendingReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/pending/not-a-uuid", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestGetSubmittedReport_NotOnHold(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.reports.EXPECT().
		GetSubmittedReport(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: %w: report cannot be updated", models.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/update-report/"+id.String(), nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSubmittedReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()
	severity := 3

	m.reports.EXPECT().
		UpdatePendingReport(gomock.Any(), id, gomock.Any(), gomock.Len(0)).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u models.PendingReportUpdate, _ []models.Upload) (*models.PendingReport, error) {
			require.NotNil(t, u.Severity)
			assert.Equal(t, 3, *u.Severity)
			assert.Nil(t, u.DateOfInjury)
			return &models.PendingReport{ID: id, Status: models.StatusOnGoing, Severity: 3}, nil
		})

	w := makeRequest(router, http.MethodPut, "/api/v1/update-report/"+id.String(), jsonBody(t, UpdateReportRequest{Severity: &severity}), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"On going"`)
}

func TestListReports_EmptyAndFiltered(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		ListReports(gomock.Any(), 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, f models.ReportFilter) ([]*models.Report, error) {
			assert.Equal(t, "T0001", f.InjuryTypeID)
			require.NotNil(t, f.DateOfInjury)
			return []*models.Report{}, nil
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/companies/7/reports?injuryTypeID=T0001&dateOfInjury=2024-03-14", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListReports_InvalidCompany(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/companies/abc/reports", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid company ID")
}

func TestListPendingReports_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListPendingReports(gomock.Any(), 7).Return(nil, errors.New("db is down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/companies/7/reports/pending", nil, apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestExportReports(t *testing.T) {
	_, m, router := newTestHandler(t)
	reports := []*models.Report{{ReportID: "R0001", CompanyID: 7, Severity: 2, Status: models.StatusCompleted}}

	m.reports.EXPECT().ListReports(gomock.Any(), 7, gomock.Any()).Return(reports, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/companies/7/reports/export", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "injury-reports-7.xlsx")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestGetReportPDF(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := &models.Report{ReportID: "R0002", Severity: 4, Status: models.StatusCompleted, Description: "Burned hand"}

	m.reports.EXPECT().GetReport(gomock.Any(), "R0002").Return(report, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/R0002/pdf", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestStats(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.stats.EXPECT().WeeklyInjuryStats(gomock.Any(), 7).Return([]models.WeekdayCount{{Day: 2, Count: 1}}, nil)
	m.stats.EXPECT().MonthlyInjuryData(gomock.Any(), 7, "").Return([]models.DateCount{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/weekly-injury-stats?companyID=7", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":2,"count":1}]`, w.Body.String())

	w = makeRequest(router, http.MethodGet, "/api/v1/monthly-epidemic-data?companyID=7", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = makeRequest(router, http.MethodGet, "/api/v1/injury-type-stats", nil, apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAlert_Multipart(t *testing.T) {
	_, m, router := newTestHandler(t)
	body, contentType := multipartBody(t, map[string][]string{
		"alertName":     {"Wet floor"},
		"description":   {"Floor in warehouse B is wet"},
		"type":          {"Safety"},
		"recipientType": {"department"},
		"recipients":    {"D0001, D0002"},
		"sentAt":        {"2024-03-15T09:00"},
	}, "attachments", "plan.pdf", "%PDF-1.4")

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, a *models.Alert, _ []models.Upload) error {
			assert.Equal(t, 7, a.CompanyID)
			assert.Equal(t, []string{"D0001", "D0002"}, a.Recipients)
			assert.Equal(t, 9, a.SentAt.Hour())
			a.AlertID = "A0001"
			a.DeliveryStatus = models.DeliveryScheduled
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/companies/7/alerts", body, apiKey, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"alertID":"A0001"`)
	assert.Contains(t, w.Body.String(), `"deliveryStatus":"scheduled"`)
}

func TestCreateAlert_InvalidRecipientType(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateAlertRequest{
		AlertName:     "Wet floor",
		Description:   "Floor is wet",
		Type:          "Safety",
		RecipientType: "team",
		Recipients:    []string{"X"},
	}
	w := makeRequest(router, http.MethodPost, "/api/v1/companies/7/alerts", jsonBody(t, reqBody), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RecipientType")
}

func TestUpdateAlert_AlreadyDispatched(t *testing.T) {
	_, m, router := newTestHandler(t)
	name := "Dry floor"

	m.alerts.EXPECT().
		UpdateAlert(gomock.Any(), "A0001", gomock.Any(), gomock.Len(0)).
		Return(nil, fmt.Errorf("service: %w: alert A0001 has already been dispatched", models.ErrInvalidTransition))

	w := makeRequest(router, http.MethodPut, "/api/v1/alerts/A0001", jsonBody(t, UpdateAlertRequest{AlertName: &name}), apiKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already been dispatched")
}

func TestSendReportEmail(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		RequestReports(gomock.Any(), []string{"a@helpmet.test"}, "Forklift").
		Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/email/send-report-email",
		jsonBody(t, SendReportEmailRequest{Recipients: []string{"a@helpmet.test"}, Remark: "Forklift"}), apiKey)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/email/send-report-email",
		jsonBody(t, SendReportEmailRequest{Recipients: []string{"not-an-email"}}), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEmployee_Duplicate(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateEmployeeRequest{
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: "1990-05-01",
		Email:       "ann@helpmet.test",
		Role:        "Safety Officer",
	}

	m.directory.EXPECT().
		CreateEmployee(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("employee with email ann@helpmet.test: %w", models.ErrDuplicate))

	w := makeRequest(router, http.MethodPost, "/api/v1/companies/7/employees", jsonBody(t, reqBody), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate record")
}

func TestListDepartmentEmployees(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().
		ListDepartmentEmployees(gomock.Any(), 7, "D0001").
		Return([]*models.Employee{{EmployeeID: 100400001, DepartmentID: "D0001"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/companies/7/departments/D0001/employees", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employeeID":100400001`)
}

func TestEquipment(t *testing.T) {
	_, m, router := newTestHandler(t)
	equipment := &models.Equipment{
		EquipmentID:        "E0001",
		EquipmentName:      "Fire extinguisher",
		LocationID:         "L0001",
		InspectionDate:     time.Now().AddDate(0, 0, -40),
		InspectionInterval: 30,
		Status:             models.EquipmentGood,
	}

	m.equipment.EXPECT().GetEquipment(gomock.Any(), "E0001").Return(equipment, nil).Times(2)
	m.equipment.EXPECT().DeleteEquipment(gomock.Any(), "E0001").Return(nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/equipments/E0001", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"overdue":true`)

	w = makeRequest(router, http.MethodGet, "/api/v1/equipments/E0001/label", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = makeRequest(router, http.MethodDelete, "/api/v1/equipments/E0001", nil, apiKey)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecordInspection_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.equipment.EXPECT().RecordInspection(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := InspectionRequest{InspectedBy: 100400001, Status: "Broken"}
	w := makeRequest(router, http.MethodPut, "/api/v1/equipments/E0001", jsonBody(t, reqBody), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByCode_MalformedID(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)
	m.alerts.EXPECT().GetAlert(gomock.Any(), gomock.Any()).Times(0)

	testCases := []string{
		"/api/v1/reports/A0001",
		"/api/v1/reports/R12",
		"/api/v1/alerts/alert-1",
	}
	for _, url := range testCases {
		t.Run(url, func(t *testing.T) {
			w := makeRequest(router, http.MethodGet, url, nil, apiKey)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
		})
	}
}

// Границы длины полей совпадают с размерами колонок VARCHAR в схеме
func TestFieldLengthLimits(t *testing.T) {
	reportBody := func(description string) string {
		return fmt.Sprintf(`{"reportBy":100400001,"injuredEmployeeID":100400002,"dateOfInjury":"2024-03-14",`+
			`"locationID":"L0001","injuryTypeID":"T0002","severity":3,"description":%q}`, description)
	}
	alertBody := func(name, description string) string {
		return fmt.Sprintf(`{"alertName":%q,"description":%q,"type":"Safety","recipientType":"employee","recipients":["100400001"]}`,
			name, description)
	}
	employeeBody := func(firstName string) string {
		return fmt.Sprintf(`{"firstName":%q,"lastName":"Lee","dateOfBirth":"1990-05-01","email":"ann@helpmet.test","role":"HR"}`, firstName)
	}
	equipmentBody := func(name string) string {
		return fmt.Sprintf(`{"equipmentName":%q,"locationID":"L0001","inspectionInterval":30,"inspectedBy":100400001}`, name)
	}

	testCases := []struct {
		name       string
		url        string
		body       string
		expect     func(m serviceMocks)
		wantStatus int
	}{
		{
			name: "Описание отчета ровно 500 символов",
			url:  "/api/v1/reports/submit",
			body: reportBody(strings.Repeat("a", 500)),
			expect: func(m serviceMocks) {
				m.reports.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Описание отчета 501 символ",
			url:  "/api/v1/reports/submit",
			body: reportBody(strings.Repeat("a", 501)),
			expect: func(m serviceMocks) {
				m.reports.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Название оповещения 100 и описание 300 символов",
			url:  "/api/v1/companies/7/alerts",
			body: alertBody(strings.Repeat("n", 100), strings.Repeat("d", 300)),
			expect: func(m serviceMocks) {
				m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Название оповещения 101 символ",
			url:  "/api/v1/companies/7/alerts",
			body: alertBody(strings.Repeat("n", 101), "Floor is wet"),
			expect: func(m serviceMocks) {
				m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Описание оповещения 301 символ",
			url:  "/api/v1/companies/7/alerts",
			body: alertBody("Wet floor", strings.Repeat("d", 301)),
			expect: func(m serviceMocks) {
				m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Имя сотрудника 30 символов",
			url:  "/api/v1/companies/7/employees",
			body: employeeBody(strings.Repeat("f", 30)),
			expect: func(m serviceMocks) {
				m.directory.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Имя сотрудника 31 символ",
			url:  "/api/v1/companies/7/employees",
			body: employeeBody(strings.Repeat("f", 31)),
			expect: func(m serviceMocks) {
				m.directory.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Название отдела 31 символ",
			url:  "/api/v1/companies/7/departments",
			body: fmt.Sprintf(`{"departmentName":%q}`, strings.Repeat("d", 31)),
			expect: func(m serviceMocks) {
				m.directory.EXPECT().CreateDepartment(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Название локации 31 символ",
			url:  "/api/v1/companies/7/locations",
			body: fmt.Sprintf(`{"locationName":%q,"latitude":49.2,"longitude":-123.1}`, strings.Repeat("l", 31)),
			expect: func(m serviceMocks) {
				m.directory.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Название оборудования 30 символов",
			url:  "/api/v1/companies/7/equipments",
			body: equipmentBody(strings.Repeat("e", 30)),
			expect: func(m serviceMocks) {
				m.equipment.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Название оборудования 31 символ",
			url:  "/api/v1/companies/7/equipments",
			body: equipmentBody(strings.Repeat("e", 31)),
			expect: func(m serviceMocks) {
				m.equipment.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			tc.expect(m)

			w := makeRequest(router, http.MethodPost, tc.url, strings.NewReader(tc.body), apiKey)

			assert.Equal(t, tc.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	t.Run("Частичное изменение", func(t *testing.T) {
		_, m, router := newTestHandler(t)

		m.directory.EXPECT().
			UpdateEmployee(gomock.Any(), 100400001, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, upd models.EmployeeUpdate) (*models.Employee, error) {
				require.NotNil(t, upd.Role)
				assert.Equal(t, models.RoleManager, *upd.Role)
				require.NotNil(t, upd.DepartmentID)
				assert.Equal(t, "D0002", *upd.DepartmentID)
				assert.Nil(t, upd.FirstName)
				assert.Nil(t, upd.DateOfBirth)
				return &models.Employee{EmployeeID: 100400001, DepartmentID: "D0002", Role: models.RoleManager}, nil
			})

		w := makeRequest(router, http.MethodPut, "/api/v1/employees/100400001",
			strings.NewReader(`{"role":"Manager","departmentID":" D0002 "}`), apiKey)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"Manager"`)
	})

	t.Run("Пустое тело", func(t *testing.T) {
		_, m, router := newTestHandler(t)

		m.directory.EXPECT().
			UpdateEmployee(gomock.Any(), 100400001, models.EmployeeUpdate{}).
			Return(nil, fmt.Errorf("service: %w: no fields to update", models.ErrValidation))

		w := makeRequest(router, http.MethodPut, "/api/v1/employees/100400001", strings.NewReader(`{}`), apiKey)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Неверная дата рождения", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.directory.EXPECT().UpdateEmployee(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, http.MethodPut, "/api/v1/employees/100400001",
			strings.NewReader(`{"dateOfBirth":"01/05/1990"}`), apiKey)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Сотрудник не найден", func(t *testing.T) {
		_, m, router := newTestHandler(t)

		m.directory.EXPECT().
			UpdateEmployee(gomock.Any(), 100400099, gomock.Any()).
			Return(nil, fmt.Errorf("employee 100400099: %w", models.ErrNotFound))

		w := makeRequest(router, http.MethodPut, "/api/v1/employees/100400099", strings.NewReader(`{"lastName":"Smith"}`), apiKey)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteDirectoryEntries(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		expect     func(m serviceMocks)
		wantStatus int
	}{
		{
			name: "Сотрудник удален",
			url:  "/api/v1/employees/100400001",
			expect: func(m serviceMocks) {
				m.directory.EXPECT().DeleteEmployee(gomock.Any(), 100400001).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "Отдел с сотрудниками",
			url:  "/api/v1/departments/D0001",
			expect: func(m serviceMocks) {
				m.directory.EXPECT().
					DeleteDepartment(gomock.Any(), "D0001").
					Return(fmt.Errorf("%w: department D0001 still has employees", models.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Локация не найдена",
			url:  "/api/v1/locations/L0042",
			expect: func(m serviceMocks) {
				m.directory.EXPECT().
					DeleteLocation(gomock.Any(), "L0042").
					Return(fmt.Errorf("location L0042: %w", models.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Тип травмы удален",
			url:  "/api/v1/injurytypes/T0003",
			expect: func(m serviceMocks) {
				m.directory.EXPECT().DeleteInjuryType(gomock.Any(), "T0003").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "Некорректный код отдела",
			url:  "/api/v1/departments/L0001",
			expect: func(m serviceMocks) {
				m.directory.EXPECT().DeleteDepartment(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			tc.expect(m)

			w := makeRequest(router, http.MethodDelete, tc.url, nil, apiKey)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestUpdateDepartmentLocationAndInjuryType(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().
		UpdateDepartment(gomock.Any(), "D0001", "Operations").
		Return(&models.Department{DepartmentID: "D0001", CompanyID: 7, DepartmentName: "Operations"}, nil)
	m.directory.EXPECT().
		UpdateLocation(gomock.Any(), "L0001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.LocationUpdate) (*models.Location, error) {
			require.NotNil(t, upd.Latitude)
			assert.Equal(t, 49.25, *upd.Latitude)
			assert.Nil(t, upd.LocationName)
			return &models.Location{LocationID: "L0001", LocationName: "Dock", Latitude: 49.25}, nil
		})
	m.directory.EXPECT().
		UpdateInjuryType(gomock.Any(), "T0001", "Burn").
		Return(nil, fmt.Errorf("injury type %q: %w", "Burn", models.ErrDuplicate))

	w := makeRequest(router, http.MethodPut, "/api/v1/departments/D0001", strings.NewReader(`{"departmentName":"Operations"}`), apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"departmentName":"Operations"`)

	w = makeRequest(router, http.MethodPut, "/api/v1/locations/L0001", strings.NewReader(`{"latitude":49.25}`), apiKey)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodPut, "/api/v1/locations/L0001", strings.NewReader(`{"latitude":91}`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPut, "/api/v1/injurytypes/T0001", strings.NewReader(`{"injuryType":"Burn"}`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate record")
}

func TestListCompanyInjuryTypes(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.directory.EXPECT().
		ListCompanyInjuryTypes(gomock.Any(), 7).
		Return([]*models.InjuryType{{InjuryTypeID: "T0002", InjuryType: "Fracture"}}, nil)
	m.directory.EXPECT().
		ListCompanyInjuryTypes(gomock.Any(), 8).
		Return([]*models.InjuryType{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/companies/7/injurytypes", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"injuryTypeID":"T0002"`)

	w = makeRequest(router, http.MethodGet, "/api/v1/companies/8/injurytypes", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// internal/handlers/reading_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RaczoOBY/bible-app/internal/handlers"
	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/service/mocks"
)

func newReadingRouter(t *testing.T) (*mocks.MockReadingService, chi.Router) {
	t.Helper()

	mockService := mocks.NewMockReadingService(t)
	handler := handlers.NewReadingHandler(mockService)

	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/readings/toggle", handler.ToggleReading)
	router.Get("/api/v1/readings/day", handler.GetDayReadings)
	return mockService, router
}

func boolPtr(b bool) *bool { return &b }

func TestReadingHandler_ToggleReading(t *testing.T) {
	userID := uuid.New()

	validBody := model.ToggleReadingRequest{
		Month:     6,
		Day:       3,
		Slot:      model.SlotNT1,
		Completed: boolPtr(true),
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.MockReadingService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "success",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.MockReadingService) {
				m.On("ToggleReading", mock.Anything, userID, &validBody).
					Return(&model.ToggleReadingResponse{
						XPGained:             70,
						LevelUp:              true,
						UnlockedAchievements: []string{"primeiro_dia"},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing auth header",
			userID:         nil,
			body:           validBody,
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "malformed JSON body",
			userID:         &userID,
			body:           `{"month": 6,`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "non-positive day",
			userID:         &userID,
			body:           model.ToggleReadingRequest{Month: 6, Day: -1, Slot: model.SlotNT1, Completed: boolPtr(true)},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "day above the plan range reaches the catalog check",
			userID: &userID,
			body:   model.ToggleReadingRequest{Month: 6, Day: 26, Slot: model.SlotNT1, Completed: boolPtr(true)},
			setupMock: func(m *mocks.MockReadingService) {
				day26 := model.ToggleReadingRequest{Month: 6, Day: 26, Slot: model.SlotNT1, Completed: boolPtr(true)}
				m.On("ToggleReading", mock.Anything, userID, &day26).
					Return(nil, model.NewAppError("PLAN_NOT_FOUND", "Dia de leitura não existe no plano.", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PLAN_NOT_FOUND",
		},
		{
			name:           "unknown slot",
			userID:         &userID,
			body:           model.ToggleReadingRequest{Month: 6, Day: 3, Slot: "nt3", Completed: boolPtr(true)},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "missing completed flag",
			userID:         &userID,
			body:           model.ToggleReadingRequest{Month: 6, Day: 3, Slot: model.SlotNT1},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "day not in plan",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.MockReadingService) {
				m.On("ToggleReading", mock.Anything, userID, &validBody).
					Return(nil, model.NewAppError("PLAN_NOT_FOUND", "Dia de leitura não existe no plano.", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PLAN_NOT_FOUND",
		},
		{
			name:   "concurrent update",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.MockReadingService) {
				m.On("ToggleReading", mock.Anything, userID, &validBody).
					Return(nil, model.NewAppError("CONCURRENT_UPDATE", "O progresso foi atualizado por outra operação. Tente novamente.", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "CONCURRENT_UPDATE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newReadingRouter(t)
			if tc.setupMock != nil {
				tc.setupMock(mockService)
			}

			req := createRequest(t, http.MethodPost, "/api/v1/readings/toggle", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeErrorCode(t, rr.Body.Bytes()))
				return
			}

			var resp model.ToggleReadingResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, 70, resp.XPGained)
			assert.True(t, resp.LevelUp)
			assert.Equal(t, []string{"primeiro_dia"}, resp.UnlockedAchievements)
		})
	}
}

func TestReadingHandler_GetDayReadings(t *testing.T) {
	userID := uuid.New()

	dayResponse := &model.DayReadingsResponse{
		Month: 6,
		Day:   3,
		Readings: []model.DayReading{
			{Slot: model.SlotNT1, Book: "Marcos", Abbrev: "Mc", Reference: "3", Completed: true},
			{Slot: model.SlotNT2, Book: "Efésios", Abbrev: "Ef", Reference: "3", Completed: false},
			{Slot: model.SlotAT1, Book: "Josué", Abbrev: "Js", Reference: "5-6", Completed: false},
			{Slot: model.SlotAT2, Book: "Salmos", Abbrev: "Sl", Reference: "63", Completed: false},
		},
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		query          string
		setupMock      func(m *mocks.MockReadingService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "success",
			userID: &userID,
			query:  "month=6&day=3",
			setupMock: func(m *mocks.MockReadingService) {
				m.On("GetDayReadings", mock.Anything, userID, 6, 3).
					Return(dayResponse, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing auth header",
			userID:         nil,
			query:          "month=6&day=3",
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "non-numeric month",
			userID:         &userID,
			query:          "month=junho&day=3",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "missing day",
			userID:         &userID,
			query:          "month=6",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "day outside the plan",
			userID: &userID,
			query:  "month=6&day=30",
			setupMock: func(m *mocks.MockReadingService) {
				m.On("GetDayReadings", mock.Anything, userID, 6, 30).
					Return(nil, model.NewAppError("PLAN_NOT_FOUND", "Dia de leitura não existe no plano.", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PLAN_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newReadingRouter(t)
			if tc.setupMock != nil {
				tc.setupMock(mockService)
			}

			url := fmt.Sprintf("/api/v1/readings/day?%s", tc.query)
			req := createRequest(t, http.MethodGet, url, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeErrorCode(t, rr.Body.Bytes()))
				return
			}

			var resp model.DayReadingsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, 6, resp.Month)
			require.Len(t, resp.Readings, 4)
			assert.True(t, resp.Readings[0].Completed)
		})
	}
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community/mocks"
)

func TestNewCommunityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCommunityUC(ctrl)
	handler := NewCommunityHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.communityUC)
}

func TestCommunityHandler_CreateCommunity(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockCommunityUC)
		expectedStatus int
	}{
		{
			name: "Success",
			requestBody: map[string]interface{}{
				"name":                   "vidigal",
				"auto_activation":        true,
				"min_active_drivers":     5,
				"deactivation_threshold": 3,
			},
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					CreateCommunity(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, comm *models.Community) (*models.Community, error) {
						assert.Equal(t, "vidigal", comm.Name)
						assert.Equal(t, 5, comm.MinActiveDrivers)
						comm.ID = uuid.New()
						return comm, nil
					}).
					Times(1)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Validation failure",
			requestBody: map[string]interface{}{
				"name":                   "",
				"min_active_drivers":     5,
				"deactivation_threshold": 3,
			},
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					CreateCommunity(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("community name is required")).
					Times(1)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCommunityUC(ctrl)
			tt.mockSetup(mockUC)

			handler := NewCommunityHandler(mockUC)

			e := echo.New()
			reqBody, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/internal/communities", bytes.NewBuffer(reqBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.CreateCommunity(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCommunityHandler_GetCommunity(t *testing.T) {
	communityID := uuid.New()

	tests := []struct {
		name           string
		communityID    string
		mockSetup      func(*mocks.MockCommunityUC)
		expectedStatus int
	}{
		{
			name:        "Success",
			communityID: communityID.String(),
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					GetCommunity(gomock.Any(), communityID).
					Return(&models.Community{ID: communityID, Name: "vidigal"}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Invalid community ID",
			communityID: "not-a-uuid",
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				// No expectations - should not call usecase
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Not found",
			communityID: communityID.String(),
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					GetCommunity(gomock.Any(), communityID).
					Return(nil, community.ErrCommunityNotFound).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCommunityUC(ctrl)
			tt.mockSetup(mockUC)

			handler := NewCommunityHandler(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/internal/communities/:id", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.communityID)

			err := handler.GetCommunity(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCommunityHandler_UpdateGeometry(t *testing.T) {
	communityID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockCommunityUC)
		expectedStatus int
	}{
		{
			name: "Success",
			requestBody: map[string]interface{}{
				"geofence": []map[string]float64{
					{"lat": -22.96, "lng": -43.2},
					{"lat": -22.96, "lng": -43.19},
					{"lat": -22.95, "lng": -43.19},
				},
			},
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					UpdateGeometry(gomock.Any(), communityID, gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
					Return(nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Degenerate polygon rejected",
			requestBody: map[string]interface{}{
				"geofence": []map[string]float64{
					{"lat": -22.96, "lng": -43.2},
					{"lat": -22.96, "lng": -43.19},
				},
			},
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					UpdateGeometry(gomock.Any(), communityID, gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
					Return(errors.New("polygon needs at least three vertices")).
					Times(1)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Not found",
			requestBody: map[string]interface{}{},
			mockSetup: func(mockUC *mocks.MockCommunityUC) {
				mockUC.EXPECT().
					UpdateGeometry(gomock.Any(), communityID, gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
					Return(community.ErrCommunityNotFound).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCommunityUC(ctrl)
			tt.mockSetup(mockUC)

			handler := NewCommunityHandler(mockUC)

			e := echo.New()
			reqBody, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPut, "/internal/communities/:id/geometry", bytes.NewBuffer(reqBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(communityID.String())

			err := handler.UpdateGeometry(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCommunityHandler_EvaluateCommunity(t *testing.T) {
	communityID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCommunityUC(ctrl)
	mockUC.EXPECT().
		Evaluate(gomock.Any(), communityID).
		Return(models.EvaluationResult{
			CommunityID: communityID,
			DriverCount: 5,
			IsActive:    true,
			Changed:     true,
		}, nil)

	handler := NewCommunityHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/communities/:id/evaluate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(communityID.String())

	err := handler.EvaluateCommunity(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	assert.NotNil(t, response["data"])
}

func TestCommunityHandler_ArchiveCommunity_NotFound(t *testing.T) {
	communityID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCommunityUC(ctrl)
	mockUC.EXPECT().
		ArchiveCommunity(gomock.Any(), communityID).
		Return(community.ErrCommunityNotFound)

	handler := NewCommunityHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/communities/:id/archive", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(communityID.String())

	err := handler.ArchiveCommunity(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommunityHandler_GetStatusHistory(t *testing.T) {
	communityID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCommunityUC(ctrl)
	mockUC.EXPECT().
		GetStatusHistory(gomock.Any(), communityID).
		Return([]*models.CommunityStatusChange{
			{CommunityID: communityID, FromIsActive: false, ToIsActive: true, DriverCount: 5},
		}, nil)

	handler := NewCommunityHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/communities/:id/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(communityID.String())

	err := handler.GetStatusHistory(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

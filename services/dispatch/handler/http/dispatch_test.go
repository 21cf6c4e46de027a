package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/mocks"
)

func TestNewDispatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.dispatchUC)
}

func newRideContext(e *echo.Echo, body interface{}, userID interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/rides", bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestDispatchHandler_RequestRide(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         interface{}
		requestBody    interface{}
		mockSetup      func(*mocks.MockDispatchUC)
		expectedStatus int
	}{
		{
			name:   "Ride created",
			userID: userID,
			requestBody: map[string]interface{}{
				"type":        "comunidade",
				"origin":      "Rua do Russel 300",
				"destination": "Avenida Atlantica 1702",
				"price":       18.5,
			},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req models.RideRequest) (*models.DispatchResult, error) {
						// Identity always comes from the token.
						assert.Equal(t, userID.String(), req.PassengerID)
						return &models.DispatchResult{
							Success: true,
							Outcome: models.OutcomeInFenceOK,
							Ride:    &models.Ride{ID: uuid.New()},
						}, nil
					}).
					Times(1)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Requires confirmation",
			userID: userID,
			requestBody: map[string]interface{}{
				"type":        "comunidade",
				"origin":      "a",
				"destination": "b",
			},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					Return(&models.DispatchResult{
						Success:              false,
						Outcome:              models.OutcomeRequiresConfirmation,
						RequiresConfirmation: true,
						ConfirmationToken:    "tok",
					}, nil).
					Times(1)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:        "Missing authenticated user",
			userID:      nil,
			requestBody: map[string]interface{}{},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				// No expectations - should not call usecase
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "Validation error",
			userID:      userID,
			requestBody: map[string]interface{}{"type": "comunidade"},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					Return(nil, dispatch.ErrValidation).
					Times(1)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Blocked when no drivers available",
			userID: userID,
			requestBody: map[string]interface{}{
				"type":        "comunidade",
				"origin":      "a",
				"destination": "b",
			},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					Return(nil, dispatch.ErrNoDriversAvailable).
					Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "Blocked for sensitive neighborhood",
			userID: userID,
			requestBody: map[string]interface{}{
				"type":        "comunidade",
				"origin":      "a",
				"destination": "b",
			},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					Return(nil, dispatch.ErrSensitiveFallbackUnavailable).
					Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "Expired token",
			userID: userID,
			requestBody: map[string]interface{}{
				"confirmation_token": "tok-stale",
			},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					Return(nil, dispatch.ErrTokenExpired).
					Times(1)
			},
			expectedStatus: http.StatusGone,
		},
		{
			name:   "Token owned by another passenger",
			userID: userID,
			requestBody: map[string]interface{}{
				"confirmation_token": "tok",
			},
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					RequestRide(gomock.Any(), gomock.Any()).
					Return(nil, dispatch.ErrTokenOwnership).
					Times(1)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDispatchUC(ctrl)
			tt.mockSetup(mockUC)

			handler := NewDispatchHandler(mockUC)
			c, rec := newRideContext(echo.New(), tt.requestBody, tt.userID)

			err := handler.RequestRide(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestDispatchHandler_RequestRide_BlockedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	mockUC.EXPECT().
		RequestRide(gomock.Any(), gomock.Any()).
		Return(nil, dispatch.ErrNoCommunityAssigned)

	handler := NewDispatchHandler(mockUC)
	c, rec := newRideContext(echo.New(), map[string]interface{}{"type": "comunidade"}, uuid.New())

	err := handler.RequestRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp BlockedResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, models.OutcomeBlocked, resp.Outcome)
	assert.NotEmpty(t, resp.Error)
}

func TestDispatchHandler_GetRide(t *testing.T) {
	userID := uuid.New()
	rideID := uuid.New()

	tests := []struct {
		name           string
		rideID         string
		userID         interface{}
		mockSetup      func(*mocks.MockDispatchUC)
		expectedStatus int
	}{
		{
			name:   "Success",
			rideID: rideID.String(),
			userID: userID,
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					GetRide(gomock.Any(), rideID).
					Return(&models.Ride{ID: rideID, PassengerID: userID}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Invalid ride ID",
			rideID: "not-a-uuid",
			userID: userID,
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				// No expectations - should not call usecase
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Not found",
			rideID: rideID.String(),
			userID: userID,
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					GetRide(gomock.Any(), rideID).
					Return(nil, dispatch.ErrRideNotFound).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Another passenger's ride reads as not found",
			rideID: rideID.String(),
			userID: userID,
			mockSetup: func(mockUC *mocks.MockDispatchUC) {
				mockUC.EXPECT().
					GetRide(gomock.Any(), rideID).
					Return(&models.Ride{ID: rideID, PassengerID: uuid.New()}, nil).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDispatchUC(ctrl)
			tt.mockSetup(mockUC)

			handler := NewDispatchHandler(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/rides/:rideID", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("rideID")
			c.SetParamValues(tt.rideID)
			if tt.userID != nil {
				c.Set("user_id", tt.userID)
			}

			err := handler.GetRide(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

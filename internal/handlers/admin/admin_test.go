package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/dto"
	rewardservice "github.com/tripkoin/cityguide/internal/service/rewardservice"
	statsservice "github.com/tripkoin/cityguide/internal/service/statsservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockStatsService, *MockGrantService) {
	ctrl := gomock.NewController(t)
	statsService := NewMockStatsService(ctrl)
	grantService := NewMockGrantService(ctrl)
	handler := New(statsService, grantService)
	defer ctrl.Finish()
	return handler, statsService, grantService
}

func TestGetStatsHandler(t *testing.T) {
	handler, statsService, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.StatsResponseDTO
	}{
		{
			name: "Stats returned",
			prepareMock: func() {
				statsService.EXPECT().Collect(gomock.Any()).Return(&statsservice.Stats{
					Users:           42,
					QRScans:         310,
					CoinsGranted:    8150,
					ActiveCampaigns: 3,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.StatsResponseDTO{Users: 42, QRScans: 310, CoinsGranted: 8150, ActiveCampaigns: 3},
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				statsService.EXPECT().Collect(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			rec := httptest.NewRecorder()

			handler.GetStats(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				var resp dto.StatsResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}

func TestGrantCoinsHandler(t *testing.T) {
	handler, _, grantService := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedSuccess *bool
	}{
		{
			name: "Successful grant",
			body: `{"userId":1,"coins":50}`,
			prepareMock: func() {
				grantService.EXPECT().
					ClaimReward(gomock.Any(), 1, 0, domain.ClaimTypeAdmin, 50, 50).
					Return(50, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: boolPtr(true),
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-positive amount",
			body:         `{"userId":1,"coins":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"userId":99,"coins":50}`,
			prepareMock: func() {
				grantService.EXPECT().
					ClaimReward(gomock.Any(), 99, 0, domain.ClaimTypeAdmin, 50, 50).
					Return(0, rewardservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Daily limit reached",
			body: `{"userId":1,"coins":50}`,
			prepareMock: func() {
				grantService.EXPECT().
					ClaimReward(gomock.Any(), 1, 0, domain.ClaimTypeAdmin, 50, 50).
					Return(0, rewardservice.ErrDailyLimitReached)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: boolPtr(false),
		},
		{
			name: "Storage failure",
			body: `{"userId":1,"coins":50}`,
			prepareMock: func() {
				grantService.EXPECT().
					ClaimReward(gomock.Any(), 1, 0, domain.ClaimTypeAdmin, 50, 50).
					Return(0, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/grant", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.GrantCoins(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedSuccess != nil {
				var resp dto.GrantCoinsResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedSuccess, resp.Success)
			}
		})
	}
}

func boolPtr(v bool) *bool { return &v }

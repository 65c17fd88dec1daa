package campaigns

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tripkoin/cityguide/internal/domain"
	"github.com/tripkoin/cityguide/internal/dto"
	campaignservice "github.com/tripkoin/cityguide/internal/service/campaignservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CampaignHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetCampaignsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Active campaigns returned",
			prepareMock: func() {
				service.EXPECT().ListActive(gomock.Any()).Return([]domain.Campaign{
					{ID: 1, BrandID: 7, Title: "Scan and win", Active: true},
					{ID: 2, BrandID: 8, Title: "Story bonus", Active: true, ExtraRewardEnabled: true},
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "No active campaigns",
			prepareMock: func() {
				service.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().ListActive(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
			rec := httptest.NewRecorder()

			handler.GetCampaigns(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.CampaignResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Len(t, resp, tt.expectedCount)
			}
		})
	}
}

func TestGetCampaignHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "Campaign with brand",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(&campaignservice.CampaignWithBrand{
					Campaign: domain.Campaign{ID: 1, BrandID: 7, Title: "Scan and win", Active: true},
					Brand:    &domain.Brand{ID: 7, Name: "Chai Corner"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp dto.CampaignDetailResponseDTO
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 1, resp.ID)
				assert.NotNil(t, resp.Brand)
				assert.Equal(t, "Chai Corner", resp.Brand.Name)
			},
		},
		{
			name:         "Invalid campaign ID",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Campaign not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 99).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Storage failure",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/campaigns/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			handler.GetCampaign(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}

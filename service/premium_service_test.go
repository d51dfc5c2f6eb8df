package service

import (
	"context"
	"testing"
	"time"

	"killfeed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsPremiumGuild(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name    string
		servers []*models.PremiumServer
		premium bool
	}{
		{"no servers", nil, false},
		{"active unexpired", []*models.PremiumServer{
			{ServerID: "emerald-1", Active: true, ExpiresAt: &future},
		}, true},
		{"active no expiry", []*models.PremiumServer{
			{ServerID: "emerald-1", Active: true},
		}, true},
		{"active but expired", []*models.PremiumServer{
			{ServerID: "emerald-1", Active: true, ExpiresAt: &past},
		}, false},
		{"inactive", []*models.PremiumServer{
			{ServerID: "emerald-1", Active: false, ExpiresAt: &future},
		}, false},
		{"one of many active", []*models.PremiumServer{
			{ServerID: "emerald-1", Active: false},
			{ServerID: "emerald-2", Active: true, ExpiresAt: &future},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			premium := new(MockPremiumRepository)
			premium.On("GetByGuild", ctx, int64(1)).Return(tt.servers, nil)
			premium.On("SetStatus", ctx, int64(1), mock.Anything, (*time.Time)(nil)).Return(nil).Maybe()

			service := NewPremiumService(premium)
			got, err := service.IsPremiumGuild(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.premium, got)
		})
	}
}

func TestIsPremiumGuild_DeactivatesExpired(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	premium := new(MockPremiumRepository)
	premium.On("GetByGuild", ctx, int64(1)).Return([]*models.PremiumServer{
		{ServerID: "emerald-1", Active: true, ExpiresAt: &past},
		{ServerID: "emerald-2", Active: true, ExpiresAt: &future},
	}, nil)
	premium.On("SetStatus", ctx, int64(1), "emerald-1", (*time.Time)(nil)).Return(nil)

	service := NewPremiumService(premium)
	got, err := service.IsPremiumGuild(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got)

	// emerald-1 is written back as inactive; emerald-2 is untouched
	premium.AssertExpectations(t)
	premium.AssertNotCalled(t, "SetStatus", ctx, int64(1), "emerald-2", mock.Anything)
}

func TestIsPremiumGuild_DeactivationFailureNonFatal(t *testing.T) {
	ctx := context.Background()
	past := time.Now().Add(-24 * time.Hour)

	premium := new(MockPremiumRepository)
	premium.On("GetByGuild", ctx, int64(1)).Return([]*models.PremiumServer{
		{ServerID: "emerald-1", Active: true, ExpiresAt: &past},
	}, nil)
	premium.On("SetStatus", ctx, int64(1), "emerald-1", (*time.Time)(nil)).Return(assert.AnError)

	service := NewPremiumService(premium)
	got, err := service.IsPremiumGuild(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestSetServerPremium(t *testing.T) {
	ctx := context.Background()
	expiry := time.Now().Add(30 * 24 * time.Hour)

	premium := new(MockPremiumRepository)
	premium.On("SetStatus", ctx, int64(1), "emerald-1", &expiry).Return(nil)
	premium.On("SetStatus", ctx, int64(1), "emerald-1", (*time.Time)(nil)).Return(nil)

	service := NewPremiumService(premium)
	require.NoError(t, service.SetServerPremium(ctx, 1, "emerald-1", &expiry))
	require.NoError(t, service.SetServerPremium(ctx, 1, "emerald-1", nil))

	premium.AssertExpectations(t)
}

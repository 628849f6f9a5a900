package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
)

type fakeCache struct {
	values  map[string]string
	deleted []string
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

type fakeDashboardRepo struct {
	stats      dto.DashboardStatsDTO
	statsCalls int
}

func (r *fakeDashboardRepo) Stats(context.Context, uuid.UUID) (dto.DashboardStatsDTO, error) {
	r.statsCalls++
	return r.stats, nil
}

func (r *fakeDashboardRepo) BoardRequests(context.Context, uuid.UUID) ([]dto.DashboardRequestDTO, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) Technicians(context.Context, uuid.UUID) ([]dto.TechnicianDTO, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) Equipment(context.Context, uuid.UUID) ([]dto.DashboardEquipmentDTO, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) CalendarEvents(context.Context, uuid.UUID) ([]dto.CalendarEventDTO, error) {
	return nil, nil
}

func TestStatsCacheMissFallsThroughAndCaches(t *testing.T) {
	repo := &fakeDashboardRepo{stats: dto.DashboardStatsDTO{OpenRequests: 7, TotalEquipment: 12}}
	cache := newFakeCache()
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	companyID := uuid.New()
	stats, err := svc.Stats(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.OpenRequests)
	assert.Equal(t, technicianLoadStub, stats.TechnicianLoad)
	assert.Equal(t, 1, repo.statsCalls)

	cached, ok := cache.values[statsCacheKey(companyID)]
	require.True(t, ok, "stats should be cached after a miss")

	var roundtrip dto.DashboardStatsDTO
	require.NoError(t, json.Unmarshal([]byte(cached), &roundtrip))
	assert.Equal(t, stats, roundtrip)
}

func TestStatsCacheHitSkipsRepository(t *testing.T) {
	repo := &fakeDashboardRepo{}
	cache := newFakeCache()
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	companyID := uuid.New()
	encoded, err := json.Marshal(dto.DashboardStatsDTO{OpenRequests: 3, TechnicianLoad: 85})
	require.NoError(t, err)
	cache.values[statsCacheKey(companyID)] = string(encoded)

	stats, err := svc.Stats(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.OpenRequests)
	assert.Zero(t, repo.statsCalls)
}

func TestStatsMalformedCacheEntryIsDiscarded(t *testing.T) {
	repo := &fakeDashboardRepo{stats: dto.DashboardStatsDTO{OpenRequests: 5}}
	cache := newFakeCache()
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	companyID := uuid.New()
	cache.values[statsCacheKey(companyID)] = "{not json"

	stats, err := svc.Stats(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.OpenRequests)
	assert.Equal(t, 1, repo.statsCalls)
}

func TestStatsCacheKeyIsCompanyScoped(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.NotEqual(t, statsCacheKey(a), statsCacheKey(b))
	assert.Contains(t, statsCacheKey(a), a.String())
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitaltrack/vitaltrack/internal/data"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/mocks"
)

type tipServiceMocks struct {
	profiles  *mocks.MockProfileRepository
	generator *mocks.MockTipGenerator
	cache     *mocks.MockCacheRepository
}

func newTipService(t *testing.T, ctrl *gomock.Controller) (*TipService, tipServiceMocks) {
	t.Helper()
	m := tipServiceMocks{
		profiles:  mocks.NewMockProfileRepository(ctrl),
		generator: mocks.NewMockTipGenerator(ctrl),
		cache:     mocks.NewMockCacheRepository(ctrl),
	}
	svc, err := NewTipService(TipServiceOptions{
		Profiles:  m.profiles,
		Generator: m.generator,
		Cache:     m.cache,
		CacheTTL:  time.Hour,
	})
	require.NoError(t, err)
	return svc, m
}

func TestTipService_GetDailyTip_GeneratesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTipService(t, ctrl)

	profile := &model.Profile{UserID: "u1", Conditions: []string{"asthma"}}
	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").Return(profile, nil)
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.generator.EXPECT().Generate(gomock.Any(), profile.Summary()).
		Return("Take a short walk.", nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(nil)

	tip, err := svc.GetDailyTip(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Take a short walk.", tip.Text)
	assert.False(t, tip.Cached)
	assert.WithinDuration(t, time.Now(), tip.GeneratedAt, time.Minute)
}

func TestTipService_GetDailyTip_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTipService(t, ctrl)

	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, data.ErrProfileNotFound)

	cached, err := json.Marshal(model.Tip{Text: "Drink water.", GeneratedAt: time.Now().UTC()})
	require.NoError(t, err)
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

	tip, err := svc.GetDailyTip(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Drink water.", tip.Text)
	assert.True(t, tip.Cached)
}

func TestTipService_GetDailyTip_MissingProfileUsesEmptySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTipService(t, ctrl)

	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, data.ErrProfileNotFound)
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.generator.EXPECT().Generate(gomock.Any(), "").Return("Drink water.", nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	tip, err := svc.GetDailyTip(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Drink water.", tip.Text)
}

func TestTipService_GetDailyTip_GeneratorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTipService(t, ctrl)

	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, data.ErrProfileNotFound)
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.generator.EXPECT().Generate(gomock.Any(), "").Return("", errors.New("model overloaded"))

	_, err := svc.GetDailyTip(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestTipService_GetDailyTip_ProfileChangeChangesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTipService(t, ctrl)

	var keys []string
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) ([]byte, error) {
			keys = append(keys, key)
			return nil, nil
		}).Times(2)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tip", nil).Times(2)

	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").
		Return(&model.Profile{UserID: "u1", Conditions: []string{"asthma"}}, nil)
	_, err := svc.GetDailyTip(context.Background(), "u1")
	require.NoError(t, err)

	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").
		Return(&model.Profile{UserID: "u1", Conditions: []string{"asthma", "diabetes"}}, nil)
	_, err = svc.GetDailyTip(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestTipService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTipService(t, ctrl)

	m.profiles.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, data.ErrProfileNotFound)
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, svc.Refresh(context.Background(), "u1"))
}

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

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/mocks"
	"github.com/vitaltrack/vitaltrack/internal/ports"
)

func TestResourceService_Search_MergesInProviderOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockTopicSource(ctrl)
	second := mocks.NewMockTopicSource(ctrl)
	first.EXPECT().Search(gomock.Any(), "sleep", 5).
		Return([]model.Resource{{Source: model.SourceMedlinePlus, Title: "Healthy Sleep"}}, nil)
	second.EXPECT().Search(gomock.Any(), "sleep", 5).
		Return([]model.Resource{{Source: model.SourceHealthFinder, Title: "Get Enough Sleep"}}, nil)

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources: []ports.TopicSource{first, second},
	})
	require.NoError(t, err)

	resources, err := svc.Search(context.Background(), "sleep", 5)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, model.SourceMedlinePlus, resources[0].Source)
	assert.Equal(t, model.SourceHealthFinder, resources[1].Source)
}

func TestResourceService_Search_PartialFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := mocks.NewMockTopicSource(ctrl)
	broken := mocks.NewMockTopicSource(ctrl)
	healthy.EXPECT().Search(gomock.Any(), "sleep", 5).
		Return([]model.Resource{{Source: model.SourceMedlinePlus, Title: "Healthy Sleep"}}, nil)
	broken.EXPECT().Search(gomock.Any(), "sleep", 5).
		Return(nil, errors.New("upstream 503"))
	broken.EXPECT().Name().Return(model.SourceHealthFinder).AnyTimes()

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources: []ports.TopicSource{healthy, broken},
	})
	require.NoError(t, err)

	resources, err := svc.Search(context.Background(), "sleep", 5)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Healthy Sleep", resources[0].Title)
}

func TestResourceService_Search_AllProvidersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockTopicSource(ctrl)
	src.EXPECT().Search(gomock.Any(), "sleep", 5).Return(nil, errors.New("down"))
	src.EXPECT().Name().Return(model.SourceMedlinePlus).AnyTimes()

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources: []ports.TopicSource{src},
	})
	require.NoError(t, err)

	_, err = svc.Search(context.Background(), "sleep", 5)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestResourceService_Search_CacheHitSkipsProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The source expects no calls at all.
	src := mocks.NewMockTopicSource(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	cached, err := json.Marshal([]model.Resource{{Source: model.SourceMedlinePlus, Title: "From Cache"}})
	require.NoError(t, err)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources: []ports.TopicSource{src},
		Cache:   cache,
	})
	require.NoError(t, err)

	resources, err := svc.Search(context.Background(), "sleep", 5)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "From Cache", resources[0].Title)
}

func TestResourceService_Search_CacheMissStoresResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockTopicSource(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	src.EXPECT().Search(gomock.Any(), "sleep", 5).
		Return([]model.Resource{{Source: model.SourceMedlinePlus, Title: "Healthy Sleep"}}, nil)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any(), 30*time.Minute).
		Return(nil)

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources:  []ports.TopicSource{src},
		Cache:    cache,
		CacheTTL: 30 * time.Minute,
	})
	require.NoError(t, err)

	_, err = svc.Search(context.Background(), "sleep", 5)
	require.NoError(t, err)
}

func TestResourceService_Search_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources: []ports.TopicSource{mocks.NewMockTopicSource(ctrl)},
	})
	require.NoError(t, err)

	_, err = svc.Search(context.Background(), "   ", 5)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestResourceService_Search_LimitClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockTopicSource(ctrl)
	// Zero and oversized limits are normalized before reaching providers.
	src.EXPECT().Search(gomock.Any(), "sleep", defaultResourceLimit).Return(nil, nil)
	src.EXPECT().Search(gomock.Any(), "sleep", maxResourceLimit).Return(nil, nil)

	svc, err := NewResourceService(ResourceServiceOptions{
		Sources: []ports.TopicSource{src},
	})
	require.NoError(t, err)

	_, err = svc.Search(context.Background(), "sleep", 0)
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "sleep", 1000)
	require.NoError(t, err)
}

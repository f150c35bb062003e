// Package mocks provides mock implementations for testing vitaltrack services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/vitaltrack/vitaltrack/internal/ports UserRepository

// Generate mock for ProfileRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_repository_mock.go github.com/vitaltrack/vitaltrack/internal/ports ProfileRepository

// Generate mock for SavedItemRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=saved_item_repository_mock.go github.com/vitaltrack/vitaltrack/internal/ports SavedItemRepository

// Generate mock for CacheRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/vitaltrack/vitaltrack/internal/ports CacheRepository

// Generate mock for TopicSource interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=topic_source_mock.go github.com/vitaltrack/vitaltrack/internal/ports TopicSource

// Generate mock for TipGenerator interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=tip_generator_mock.go github.com/vitaltrack/vitaltrack/internal/ports TipGenerator

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/casset/internal/app"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/casset/internal/core/ports/mocks"
	"go.trai.ch/casset/internal/engine/combiner"
	"go.trai.ch/casset/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func newApp(ctrl *gomock.Controller, loader ports.ConfigLoader, log ports.Logger) *app.App {
	tracer := mocks.NewMockTracer(ctrl)
	rewriter := mocks.NewMockURIRewriter(ctrl)
	store := mocks.NewMockArtifactStore(ctrl)
	comb := combiner.New(
		mocks.NewMockFileSystem(ctrl),
		mocks.NewMockRemoteFetcher(ctrl),
		mocks.NewMockHasher(ctrl),
		store,
		ports.Minifiers{},
		rewriter,
		tracer,
	)
	pipe := pipeline.New(
		mocks.NewMockFileResolver(ctrl),
		comb,
		rewriter,
		store,
		mocks.NewMockEmitter(ctrl),
		tracer,
	)
	return app.New(loader, pipe, mocks.NewMockPublisher(ctrl), log)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newApp(ctrl, mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	workDir := t.TempDir()
	mockLoader.EXPECT().Load(workDir).Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "load failed")
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"render", "site"}, stderr, provider, func(a *app.App) {
		a.WithWorkDir(workDir)
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_CleanupCalled verifies that the provider cleanup runs after the command.
func TestRun_CleanupCalled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

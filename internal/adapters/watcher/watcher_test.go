package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ccflags/internal/adapters/watcher"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/ccflags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsDatabaseRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	w, err := watcher.NewWatcher(mockLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, dir))
	defer func() { _ = w.Stop() }()

	target := domain.CompileCommandsPath(dir)
	received := make(chan ports.WatchEvent, 16)
	go func() {
		for event := range w.Events() {
			received <- event
		}
		close(received)
	}()

	require.NoError(t, os.WriteFile(target, []byte("[]"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-received:
			require.True(t, ok, "event stream closed before the write was seen")
			if event.Path == filepath.Clean(target) {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for database event")
		}
	}
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(mockLogger)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, t.TempDir()))

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after cancel")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

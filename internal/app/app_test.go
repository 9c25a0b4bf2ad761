package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"iter"
	"strings"
	"testing"
	"testing/fstest"
	"testing/synctest"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/ccflags/internal/adapters/fs"
	"go.trai.ch/ccflags/internal/adapters/telemetry"
	"go.trai.ch/ccflags/internal/app"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/ccflags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	opener  *mocks.MockCompilationDatabaseOpener
	index   *mocks.MockCompilationIndex
	watcher *mocks.MockWatcher
}

func newApp(t *testing.T, files fstest.MapFS) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		opener:  mocks.NewMockCompilationDatabaseOpener(ctrl),
		index:   mocks.NewMockCompilationIndex(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	a := app.New(
		m.loader,
		m.logger,
		fsadapter.NewMapFSAdapter("/proj", files),
		m.opener,
		m.watcher,
		telemetry.NewNoOpTracer(),
	)
	return a, m
}

func staticSettings() *domain.Settings {
	s := domain.NewSettings()
	s.ConfigPath = "/proj/" + domain.ConfigFileName
	s.Static = domain.StaticConfiguration{Flags: []string{"-x", "c", "-I", "inc"}, AnchorDir: "/proj"}
	return s
}

func databaseSettings() *domain.Settings {
	s := staticSettings()
	s.DatabaseDir = "/proj/build"
	return s
}

func projectFiles() fstest.MapFS {
	return fstest.MapFS{
		"build":  {Mode: fs.ModeDir},
		"main.c": {Data: []byte("int main(void) { return 0; }\n")},
	}
}

func mainRecord() *domain.CompilationRecord {
	return &domain.CompilationRecord{
		File:       "/proj/main.c",
		Flags:      []string{"-I", "include", "-DLOG", "-stdlib=libc++"},
		WorkingDir: "/proj/build",
	}
}

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for line := range strings.Lines(string(data)) {
		var v map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &v))
		out = append(out, v)
	}
	return out
}

func TestApp_Resolve_StaticJSON(t *testing.T) {
	a, m := newApp(t, fstest.MapFS{})
	m.loader.EXPECT().Load(".").Return(staticSettings(), nil)

	var out bytes.Buffer
	err := a.Resolve(context.Background(), []string{"a.c", "/elsewhere/b.h"}, app.ResolveOptions{
		Format: "json",
		Out:    &out,
	})
	require.NoError(t, err)

	assert.Equal(t,
		`{"file":"a.c","found":true,"flags":["-x","c","-I","/proj/inc"],"do_cache":true}`+"\n"+
			`{"file":"/elsewhere/b.h","found":true,"flags":["-x","c","-I","/proj/inc"],"do_cache":true}`+"\n",
		out.String())
}

func TestApp_Resolve_DatabaseText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m := newApp(t, projectFiles())
	m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
	m.opener.EXPECT().Open("/proj/build").Return(m.index)
	m.index.EXPECT().Lookup("/proj/main.c").Return(mainRecord(), nil).Times(2)
	m.index.EXPECT().Lookup("/proj/missing.c").Return(nil, nil)
	m.logger.EXPECT().Warn("no flags for /proj/missing.c")

	var out bytes.Buffer
	err := a.Resolve(context.Background(), []string{"/proj/main.c", "/proj/missing.c", "/proj/main.h"}, app.ResolveOptions{
		Format: "text",
		Out:    &out,
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "resolve_text", out.Bytes())
}

func TestApp_Resolve_SingleFileTextHasNoHeading(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m := newApp(t, fstest.MapFS{})
	m.loader.EXPECT().Load(".").Return(staticSettings(), nil)

	var out bytes.Buffer
	err := a.Resolve(context.Background(), []string{"a.c"}, app.ResolveOptions{Format: "text", Out: &out})
	require.NoError(t, err)

	assert.Equal(t, "-x\nc\n-I\n/proj/inc\n", out.String())
}

func TestApp_Resolve_AutoFormatIsJSONWhenNotATerminal(t *testing.T) {
	a, m := newApp(t, fstest.MapFS{})
	m.loader.EXPECT().Load(".").Return(staticSettings(), nil)

	var out bytes.Buffer
	require.NoError(t, a.Resolve(context.Background(), []string{"a.c"}, app.ResolveOptions{Out: &out}))

	replies := decodeLines(t, out.Bytes())
	require.Len(t, replies, 1)
	assert.Equal(t, true, replies[0]["found"])
}

func TestApp_Resolve_MissingDatabaseUsesStaticFlags(t *testing.T) {
	a, m := newApp(t, fstest.MapFS{})
	m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
	m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "/proj/build does not exist")
	})

	var out bytes.Buffer
	require.NoError(t, a.Resolve(context.Background(), []string{"a.c"}, app.ResolveOptions{Format: "json", Out: &out}))

	replies := decodeLines(t, out.Bytes())
	require.Len(t, replies, 1)
	assert.Equal(t, []any{"-x", "c", "-I", "/proj/inc"}, replies[0]["flags"])
}

func TestApp_Resolve_DatabaseNotFound(t *testing.T) {
	a, m := newApp(t, projectFiles())
	m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
	m.opener.EXPECT().Open("/proj/build").Return(m.index)
	m.index.EXPECT().Lookup("/proj/other.c").Return(nil, nil)

	var out bytes.Buffer
	require.NoError(t, a.Resolve(context.Background(), []string{"/proj/other.c"}, app.ResolveOptions{Format: "json", Out: &out}))

	assert.Equal(t, `{"file":"/proj/other.c","found":false,"flags":[],"do_cache":false}`+"\n", out.String())
}

func TestApp_Resolve_Overrides(t *testing.T) {
	files := projectFiles()
	files["other"] = &fstest.MapFile{Mode: fs.ModeDir}

	a, m := newApp(t, files)
	m.loader.EXPECT().LoadFile("/proj/custom.yaml").Return(staticSettings(), nil)
	m.opener.EXPECT().Open("/proj/other").Return(m.index)
	m.index.EXPECT().Lookup("/proj/main.c").Return(mainRecord(), nil)

	var out bytes.Buffer
	err := a.Resolve(context.Background(), []string{"/proj/main.c"}, app.ResolveOptions{
		Options: app.Options{ConfigPath: "/proj/custom.yaml", DatabaseDir: "/proj/other"},
		Format:  "json",
		Out:     &out,
	})
	require.NoError(t, err)

	replies := decodeLines(t, out.Bytes())
	require.Len(t, replies, 1)
	assert.Equal(t, []any{"-I", "/proj/build/include", "-DLOG"}, replies[0]["flags"])
}

func TestApp_Resolve_Errors(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		a, _ := newApp(t, fstest.MapFS{})

		err := a.Resolve(context.Background(), nil, app.ResolveOptions{Out: &bytes.Buffer{}})
		require.ErrorContains(t, err, domain.ErrNoFilesSpecified.Error())
	})

	t.Run("unknown format", func(t *testing.T) {
		a, _ := newApp(t, fstest.MapFS{})

		err := a.Resolve(context.Background(), []string{"a.c"}, app.ResolveOptions{Format: "yaml", Out: &bytes.Buffer{}})
		require.ErrorContains(t, err, domain.ErrInvalidOutputFormat.Error())
	})

	t.Run("configuration failure", func(t *testing.T) {
		a, m := newApp(t, fstest.MapFS{})
		m.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigurationMissing)

		err := a.Resolve(context.Background(), []string{"a.c"}, app.ResolveOptions{Format: "json", Out: &bytes.Buffer{}})
		require.ErrorContains(t, err, "failed to load configuration")
		require.ErrorContains(t, err, domain.ErrConfigurationMissing.Error())
	})
}

func TestApp_Serve_Static(t *testing.T) {
	a, m := newApp(t, fstest.MapFS{})
	m.loader.EXPECT().Load(".").Return(staticSettings(), nil)

	in := strings.NewReader(strings.Join([]string{
		`{"file": "a.c", "options": {"client_data": 1}}`,
		``,
		`not json`,
		`{"options": {}}`,
		`{"file": "b.cpp"}`,
	}, "\n"))

	var out bytes.Buffer
	require.NoError(t, a.Serve(context.Background(), app.ServeOptions{In: in, Out: &out}))

	replies := decodeLines(t, out.Bytes())
	require.Len(t, replies, 4)

	assert.Equal(t, "a.c", replies[0]["file"])
	assert.Equal(t, true, replies[0]["do_cache"])
	assert.Contains(t, replies[1]["error"], domain.ErrInvalidRequest.Error())
	assert.Contains(t, replies[2]["error"], domain.ErrInvalidRequest.Error())
	assert.Equal(t, "b.cpp", replies[3]["file"])
}

func TestApp_Serve_ConfigurationFailure(t *testing.T) {
	a, m := newApp(t, fstest.MapFS{})
	m.loader.EXPECT().Load(".").Return(nil, errors.New("boom"))

	err := a.Serve(context.Background(), app.ServeOptions{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	require.ErrorContains(t, err, "boom")
}

func TestApp_Serve_InvalidatesOnDatabaseChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		a, m := newApp(t, projectFiles())
		a.WithDebounceWindow(10 * time.Millisecond)

		m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
		m.opener.EXPECT().Open("/proj/build").Return(m.index)
		m.index.EXPECT().Path().Return("/proj/build/" + domain.CompileCommandsFileName).AnyTimes()
		m.index.EXPECT().Lookup("/proj/main.c").Return(mainRecord(), nil)
		m.watcher.EXPECT().Start(gomock.Any(), "/proj/build").Return(nil)
		m.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
			events := []ports.WatchEvent{
				{Path: "/proj/build/" + domain.CompileCommandsFileName + ".tmp", Operation: ports.OpCreate},
				{Path: "/proj/build/" + domain.CompileCommandsFileName, Operation: ports.OpCreate},
				{Path: "/proj/build/" + domain.CompileCommandsFileName, Operation: ports.OpWrite},
			}
			for _, e := range events {
				if !yield(e) {
					return
				}
			}
			time.Sleep(time.Second)
		}))
		m.index.EXPECT().Invalidate().Times(1)

		var out bytes.Buffer
		err := a.Serve(context.Background(), app.ServeOptions{
			In:  strings.NewReader(`{"file": "/proj/main.c"}` + "\n"),
			Out: &out,
		})
		require.NoError(t, err)

		replies := decodeLines(t, out.Bytes())
		require.Len(t, replies, 1)
		assert.Equal(t, true, replies[0]["found"])
	})
}

func TestApp_Serve_WatchFailureKeepsServing(t *testing.T) {
	a, m := newApp(t, projectFiles())
	m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
	m.opener.EXPECT().Open("/proj/build").Return(m.index)
	m.index.EXPECT().Path().Return("/proj/build/" + domain.CompileCommandsFileName).AnyTimes()
	m.index.EXPECT().Lookup("/proj/main.c").Return(mainRecord(), nil)
	m.watcher.EXPECT().Start(gomock.Any(), "/proj/build").Return(errors.New("too many open files"))
	m.logger.EXPECT().Warn(gomock.Any())

	var out bytes.Buffer
	err := a.Serve(context.Background(), app.ServeOptions{
		In:  strings.NewReader(`{"file": "/proj/main.c"}`),
		Out: &out,
	})
	require.NoError(t, err)
	assert.Len(t, decodeLines(t, out.Bytes()), 1)
}

func TestApp_Serve_StopsOnCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		a, m := newApp(t, fstest.MapFS{})
		m.loader.EXPECT().Load(".").Return(staticSettings(), nil)

		ctx, cancel := context.WithCancel(context.Background())
		in := &blockingReader{release: make(chan struct{})}
		defer close(in.release)

		done := make(chan error, 1)
		go func() {
			done <- a.Serve(ctx, app.ServeOptions{In: in, Out: &bytes.Buffer{}})
		}()

		synctest.Wait()
		cancel()

		require.NoError(t, <-done)
	})
}

// blockingReader blocks until released, like a quiet stdin.
type blockingReader struct {
	release chan struct{}
}

func (r *blockingReader) Read(_ []byte) (int, error) {
	<-r.release
	return 0, errors.New("closed")
}

func TestApp_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("database mode", func(t *testing.T) {
		a, m := newApp(t, projectFiles())
		m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
		m.opener.EXPECT().Open("/proj/build").Return(m.index)
		m.index.EXPECT().Entries().Return([]string{"/proj/a.c", "/proj/main.c"}, nil)

		var out bytes.Buffer
		require.NoError(t, a.Info(context.Background(), app.InfoOptions{Out: &out}))

		g := goldie.New(t)
		g.Assert(t, "info_database", out.Bytes())
	})

	t.Run("static mode", func(t *testing.T) {
		a, m := newApp(t, fstest.MapFS{})
		m.loader.EXPECT().Load(".").Return(staticSettings(), nil)

		var out bytes.Buffer
		require.NoError(t, a.Info(context.Background(), app.InfoOptions{Out: &out}))

		g := goldie.New(t)
		g.Assert(t, "info_static", out.Bytes())
	})

	t.Run("unreadable database", func(t *testing.T) {
		a, m := newApp(t, projectFiles())
		m.loader.EXPECT().Load(".").Return(databaseSettings(), nil)
		m.opener.EXPECT().Open("/proj/build").Return(m.index)
		m.index.EXPECT().Entries().Return(nil, domain.ErrDatabaseParseFailed)
		m.index.EXPECT().Path().Return("/proj/build/" + domain.CompileCommandsFileName)
		m.logger.EXPECT().Warn(gomock.Any())

		var out bytes.Buffer
		require.NoError(t, a.Info(context.Background(), app.InfoOptions{Out: &out}))
		assert.Contains(t, out.String(), "unreadable")
	})
}

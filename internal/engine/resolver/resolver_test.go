package resolver_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccflags/internal/adapters/fs"
	"go.trai.ch/ccflags/internal/core/domain"
	"go.trai.ch/ccflags/internal/core/ports"
	"go.trai.ch/ccflags/internal/core/ports/mocks"
	"go.trai.ch/ccflags/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type resolverTestMocks struct {
	db     *mocks.MockCompilationDatabase
	logger *mocks.MockLogger
	tracer *mocks.MockTracer
	span   *mocks.MockSpan
}

func newMocks(t *testing.T) resolverTestMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := resolverTestMocks{
		db:     mocks.NewMockCompilationDatabase(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		span:   mocks.NewMockSpan(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), resolver.SpanName).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return m
}

func staticSettings(flags []string, anchor string) *domain.Settings {
	s := domain.NewSettings()
	s.Static = domain.StaticConfiguration{Flags: flags, AnchorDir: anchor}
	return s
}

func TestResolver_StaticMode(t *testing.T) {
	tests := []struct {
		name   string
		flags  []string
		anchor string
		file   string
		want   []string
	}{
		{
			name:   "absolute include is unchanged",
			flags:  []string{"-I", "/root/include"},
			anchor: "/anchor",
			file:   "x.c",
			want:   []string{"-I", "/root/include"},
		},
		{
			name:   "embedded relative include is anchored",
			flags:  []string{"-Ival"},
			anchor: "/anchor",
			file:   "x.c",
			want:   []string{"-I/anchor/val"},
		},
		{
			name:   "header gets static flags too",
			flags:  []string{"-x", "c", "-I", "include"},
			anchor: "/work/fw",
			file:   "/elsewhere/foo.h",
			want:   []string{"-x", "c", "-I", "/work/fw/include"},
		},
		{
			name:   "strip list does not apply to static flags",
			flags:  []string{"-stdlib=libc++"},
			anchor: "/anchor",
			file:   "main.cpp",
			want:   []string{"-stdlib=libc++"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			r := resolver.New(staticSettings(tt.flags, tt.anchor), nil, fs.NewMapFSAdapter("/", fstest.MapFS{}), m.logger, m.tracer)

			res, ok := r.Resolve(context.Background(), tt.file, nil)

			require.True(t, ok)
			assert.Equal(t, tt.want, res.Flags)
			assert.True(t, res.Cacheable)
			assert.Equal(t, domain.ModeStatic, r.Mode())
		})
	}
}

func TestResolver_StaticMode_DoesNotShareState(t *testing.T) {
	m := newMocks(t)
	settings := staticSettings([]string{"-I", "inc"}, "/anchor")
	r := resolver.New(settings, nil, fs.NewMapFSAdapter("/", fstest.MapFS{}), m.logger, m.tracer)

	settings.Static.Flags[1] = "changed"
	first, ok := r.Resolve(context.Background(), "a.c", nil)
	require.True(t, ok)
	first.Flags[0] = "-L"

	second, ok := r.Resolve(context.Background(), "a.c", nil)
	require.True(t, ok)
	assert.Equal(t, []string{"-I", "/anchor/inc"}, second.Flags)
}

func TestResolver_DatabaseMode_Source(t *testing.T) {
	m := newMocks(t)
	m.db.EXPECT().Lookup("/work/fw/main/http.c").Return(&domain.CompilationRecord{
		File:       "/work/fw/main/http.c",
		Flags:      []string{"-stdlib=libc++", "-I", "include", "-I../components/log/include", "-DLOG"},
		WorkingDir: "/work/fw/build",
	}, nil)

	r := resolver.New(domain.NewSettings(), m.db, fs.NewMapFSAdapter("/", fstest.MapFS{}), m.logger, m.tracer)

	res, ok := r.Resolve(context.Background(), "/work/fw/main/http.c", map[string]any{"client_data": nil})

	require.True(t, ok)
	assert.Equal(t, []string{"-I", "/work/fw/build/include", "-I/work/fw/components/log/include", "-DLOG"}, res.Flags)
	assert.True(t, res.Cacheable)
	assert.Equal(t, domain.ModeDatabase, r.Mode())
}

func TestResolver_DatabaseMode_CustomStripList(t *testing.T) {
	m := newMocks(t)
	m.db.EXPECT().Lookup("a.c").Return(&domain.CompilationRecord{
		Flags: []string{"-mlongcalls", "-stdlib=libc++", "-Wall"},
	}, nil)

	settings := domain.NewSettings()
	settings.StripFlags = []string{"-mlongcalls"}
	r := resolver.New(settings, m.db, fs.NewMapFSAdapter("/", fstest.MapFS{}), m.logger, m.tracer)

	res, ok := r.Resolve(context.Background(), "a.c", nil)

	require.True(t, ok)
	assert.Equal(t, []string{"-stdlib=libc++", "-Wall"}, res.Flags)
}

func TestResolver_DatabaseMode_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		record *domain.CompilationRecord
	}{
		{name: "no record", record: nil},
		{name: "record without flags", record: &domain.CompilationRecord{File: "a.c", WorkingDir: "/w"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			m.db.EXPECT().Lookup("a.c").Return(tt.record, nil)

			r := resolver.New(
				staticSettings([]string{"-Wall"}, "/anchor"),
				m.db,
				fs.NewMapFSAdapter("/", fstest.MapFS{}),
				m.logger,
				m.tracer,
			)

			res, ok := r.Resolve(context.Background(), "a.c", nil)

			assert.False(t, ok)
			assert.Nil(t, res)
		})
	}
}

func TestResolver_DatabaseMode_LookupFailure(t *testing.T) {
	m := newMocks(t)
	lookupErr := errors.New("malformed database")
	m.db.EXPECT().Lookup("a.c").Return(nil, lookupErr)
	m.span.EXPECT().RecordError(lookupErr)
	m.logger.EXPECT().Warn(gomock.Any())

	r := resolver.New(domain.NewSettings(), m.db, fs.NewMapFSAdapter("/", fstest.MapFS{}), m.logger, m.tracer)

	res, ok := r.Resolve(context.Background(), "a.c", nil)

	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestResolver_DatabaseMode_Header(t *testing.T) {
	record := func(file string) *domain.CompilationRecord {
		return &domain.CompilationRecord{File: file, Flags: []string{"-I", "inc"}, WorkingDir: "/work/fw"}
	}

	t.Run("borrows the existing sibling", func(t *testing.T) {
		m := newMocks(t)
		fsys := fs.NewMapFSAdapter("/work/fw", fstest.MapFS{
			"main/http.c": {Data: []byte("src")},
		})
		m.db.EXPECT().Lookup("/work/fw/main/http.c").Return(record("/work/fw/main/http.c"), nil)

		r := resolver.New(domain.NewSettings(), m.db, fsys, m.logger, m.tracer)

		res, ok := r.Resolve(context.Background(), "/work/fw/main/http.h", nil)

		require.True(t, ok)
		assert.Equal(t, []string{"-I", "/work/fw/inc"}, res.Flags)
		assert.True(t, res.Cacheable)
	})

	t.Run("sibling without record does not fall back to static flags", func(t *testing.T) {
		m := newMocks(t)
		fsys := fs.NewMapFSAdapter("/work/fw", fstest.MapFS{
			"main/http.c": {Data: []byte("src")},
		})
		m.db.EXPECT().Lookup("/work/fw/main/http.c").Return(nil, nil)

		r := resolver.New(staticSettings([]string{"-Wall"}, "/anchor"), m.db, fsys, m.logger, m.tracer)

		res, ok := r.Resolve(context.Background(), "/work/fw/main/http.h", nil)

		assert.False(t, ok)
		assert.Nil(t, res)
	})

	t.Run("no sibling skips the database", func(t *testing.T) {
		m := newMocks(t)
		fsys := fs.NewMapFSAdapter("/work/fw", fstest.MapFS{
			"main/other.c": {Data: []byte("src")},
		})

		r := resolver.New(domain.NewSettings(), m.db, fsys, m.logger, m.tracer)

		_, ok := r.Resolve(context.Background(), "/work/fw/main/http.h", nil)

		assert.False(t, ok)
	})

	t.Run("sibling with empty record yields to the next one", func(t *testing.T) {
		m := newMocks(t)
		fsys := fs.NewMapFSAdapter("/work/fw", fstest.MapFS{
			"lib/foo.cpp": {Data: []byte("src")},
			"lib/foo.c":   {Data: []byte("src")},
		})
		gomock.InOrder(
			m.db.EXPECT().Lookup("/work/fw/lib/foo.cpp").Return(&domain.CompilationRecord{File: "foo.cpp"}, nil),
			m.db.EXPECT().Lookup("/work/fw/lib/foo.c").Return(record("/work/fw/lib/foo.c"), nil),
		)

		r := resolver.New(domain.NewSettings(), m.db, fsys, m.logger, m.tracer)

		res, ok := r.Resolve(context.Background(), "/work/fw/lib/foo.hpp", nil)

		require.True(t, ok)
		assert.Equal(t, []string{"-I", "/work/fw/inc"}, res.Flags)
	})
}

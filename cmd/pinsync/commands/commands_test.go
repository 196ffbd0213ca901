package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinsync/cmd/pinsync/commands"
	"go.trai.ch/pinsync/internal/app"
	"go.trai.ch/pinsync/internal/build"
)

type mockApp struct {
	syncFunc    func(ctx context.Context, opts app.SyncOptions) error
	refreshFunc func(ctx context.Context) error
	showFunc    func(ctx context.Context, latest bool) error
}

func (m *mockApp) Sync(ctx context.Context, opts app.SyncOptions) error {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) RefreshMapping(ctx context.Context) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return nil
}

func (m *mockApp) ShowMapping(ctx context.Context, latest bool) error {
	if m.showFunc != nil {
		return m.showFunc(ctx, latest)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Sync(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.SyncOptions
	}{
		{name: "defaults patch", args: nil, want: app.SyncOptions{Patch: true}},
		{name: "force", args: []string{"--force"}, want: app.SyncOptions{Force: true, Patch: true}},
		{name: "force shorthand", args: []string{"-f"}, want: app.SyncOptions{Force: true, Patch: true}},
		{name: "no-patch", args: []string{"--no-patch"}, want: app.SyncOptions{}},
		{name: "patch=false", args: []string{"--patch=false"}, want: app.SyncOptions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.SyncOptions
			called := false
			mock := &mockApp{
				syncFunc: func(_ context.Context, opts app.SyncOptions) error {
					captured = opts
					called = true
					return nil
				},
			}

			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_SyncError(t *testing.T) {
	mock := &mockApp{
		syncFunc: func(_ context.Context, _ app.SyncOptions) error {
			return errors.New("simulated error")
		},
	}

	_, err := execute(t, mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_PatchFlagsExclusive(t *testing.T) {
	mock := &mockApp{
		syncFunc: func(_ context.Context, _ app.SyncOptions) error {
			panic("should not be called")
		},
	}

	_, err := execute(t, mock, "--patch", "--no-patch")
	require.Error(t, err)
}

func TestCommands_CacheRefresh(t *testing.T) {
	called := false
	mock := &mockApp{
		refreshFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "cache", "refresh")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_CacheShow(t *testing.T) {
	for _, args := range [][]string{{"cache", "show"}, {"cache", "show", "--latest"}, {"cache", "show", "-l"}} {
		var gotLatest bool
		mock := &mockApp{
			showFunc: func(_ context.Context, latest bool) error {
				gotLatest = latest
				return nil
			},
		}

		_, err := execute(t, mock, args...)
		require.NoError(t, err)
		assert.Equal(t, len(args) == 3, gotLatest, args)
	}
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "pinsync version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, "pinsync version "+build.Version)
}

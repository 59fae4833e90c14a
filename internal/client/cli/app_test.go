package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/client/config"
	"github.com/dmitrijs2005/releasedrop/internal/client/lifecycle"
	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/dmitrijs2005/releasedrop/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	selectInfo models.FileInfo
	selectErr  error

	submitted []lifecycle.Submission
	submitErr error

	allowed   []string
	allowedOK bool
	secrets   []string

	history    []models.ActivityLogEntry
	historyErr error

	state lifecycle.State
}

func (f *fakeUploader) Select(path string) (models.FileInfo, error) {
	if f.selectErr != nil {
		return models.FileInfo{}, f.selectErr
	}
	info := f.selectInfo
	info.Path = path
	return info, nil
}

func (f *fakeUploader) Submit(_ context.Context, sub lifecycle.Submission) (*models.UploadResult, error) {
	f.submitted = append(f.submitted, sub)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &models.UploadResult{DownloadURL: "https://dl.example/x", FileName: sub.File.Name, Release: sub.Release}, nil
}

func (f *fakeUploader) Allowed(secret string) ([]string, bool) {
	f.secrets = append(f.secrets, secret)
	return f.allowed, f.allowedOK
}

func (f *fakeUploader) History(context.Context) ([]models.ActivityLogEntry, error) {
	return f.history, f.historyErr
}

func (f *fakeUploader) State() lifecycle.State { return f.state }

func newTestApp(u uploader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{config: &config.Config{}, uploads: u, logger: logging.Nop(), out: &out}, &out
}

func stubSecret(t *testing.T, secret string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(secret), nil }
	t.Cleanup(func() { readPassword = old })
}

func TestApp_SelectAndUpload(t *testing.T) {
	stubSecret(t, "K9#mP2$vL8@nX4&")
	u := &fakeUploader{selectInfo: models.FileInfo{Name: "app.apk", SizeBytes: 10}}
	app, _ := newTestApp(u)
	ctx := context.Background()

	require.NoError(t, app.Select(ctx, "/tmp/app.apk"))
	require.NotNil(t, app.selected)
	assert.Equal(t, "(idle app.apk)", app.status())

	require.NoError(t, app.Upload(ctx, "v3"))
	require.Len(t, u.submitted, 1)
	got := u.submitted[0]
	assert.Equal(t, "app.apk", got.File.Name)
	assert.Equal(t, "/tmp/app.apk", got.File.Path)
	assert.Equal(t, "K9#mP2$vL8@nX4&", got.Secret)
	assert.Equal(t, "v3", got.Release)

	assert.Nil(t, app.selected, "selection is cleared after a successful upload")
}

func TestApp_UploadFailureKeepsSelection(t *testing.T) {
	stubSecret(t, "wrong")
	u := &fakeUploader{
		selectInfo: models.FileInfo{Name: "app.apk"},
		submitErr:  &lifecycle.Failure{Kind: common.ErrUnknownSecret, Message: "Invalid password"},
	}
	app, _ := newTestApp(u)
	ctx := context.Background()

	require.NoError(t, app.Select(ctx, "app.apk"))
	err := app.Upload(ctx, "")
	require.ErrorIs(t, err, common.ErrUnknownSecret)
	assert.NotNil(t, app.selected)
	assert.Equal(t, "", u.submitted[0].Release)
}

func TestApp_UploadWithoutSelectionPassesNilFile(t *testing.T) {
	stubSecret(t, "s")
	u := &fakeUploader{submitErr: &lifecycle.Failure{Kind: common.ErrMissingInput, Message: lifecycle.MsgMissingInput}}
	app, _ := newTestApp(u)

	err := app.Upload(context.Background(), "v1")
	require.ErrorIs(t, err, common.ErrMissingInput)
	assert.Nil(t, u.submitted[0].File)
}

func TestApp_UploadSecretReadError(t *testing.T) {
	old := readPassword
	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	t.Cleanup(func() { readPassword = old })

	u := &fakeUploader{}
	app, _ := newTestApp(u)

	require.Error(t, app.Upload(context.Background(), "v1"))
	assert.Empty(t, u.submitted)
}

func TestApp_SelectError(t *testing.T) {
	u := &fakeUploader{selectErr: os.ErrNotExist}
	app, _ := newTestApp(u)

	require.ErrorIs(t, app.Select(context.Background(), "missing.apk"), os.ErrNotExist)
	assert.Nil(t, app.selected)
}

func TestApp_Releases(t *testing.T) {
	t.Run("known secret", func(t *testing.T) {
		stubSecret(t, " K9#mP2$vL8@nX4& ")
		u := &fakeUploader{allowed: []string{"v3", "v6"}, allowedOK: true}
		app, out := newTestApp(u)

		require.NoError(t, app.Releases(context.Background()))
		assert.Equal(t, []string{"K9#mP2$vL8@nX4&"}, u.secrets)
		assert.Contains(t, out.String(), "You can upload to: v3, v6\n")
	})

	t.Run("unknown secret", func(t *testing.T) {
		stubSecret(t, "nope")
		app, out := newTestApp(&fakeUploader{})

		require.ErrorIs(t, app.Releases(context.Background()), common.ErrUnknownSecret)
		assert.Contains(t, out.String(), "Invalid password\n")
	})
}

func TestApp_History(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		app, out := newTestApp(&fakeUploader{})
		require.NoError(t, app.History(context.Background()))
		assert.Equal(t, "No uploads yet\n", out.String())
	})

	t.Run("newest first", func(t *testing.T) {
		ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		u := &fakeUploader{history: []models.ActivityLogEntry{
			{ID: "1", FileName: "old.apk", Release: "v1", Timestamp: ts, UserTag: "current_user"},
			{ID: "2", FileName: "new.apk", Release: "v3", Timestamp: ts.Add(time.Hour), UserTag: "ci"},
		}}
		app, out := newTestApp(u)

		require.NoError(t, app.History(context.Background()))
		assert.Equal(t,
			"2025-03-01T11:00:00Z  v3     new.apk (ci)\n"+
				"2025-03-01T10:00:00Z  v1     old.apk (current_user)\n",
			out.String())
	})

	t.Run("store error", func(t *testing.T) {
		app, _ := newTestApp(&fakeUploader{historyErr: errors.New("disk")})
		require.Error(t, app.History(context.Background()))
	})
}

func TestApp_Status(t *testing.T) {
	u := &fakeUploader{state: lifecycle.Failed}
	app, out := newTestApp(u)

	require.NoError(t, app.Status(context.Background()))
	assert.Equal(t, "State: completed(failure)\nNo file selected\n", out.String())
	assert.Equal(t, "(completed(failure))", app.status())
}

func TestNewTransport(t *testing.T) {
	ctx := context.Background()
	logger := logging.Nop()

	t.Run("http", func(t *testing.T) {
		tr, err := newTransport(ctx, &config.Config{Transport: config.TransportHTTP, UploadEndpoint: "http://127.0.0.1:1"}, logger)
		require.NoError(t, err)
		assert.NotNil(t, tr)
	})

	t.Run("http with timeout", func(t *testing.T) {
		tr, err := newTransport(ctx, &config.Config{Transport: config.TransportHTTP, UploadTimeout: time.Second}, logger)
		require.NoError(t, err)
		assert.NotNil(t, tr)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		_, err := newTransport(ctx, &config.Config{Transport: config.TransportS3}, logger)
		require.Error(t, err)
	})

	t.Run("s3 with static keys", func(t *testing.T) {
		tr, err := newTransport(ctx, &config.Config{
			Transport:      config.TransportS3,
			S3Bucket:       "builds",
			S3Region:       "us-east-1",
			S3BaseEndpoint: "http://127.0.0.1:9000",
			S3AccessKey:    "minio",
			S3SecretKey:    "minio123",
		}, logger)
		require.NoError(t, err)
		assert.NotNil(t, tr)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := newTransport(ctx, &config.Config{Transport: "ftp"}, logger)
		require.Error(t, err)
	})
}

func TestNewApp_WiresLocalDatabase(t *testing.T) {
	dir := t.TempDir()

	var cfg config.Config
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(dir, "state", "releasedrop.db")
	cfg.UploadEndpoint = "http://127.0.0.1:1"

	app, err := NewApp(context.Background(), &cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	_, err = os.Stat(cfg.DatabasePath)
	require.NoError(t, err)

	entries, err := app.uploads.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, "(idle)", app.status())
}

func TestNewApp_BadPolicyFile(t *testing.T) {
	dir := t.TempDir()
	policyFile := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(policyFile, []byte("access: [not a map"), 0o600))

	var cfg config.Config
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(dir, "a.db")
	cfg.PolicyFile = policyFile

	_, err := NewApp(context.Background(), &cfg)
	require.Error(t, err)
}

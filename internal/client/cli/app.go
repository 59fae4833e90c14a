package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/releasedrop/internal/client/activity"
	"github.com/dmitrijs2005/releasedrop/internal/client/config"
	"github.com/dmitrijs2005/releasedrop/internal/client/lifecycle"
	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/client/policy"
	"github.com/dmitrijs2005/releasedrop/internal/client/storage"
	"github.com/dmitrijs2005/releasedrop/internal/client/tracker"
	"github.com/dmitrijs2005/releasedrop/internal/client/transport"
	"github.com/dmitrijs2005/releasedrop/internal/logging"
)

// uploader is the part of *lifecycle.Lifecycle the commands drive.
type uploader interface {
	Select(path string) (models.FileInfo, error)
	Submit(ctx context.Context, sub lifecycle.Submission) (*models.UploadResult, error)
	Allowed(secret string) ([]string, bool)
	History(ctx context.Context) ([]models.ActivityLogEntry, error)
	State() lifecycle.State
}

type App struct {
	config   *config.Config
	uploads  uploader
	db       *sql.DB
	logger   logging.Logger
	out      io.Writer
	selected *models.FileInfo
}

// NewApp wires storage, policy tables, the transport and the upload
// lifecycle from c. The returned App owns the database handle.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	tables, err := policy.LoadTables(c.PolicyFile)
	if err != nil {
		return nil, err
	}

	tr := tracker.NewDuplicateTracker()
	validator, err := policy.NewValidatorFromTables(tables, tr)
	if err != nil {
		return nil, err
	}

	t, err := newTransport(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	history := activity.NewLog(activity.NewSQLiteStore(db))
	out := os.Stdout

	lc := lifecycle.New(validator, t, tr, history, lifecycle.Options{
		DefaultRelease: c.DefaultRelease,
		UserTag:        c.UserTag,
		Notifier:       NewPresenter(out),
		Logger:         logger,
	})

	return &App{config: c, uploads: lc, db: db, logger: logger, out: out}, nil
}

func newTransport(ctx context.Context, c *config.Config, logger logging.Logger) (transport.Transport, error) {
	var t transport.Transport

	switch c.Transport {
	case config.TransportHTTP, "":
		t = transport.NewHTTPTransport(c.UploadEndpoint, &http.Client{}, logger)
	case config.TransportS3:
		s3t, err := transport.NewS3Transport(ctx, transport.S3Options{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			URLTTL:       c.S3URLTTL,
		}, logger)
		if err != nil {
			return nil, err
		}
		t = s3t
	default:
		return nil, fmt.Errorf("unknown transport %q", c.Transport)
	}

	return transport.WithTimeout(t, c.UploadTimeout), nil
}

// Run selects the initial file, if configured, and blocks in the REPL until
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to releasedrop (type 'help' for commands)")

	if a.config.InitialFile != "" {
		_ = a.Select(ctx, a.config.InitialFile)
	}

	runREPL(ctx, a, a.status, newScanner(os.Stdin))
}

func (a *App) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing database", "error", err)
	}
	a.db = nil
}

func (a *App) status() string {
	s := a.uploads.State().String()
	if a.selected != nil {
		s = s + " " + a.selected.Name
	}
	return fmt.Sprintf("(%s)", s)
}

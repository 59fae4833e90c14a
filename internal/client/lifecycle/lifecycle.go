package lifecycle

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/releasedrop/internal/client/activity"
	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/client/policy"
	"github.com/dmitrijs2005/releasedrop/internal/client/tracker"
	"github.com/dmitrijs2005/releasedrop/internal/client/transport"
	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/dmitrijs2005/releasedrop/internal/cryptox"
	"github.com/dmitrijs2005/releasedrop/internal/filex"
	"github.com/dmitrijs2005/releasedrop/internal/logging"
)

// Submission is the caller's input to Submit. A nil File means no file was
// selected; an empty Release selects the configured default.
type Submission struct {
	File    *models.FileInfo
	Secret  string
	Release string
}

type Options struct {
	DefaultRelease string
	UserTag        string
	Notifier       Notifier
	Logger         logging.Logger
}

type Lifecycle struct {
	validator *policy.Validator
	transport transport.Transport
	tracker   *tracker.DuplicateTracker
	history   *activity.Log

	defaultRelease string
	userTag        string
	notifier       Notifier
	logger         logging.Logger

	mu    sync.Mutex
	state State
}

func New(v *policy.Validator, t transport.Transport, tr *tracker.DuplicateTracker, h *activity.Log, opts Options) *Lifecycle {
	l := &Lifecycle{
		validator:      v,
		transport:      t,
		tracker:        tr,
		history:        h,
		defaultRelease: opts.DefaultRelease,
		userTag:        opts.UserTag,
		notifier:       opts.Notifier,
		logger:         opts.Logger,
		state:          Idle,
	}
	if l.userTag == "" {
		l.userTag = common.DefaultUserTag
	}
	if l.notifier == nil {
		l.notifier = NopNotifier{}
	}
	if l.logger == nil {
		l.logger = logging.Nop()
	}
	return l
}

func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Select describes the file at path and announces it, warning when a file
// with the same name was uploaded earlier in this process.
func (l *Lifecycle) Select(path string) (models.FileInfo, error) {
	m, err := filex.Describe(path)
	if err != nil {
		return models.FileInfo{}, err
	}

	info := models.FileInfo{Name: m.Name, Path: m.Path, SizeBytes: m.Size, LastModified: m.ModTime}
	l.notifier.FileSelected(info)
	if w := l.validator.WarnIfDuplicate(info.Name); w != nil {
		l.notifier.DuplicateWarning(w.String())
	}
	return info, nil
}

// Allowed lists the releases the secret may upload to.
func (l *Lifecycle) Allowed(secret string) ([]string, bool) {
	return l.validator.Access().Allowed(secret)
}

// History returns the retained activity log, oldest first.
func (l *Lifecycle) History(ctx context.Context) ([]models.ActivityLogEntry, error) {
	return l.history.Entries(ctx)
}

// Submit runs one attempt to completion. It returns the result on success
// and a *Failure otherwise; common.ErrUploadInProgress is returned, with the
// state left untouched, while another attempt is running.
func (l *Lifecycle) Submit(ctx context.Context, sub Submission) (*models.UploadResult, error) {
	release := sub.Release
	if release == "" {
		release = l.defaultRelease
	}

	l.mu.Lock()
	if l.state.Busy() {
		l.mu.Unlock()
		return nil, &Failure{Kind: common.ErrUploadInProgress, Message: MsgUploadInProgress}
	}
	if sub.File == nil || sub.File.Name == "" || sub.Secret == "" {
		l.state = Failed
		l.mu.Unlock()
		f := &Failure{Kind: common.ErrMissingInput, Message: MsgMissingInput}
		l.notifier.UploadFailed(f.Message)
		return nil, f
	}
	l.state = Validating
	l.mu.Unlock()

	req := models.UploadRequest{File: *sub.File, Secret: sub.Secret, Release: release}
	log := l.logger.With("file", req.File.Name, "release", release, "secret_fp", cryptox.Fingerprint(req.Secret))
	log.Debug(ctx, "validating upload", "size", req.File.SizeBytes)

	if err := l.validator.Validate(req); err != nil {
		f := validationFailure(err)
		l.setState(Failed)
		log.Info(ctx, "upload rejected by policy", "reason", f.Kind)
		l.notifier.ValidationFailed(f.Kind, f.Message)
		return nil, f
	}

	l.setState(Submitting)
	l.notifier.Progress(10, fmt.Sprintf("Preparing %s...", req.File.Name))
	l.notifier.Progress(30, "Uploading to server...")

	resp, err := l.transport.Send(ctx, req)
	if err != nil {
		f, responded := transportFailure(err)
		if responded {
			l.notifier.Progress(80, "Processing upload...")
		}
		return nil, l.fail(ctx, log, f)
	}

	l.notifier.Progress(80, "Processing upload...")
	if resp == nil {
		return nil, l.fail(ctx, log, &Failure{Kind: common.ErrMalformedResponse, Message: MsgUploadFailed})
	}
	l.notifier.Progress(100, "Upload complete!")

	switch {
	case resp.URL == "" && resp.Error != "":
		return nil, l.fail(ctx, log, &Failure{Kind: common.ErrServerRejected, Message: resp.Error})
	case resp.URL == "":
		return nil, l.fail(ctx, log, &Failure{Kind: common.ErrMalformedResponse, Message: MsgUploadFailed})
	}

	result := &models.UploadResult{DownloadURL: resp.URL, FileName: req.File.Name, Release: release}
	l.complete(ctx, log, result)
	l.notifier.UploadSucceeded(result.DownloadURL, result.FileName)
	return result, nil
}

// complete records the upload and only then makes Succeeded observable.
func (l *Lifecycle) complete(ctx context.Context, log logging.Logger, r *models.UploadResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tracker.Record(r.FileName)
	_, err := l.history.Append(ctx, models.ActivityLogEntry{
		FileName: r.FileName,
		Release:  r.Release,
		UserTag:  l.userTag,
	})
	if err != nil {
		log.Warn(ctx, "activity log not updated", "error", err)
	}

	l.state = Succeeded
	log.Info(ctx, "upload finished", "url", r.DownloadURL)
}

func (l *Lifecycle) fail(ctx context.Context, log logging.Logger, f *Failure) *Failure {
	l.setState(Failed)
	log.Warn(ctx, "upload failed", "kind", f.Kind, "cause", f.Cause)
	l.notifier.UploadFailed(f.Message)
	return f
}

func (l *Lifecycle) setState(s State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

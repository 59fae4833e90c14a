package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/releasedrop/internal/client/lifecycle"
	"github.com/dmitrijs2005/releasedrop/internal/common"
)

// Select makes path the file for the next upload. The presenter reports the
// file details and any duplicate warning.
func (a *App) Select(ctx context.Context, path string) error {
	info, err := a.uploads.Select(path)
	if err != nil {
		a.logger.Error(ctx, "cannot select file", "path", path, "error", err)
		return err
	}
	a.selected = &info
	return nil
}

// Upload asks for the secret and submits the selected file to release (or
// the default release when empty). The selection is cleared on success.
func (a *App) Upload(ctx context.Context, release string) error {
	secret, err := GetSecret(a.out)
	if err != nil {
		a.logger.Error(ctx, "cannot read password", "error", err)
		return err
	}

	_, err = a.uploads.Submit(ctx, lifecycle.Submission{
		File:    a.selected,
		Secret:  secret,
		Release: release,
	})
	if err != nil {
		return err
	}

	a.selected = nil
	return nil
}

// Releases asks for the secret and prints the releases it may upload to.
func (a *App) Releases(ctx context.Context) error {
	secret, err := GetSecret(a.out)
	if err != nil {
		a.logger.Error(ctx, "cannot read password", "error", err)
		return err
	}

	releases, ok := a.uploads.Allowed(secret)
	if !ok {
		fmt.Fprintln(a.out, "Invalid password")
		return common.ErrUnknownSecret
	}

	fmt.Fprintf(a.out, "You can upload to: %s\n", strings.Join(releases, ", "))
	return nil
}

// History prints the activity log, newest first.
func (a *App) History(ctx context.Context) error {
	entries, err := a.uploads.History(ctx)
	if err != nil {
		a.logger.Error(ctx, "cannot read activity log", "error", err)
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No uploads yet")
		return nil
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(a.out, "%s  %-6s %s (%s)\n", e.TimestampISO(), e.Release, e.FileName, e.UserTag)
	}
	return nil
}

// Status prints the lifecycle state and the current selection.
func (a *App) Status(_ context.Context) error {
	fmt.Fprintf(a.out, "State: %s\n", a.uploads.State())
	if a.selected == nil {
		fmt.Fprintln(a.out, "No file selected")
		return nil
	}
	fmt.Fprintf(a.out, "Selected: %s (%s)\n", a.selected.Name, a.selected.Path)
	return nil
}

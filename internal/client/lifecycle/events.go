package lifecycle

import "github.com/dmitrijs2005/releasedrop/internal/client/models"

// Notifier is the presentation surface. Calls are made from the goroutine
// running Select or Submit and never while the lifecycle holds its lock.
type Notifier interface {
	FileSelected(info models.FileInfo)
	DuplicateWarning(message string)
	// ValidationFailed carries one of the policy sentinel errors as kind.
	ValidationFailed(kind error, detail string)
	// Progress percentages are presentation hints only.
	Progress(percent int, text string)
	UploadSucceeded(url, fileName string)
	UploadFailed(message string)
}

// NopNotifier ignores every event.
type NopNotifier struct{}

func (NopNotifier) FileSelected(models.FileInfo) {}
func (NopNotifier) DuplicateWarning(string) {}
func (NopNotifier) ValidationFailed(error, string) {}
func (NopNotifier) Progress(int, string) {}
func (NopNotifier) UploadSucceeded(string, string) {}
func (NopNotifier) UploadFailed(string) {}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/client/lifecycle"
	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/sizex"
)

// Presenter renders lifecycle events as console lines.
type Presenter struct {
	w io.Writer
}

var _ lifecycle.Notifier = (*Presenter)(nil)

func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

func (p *Presenter) FileSelected(info models.FileInfo) {
	fmt.Fprintf(p.w, "Selected %s (%s, modified %s)\n",
		info.Name, sizex.Format(info.SizeBytes), info.LastModified.Format(time.DateTime))
}

func (p *Presenter) DuplicateWarning(message string) {
	fmt.Fprintf(p.w, "Warning: %s\n", message)
}

func (p *Presenter) ValidationFailed(_ error, detail string) {
	fmt.Fprintf(p.w, "Error: %s\n", detail)
}

func (p *Presenter) Progress(percent int, text string) {
	fmt.Fprintf(p.w, "[%3d%%] %s\n", percent, text)
}

func (p *Presenter) UploadSucceeded(url, fileName string) {
	fmt.Fprintf(p.w, "Uploaded %s\nDownload URL: %s\n", fileName, url)
}

func (p *Presenter) UploadFailed(message string) {
	fmt.Fprintf(p.w, "Error: %s\n", message)
}

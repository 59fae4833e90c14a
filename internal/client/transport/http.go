package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/dmitrijs2005/releasedrop/internal/cryptox"
	"github.com/dmitrijs2005/releasedrop/internal/logging"
)

// maxResponseBytes bounds how much of the endpoint's reply is read.
const maxResponseBytes = 1 << 20

// HTTPTransport posts the file as multipart/form-data with the fields
// file, secret and release, streaming the file from disk.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
	logger   logging.Logger
}

func NewHTTPTransport(endpoint string, client *http.Client, logger logging.Logger) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPTransport{endpoint: endpoint, client: client, logger: logger}
}

func (t *HTTPTransport) Send(ctx context.Context, req models.UploadRequest) (*Response, error) {
	f, err := os.Open(req.File.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrTransportFailure, req.File.Name, err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	// unblocks the writer if the request ends before the body is consumed
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, f, req))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, pr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransportFailure, err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	t.logger.Debug(ctx, "posting upload",
		"endpoint", t.endpoint, "file", req.File.Name, "size", req.File.SizeBytes,
		"release", req.Release, "secret_fp", cryptox.Fingerprint(req.Secret))

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", common.ErrTransportFailure, err)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		t.logger.Warn(ctx, "undecodable upload response", "status", resp.Status, "bytes", len(body))
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %s", common.ErrServerRejected, resp.Status)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	return &out, nil
}

func writeForm(mw *multipart.Writer, f io.Reader, req models.UploadRequest) error {
	part, err := mw.CreateFormFile(common.FormFieldFile, req.File.Name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	if err := mw.WriteField(common.FormFieldSecret, req.Secret); err != nil {
		return err
	}
	if err := mw.WriteField(common.FormFieldRelease, req.Release); err != nil {
		return err
	}
	return mw.Close()
}

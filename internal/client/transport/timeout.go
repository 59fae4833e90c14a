package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/common"
)

type timeoutTransport struct {
	next    Transport
	timeout time.Duration
}

// WithTimeout bounds each Send by d; expiry surfaces as common.ErrTimeout.
// A non-positive d returns next unchanged.
func WithTimeout(next Transport, d time.Duration) Transport {
	if d <= 0 {
		return next
	}
	return &timeoutTransport{next: next, timeout: d}
}

func (t *timeoutTransport) Send(ctx context.Context, req models.UploadRequest) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.next.Send(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s: %v", common.ErrTimeout, t.timeout, err)
	}
	return resp, err
}

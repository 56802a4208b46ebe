// Package revalidate asks the hosting platform to drop cached renders of
// public paths after an admin edit. The call is best-effort: callers never
// wait on it, and its failure has no effect on the triggering request.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier performs the authenticated cache-invalidation call.
type Notifier struct {
	url    string
	secret string
	client *http.Client
	log    *zap.Logger
}

// NewNotifier builds a Notifier. An empty url or secret is allowed; the
// notifier then skips every call with a warning instead of failing, so a
// partially configured environment still serves requests.
func NewNotifier(url, secret string, logger *zap.Logger) *Notifier {
	return &Notifier{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    logger,
	}
}

// ContentChanged requests invalidation of the given paths in a detached
// goroutine and returns immediately. Outcome is logged only.
func (n *Notifier) ContentChanged(paths []string) {
	if len(paths) == 0 {
		return
	}
	if n.url == "" || n.secret == "" {
		n.log.Warn("revalidation skipped: revalidate_url/revalidate_secret not configured",
			zap.Strings("paths", paths))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := n.notify(ctx, paths); err != nil {
			n.log.Warn("revalidation call failed", zap.Strings("paths", paths), zap.Error(err))
			return
		}
		n.log.Info("revalidation requested", zap.Strings("paths", paths))
	}()
}

// notify performs one synchronous invalidation request. Split out from
// ContentChanged so tests can exercise it without goroutine timing.
func (n *Notifier) notify(ctx context.Context, paths []string) error {
	body, err := json.Marshal(map[string][]string{"paths": paths})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.secret)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("revalidate endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// Package verify cross-checks weekday resolutions against a remote
// verification service, falling back to the local resolver when the remote
// is unreachable or disagreeably shaped.
package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/domain/calendar"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// Source records which implementation produced a verification result.
type Source string

const (
	// SourceRemote means the remote verification service answered.
	SourceRemote Source = "remote"
	// SourceLocal means the local resolver answered after a remote failure,
	// or no remote was configured.
	SourceLocal Source = "local"
)

// FallbackMetrics counts remote failures.  Implemented by the prometheus
// collector; nil disables counting.
type FallbackMetrics interface {
	VerifierFallback()
}

// Result is a verified weekday for a date, tagged with its source.
type Result struct {
	Weekday     string `json:"weekday"`
	WeekdayThai string `json:"weekday_thai"`
	ISODate     string `json:"iso_date"`
	Source      Source `json:"source"`
}

// Gateway verifies dates remotely with a bounded timeout and degrades to
// local resolution on any remote failure.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
	metrics    FallbackMetrics
}

// remoteReply is the expected remote verification payload.
type remoteReply struct {
	Weekday string `json:"weekday"`
	ISODate string `json:"iso_date"`
}

// NewGateway builds the gateway.  An empty BaseURL disables the remote tier
// entirely; every verification is then local.
func NewGateway(cfg config.VerifierConfig, logger logging.Logger, metrics FallbackMetrics) *Gateway {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Gateway{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// Verify resolves rawDate's weekday, preferring the remote service.  Date
// parsing failures are returned as-is; remote failures are logged, counted,
// and absorbed by the local fallback.
func (g *Gateway) Verify(ctx context.Context, rawDate, tz string) (Result, error) {
	res, err := calendar.ResolveWithFallback(rawDate, "", tz)
	if err != nil {
		return Result{}, err
	}

	if g.baseURL != "" {
		remote, rerr := g.verifyRemote(ctx, res)
		if rerr == nil {
			return remote, nil
		}
		g.logger.Warn("remote verification failed, using local resolver",
			logging.String("date", res.Date.ISO()), logging.Err(rerr))
		if g.metrics != nil {
			g.metrics.VerifierFallback()
		}
	}

	return Result{
		Weekday:     calendar.WeekdayEnglish(res.Weekday),
		WeekdayThai: calendar.WeekdayThai(res.Weekday),
		ISODate:     res.Date.ISO(),
		Source:      SourceLocal,
	}, nil
}

// verifyRemote asks the remote service for the weekday of an already
// resolved date and cross-checks the reply shape.
func (g *Gateway) verifyRemote(ctx context.Context, res calendar.Resolution) (Result, error) {
	q := url.Values{}
	q.Set("date", res.Date.ISO())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Result{}, apperrors.Wrap(err, apperrors.ErrCodeVerifyRemoteFailed, "building verification request")
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Result{}, apperrors.Wrap(err, apperrors.ErrCodeVerifyRemoteFailed, "verification request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, apperrors.Newf(apperrors.ErrCodeVerifyBadReply,
			"verifier answered %d", resp.StatusCode)
	}

	var reply remoteReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return Result{}, apperrors.Wrap(err, apperrors.ErrCodeVerifyBadReply, "decoding verification reply")
	}
	if reply.Weekday == "" {
		return Result{}, apperrors.New(apperrors.ErrCodeVerifyBadReply, "verifier reply has no weekday")
	}

	g.logger.Debug("remote verification ok",
		logging.String("date", res.Date.ISO()),
		logging.Duration("elapsed", time.Since(start)))

	return Result{
		Weekday:     reply.Weekday,
		WeekdayThai: calendar.WeekdayThai(res.Weekday),
		ISODate:     res.Date.ISO(),
		Source:      SourceRemote,
	}, nil
}

//Personal.AI order the ending

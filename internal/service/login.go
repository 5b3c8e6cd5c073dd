package service

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
	apperrors "github.com/tweakd/tweakd/internal/errors"
	"github.com/tweakd/tweakd/internal/observability/statsd"
	"github.com/tweakd/tweakd/internal/ports"
)

// LoginServiceOptions groups dependencies for LoginService.
type LoginServiceOptions struct {
	Provider ports.AuthProvider
	Tiers    ports.TierMapper
	Browser  ports.BrowserOpener

	// CallbackAddr is the fixed loopback address the redirect listener binds.
	CallbackAddr string
	// CallbackPath is the redirect URI path the listener accepts.
	CallbackPath string
	// Timeout bounds an unresolved attempt. Zero waits indefinitely.
	Timeout time.Duration

	Logger  *slog.Logger
	Metrics statsd.Sink
}

// LoginService orchestrates the login flow: it owns the redirect listener,
// runs the provider resolution, and guarantees exactly one outcome per
// attempt. At most one attempt is active at a time; a new one supersedes
// the old one and takes over the listening port.
type LoginService struct {
	provider ports.AuthProvider
	tiers    ports.TierMapper
	browser  ports.BrowserOpener
	addr     string
	path     string
	timeout  time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink

	mu      sync.Mutex
	current *loginAttempt
}

// NewLoginService constructs a new LoginService.
func NewLoginService(opts LoginServiceOptions) *LoginService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	path := opts.CallbackPath
	if path == "" {
		path = "/callback"
	}
	return &LoginService{
		provider: opts.Provider,
		tiers:    opts.Tiers,
		browser:  opts.Browser,
		addr:     opts.CallbackAddr,
		path:     path,
		timeout:  opts.Timeout,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// LoginResult is the successful outcome of a login attempt.
type LoginResult struct {
	Identity   domainauth.Identity
	Membership domainauth.Membership
}

type loginOutcome struct {
	result *LoginResult
	err    error
}

// loginAttempt owns one redirect listener for the lifetime of one login.
// The outcome cell (once + buffered channel) is single-assignment: the
// first of code-received, cancel, supersede, or timeout wins and every
// later resolution is a no-op.
type loginAttempt struct {
	id       string
	listener net.Listener

	// claimed arbitrates the terminal triggers: the callback handler and
	// Cancel contend on it, and only the winner ends the attempt. Once a
	// code has been accepted, cancellation no longer applies.
	claimed atomic.Bool

	once sync.Once
	done chan loginOutcome
}

func (a *loginAttempt) resolve(res *LoginResult, err error) {
	a.once.Do(func() {
		a.done <- loginOutcome{result: res, err: err}
	})
}

// Begin runs a login attempt to completion: it binds the redirect
// listener, opens the provider authorization page in the user's browser,
// and suspends until the attempt resolves. Exactly one outcome is
// produced per call.
func (s *LoginService) Begin(ctx context.Context) (*LoginResult, error) {
	start := time.Now()

	attempt, err := s.startAttempt()
	if err != nil {
		s.observeOutcome(start, err)
		return nil, err
	}
	s.count("login.attempts", nil)

	s.logger.InfoContext(ctx, "login attempt started", "attempt", attempt.id, "addr", s.addr)

	if openErr := s.browser.Open(s.provider.AuthCodeURL()); openErr != nil {
		attempt.resolve(nil, apperrors.Wrap(openErr, apperrors.ErrCodeInternal, "open authorization page"))
	}

	var timeoutC <-chan time.Time
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	var out loginOutcome
	select {
	case out = <-attempt.done:
	case <-timeoutC:
		attempt.resolve(nil, apperrors.Timeout("login attempt timed out"))
		out = <-attempt.done
	case <-ctx.Done():
		attempt.resolve(nil, apperrors.Cancelled("cancelled by user"))
		out = <-attempt.done
	}

	s.finishAttempt(attempt)
	s.observeOutcome(start, out.err)

	if out.err != nil {
		s.logger.InfoContext(ctx, "login attempt failed", "attempt", attempt.id, "error", out.err)
		return nil, out.err
	}
	s.logger.InfoContext(ctx, "login attempt succeeded",
		"attempt", attempt.id,
		"user", out.result.Identity.ID,
		"tier", out.result.Membership.Tier())
	return out.result, nil
}

// Cancel resolves the pending attempt as cancelled by the user and
// reports whether one was pending. Cancellation contends on the same
// claim flag as the callback handler, so once a code has been accepted
// Cancel loses the race, returns false, and the exchange proceeds.
func (s *LoginService) Cancel() bool {
	s.mu.Lock()
	attempt := s.current
	s.mu.Unlock()

	if attempt == nil || !attempt.claimed.CompareAndSwap(false, true) {
		return false
	}
	attempt.resolve(nil, apperrors.Cancelled("cancelled by user"))
	_ = attempt.listener.Close()
	return true
}

// startAttempt supersedes any active attempt, binds the listener, and
// starts serving the callback endpoint.
func (s *LoginService) startAttempt() (*loginAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The prior attempt must release the port before the new bind.
	if prior := s.current; prior != nil {
		prior.resolve(nil, apperrors.Cancelled("superseded by a new login attempt"))
		_ = prior.listener.Close()
		s.current = nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeBind, "bind redirect listener on %s", s.addr)
	}

	attempt := &loginAttempt{
		id:       uuid.New().String(),
		listener: ln,
		done:     make(chan loginOutcome, 1),
	}
	s.current = attempt

	srv := &http.Server{
		Handler:           s.callbackHandler(attempt),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if serveErr := srv.Serve(ln); serveErr != nil && serveErr != http.ErrServerClosed {
			// The listener is closed as part of resolution; this is the
			// normal way out of Serve.
			s.logger.Debug("redirect listener stopped", "attempt", attempt.id, "error", serveErr)
		}
	}()

	return attempt, nil
}

func (s *LoginService) finishAttempt(attempt *loginAttempt) {
	_ = attempt.listener.Close()

	s.mu.Lock()
	if s.current == attempt {
		s.current = nil
	}
	s.mu.Unlock()
}

// callbackHandler serves the redirect endpoint for one attempt. Requests
// that do not carry a code or error parameter (favicon probes and the
// like) are answered 404 and leave the attempt pending.
func (s *LoginService) callbackHandler(attempt *loginAttempt) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != s.path {
			http.NotFound(w, r)
			return
		}

		q := r.URL.Query()
		code := q.Get("code")
		errParam := q.Get("error")
		if code == "" && errParam == "" {
			http.NotFound(w, r)
			return
		}

		// Only the first qualifying request ends the attempt.
		if !attempt.claimed.CompareAndSwap(false, true) {
			http.NotFound(w, r)
			return
		}

		if errParam != "" {
			writeCallbackPage(w, "Authentication failed. You can close this window.")
			_ = attempt.listener.Close()

			msg := "authorization denied: " + errParam
			if desc := q.Get("error_description"); desc != "" {
				msg += ": " + desc
			}
			attempt.resolve(nil, apperrors.New(apperrors.ErrCodeExchange, msg))
			return
		}

		// Respond and release the port before the exchange starts; the
		// provider calls do not need the listener.
		writeCallbackPage(w, "Authentication successful! You can close this window.")
		_ = attempt.listener.Close()

		// The redirect request's context dies with the browser connection;
		// the exchange must not.
		res, err := s.resolveCode(context.WithoutCancel(r.Context()), code)
		attempt.resolve(res, err)
	})
}

// resolveCode runs the provider resolution: exchange, profile fetch, role
// fetch, tier derivation. The role fetch is deliberately non-fatal: a user
// who is not a member of the target community still logs in, with an
// empty role set.
func (s *LoginService) resolveCode(ctx context.Context, code string) (*LoginResult, error) {
	grant, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExchange, "exchange authorization code")
	}

	identity, err := s.provider.FetchIdentity(ctx, grant)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeIdentityFetch, "fetch user profile")
	}

	roles, err := s.provider.FetchRoles(ctx, grant)
	if err != nil {
		s.logger.Debug("role fetch failed, continuing with empty role set", "error", err)
		roles = domainauth.RoleSet{}
	}

	return &LoginResult{
		Identity:   identity,
		Membership: s.tiers.Map(identity, roles),
	}, nil
}

func writeCallbackPage(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (s *LoginService) count(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.Count(name, 1, tags)
	}
}

func (s *LoginService) observeOutcome(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = string(apperrors.GetCode(err))
		if outcome == "" {
			outcome = "error"
		}
	}
	s.metrics.Count("login.outcomes", 1, map[string]string{"outcome": outcome})
	s.metrics.Timing("login.duration", time.Since(start), nil)
}

package handlers

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type MiddleWareHandler interface {
	// Protect chains recovery, per-client rate limiting and the API key
	// check, in that order, around an /api/* handler.
	Protect(http.HandlerFunc) http.HandlerFunc

	// Public chains recovery and request tagging only, for
	// unauthenticated routes.
	Public(http.HandlerFunc) http.HandlerFunc

	Recover(http.HandlerFunc) http.HandlerFunc
	RequestID(http.HandlerFunc) http.HandlerFunc
	RateLimit(http.HandlerFunc) http.HandlerFunc
	ValidateAPIKey(http.HandlerFunc) http.HandlerFunc
}

type middlewareHandler struct {
	cfg *config.Config
	log *zap.Logger

	mu       sync.Mutex
	visitors map[string]*rate.Limiter
}

func NewMiddlewareHandler(cfg *config.Config, log *zap.Logger) MiddleWareHandler {
	return &middlewareHandler{
		cfg:      cfg,
		log:      log,
		visitors: make(map[string]*rate.Limiter),
	}
}

func (m *middlewareHandler) Protect(h http.HandlerFunc) http.HandlerFunc {
	return utils.Middleware(h, m.Recover, m.RequestID, m.RateLimit, m.ValidateAPIKey)
}

func (m *middlewareHandler) Public(h http.HandlerFunc) http.HandlerFunc {
	return utils.Middleware(h, m.Recover, m.RequestID)
}

// RequestID tags every response with a correlation id, honoring one the
// caller already carries.
func (m *middlewareHandler) RequestID(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		h.ServeHTTP(w, r)
	}
}

func (m *middlewareHandler) Recover(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if err, ok := rec.(error); ok {
					errors.AsAppError(err).Serialize(w)
					return
				}
				m.log.Error("handler panic", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				errors.NewUnknownError(rec).Serialize(w)
			}
		}()
		h.ServeHTTP(w, r)
	}
}

func (m *middlewareHandler) ValidateAPIKey(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("x-api-key")
		if key == "" {
			errors.NewMissingAPIKeyError().Serialize(w)
			return
		}
		for _, allowed := range m.cfg.APIKeys {
			if key == allowed {
				h.ServeHTTP(w, r)
				return
			}
		}
		errors.NewInvalidAPIKeyError().Serialize(w)
	}
}

func (m *middlewareHandler) RateLimit(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiterFor(clientID(r)).Allow() {
			errors.NewRateLimitError().Serialize(w)
			return
		}
		h.ServeHTTP(w, r)
	}
}

func (m *middlewareHandler) limiterFor(id string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	limiter, ok := m.visitors[id]
	if !ok {
		perSecond := m.cfg.RateLimitRPM / 60.0
		if perSecond <= 0 {
			perSecond = 1
		}
		burst := m.cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		m.visitors[id] = limiter
	}
	return limiter
}

func clientID(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		if idx := strings.IndexByte(ip, ','); idx > 0 {
			return strings.TrimSpace(ip[:idx])
		}
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

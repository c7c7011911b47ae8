package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/akolanti/BrainAPI/internal/adapter/utils"
	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/handlers"
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	req := re.req
	trace := req.Header.Get("X-Trace-Id")
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(`X-Trace-Id`, trace)
	re.req = req.WithContext(ctx)
	return re
}

// authenticate resolves the bearer token against the session store and puts
// the verified identity on the request context. Auth failures are terminal,
// there is nothing to retry.
func authenticate(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Authenticating request")

	identity, ok := resolveIdentity(re.req)
	if !ok {
		re.badRequest.isBadRequest = true
		re.badRequest.kind = askModel.Unauthenticated
		return re
	}

	ctx := context.WithValue(re.req.Context(), config.IDENTITY_KEY, identity)
	re.req = re.req.WithContext(ctx)
	re.logger.Debug("Authorized", "identity", identity.Id)
	return re
}

func resolveIdentity(req *http.Request) (askModel.Identity, bool) {
	if sessions == nil {
		return askModel.Identity{}, false
	}
	authHeader := req.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return askModel.Identity{}, false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return sessions.CurrentIdentity(req.Context(), token)
}

func rateLimiter(re requestResponseStruct) requestResponseStruct {
	ip, _, err := net.SplitHostPort(re.req.RemoteAddr)
	if err != nil {
		ip = re.req.RemoteAddr
	}

	if !limiterInstance.GetLimiter(ip).Allow() {
		re.logger.Error("Too many requests", "Rate Limiter exceeded", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			kind:         askModel.RateLimited,
		}
		return re
	}
	return re
}

func handleBadRequest(re requestResponseStruct) {
	re.logger.Warn("Bad request", "kind", re.badRequest.kind, "IP", re.req.RemoteAddr)

	if re.badRequest.kind == askModel.RateLimited {
		//the per-IP limiter is not the provider quota, it gets its own text
		handlers.WriteErrorMessage(re.writer, http.StatusTooManyRequests,
			"Zu viele Anfragen. Bitte versuchen Sie es in einem Moment erneut.")
		return
	}
	handlers.WriteErrorResponse(re.writer, re.badRequest.kind)
}

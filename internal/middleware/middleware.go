package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/handlers"
	"github.com/akolanti/BrainAPI/internal/metrics"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	kind         askModel.ErrorKind
}

var sessions askModel.SessionStore

// InitAuth wires the session store the auth step resolves tokens against.
func InitAuth(sessionStore askModel.SessionStore) {
	sessions = sessionStore
}

var AskHandler = Wrap(handlers.AskHandler)
var UploadHandler = Wrap(handlers.UploadHandler)
var ListDocumentsHandler = Wrap(handlers.ListDocumentsHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Debug("New request received")

	re = injectTrace(re)
	re = rateLimiter(re)
	if re.badRequest.isBadRequest {
		return re //stop here if rate limit fails
	}
	re = authenticate(re)
	return re
}

package session

import (
	"log/slog"
	"net/http"
)

// Middleware wraps next with the session lifecycle: load the session from
// the store, attach it to the request context, run the handler, then flush
// changes back before the response is committed.
//
// A store connectivity failure on load or flush produces a 500 response; a
// missing record silently becomes a new session. If the handler panics
// before writing the response, no flush happens and the panic propagates.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Load(r)
		if err != nil {
			m.log.ErrorContext(r.Context(), "session load failed", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := WithSession(r.Context(), sess)

		fw := &flushWriter{
			ResponseWriter: w,
			commit: func() error {
				if err := m.Flush(ctx, w, sess); err != nil {
					m.log.ErrorContext(ctx, "session flush failed", slog.Any("error", err))
					return err
				}
				return nil
			},
		}

		next.ServeHTTP(fw, r.WithContext(ctx))

		// Handlers that produce no output never trigger the writer, so the
		// flush runs here instead.
		fw.ensure()
	})
}

// flushWriter defers the session flush until the response is about to be
// written. Cookies can only be set before the header is sent, and a failed
// store write must surface as an error response rather than a success with
// a cookie pointing at nothing.
type flushWriter struct {
	http.ResponseWriter
	commit    func() error
	committed bool
	failed    bool
}

func (w *flushWriter) WriteHeader(status int) {
	w.ensure()
	if w.failed {
		return
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *flushWriter) Write(b []byte) (int, error) {
	w.ensure()
	if w.failed {
		// Swallow the handler's body; the error response is already out.
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *flushWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *flushWriter) ensure() {
	if w.committed {
		return
	}
	w.committed = true

	if err := w.commit(); err != nil {
		w.failed = true
		http.Error(w.ResponseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

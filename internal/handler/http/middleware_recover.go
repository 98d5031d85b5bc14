package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/video-blog/internal/app"
	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
)

// withRecover turns a panic in any later handler into a 500 error envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Any("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

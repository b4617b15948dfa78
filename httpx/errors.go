package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/speech-survey/log"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Detail: detail})
}

// Will log an error, and send an HTTP response with status 500
// and a detail of the form "<prefix>: <err>"
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, prefix string, err error) {
	log.Errorf("%s: %s", code, err)
	writeDetail(w, r, http.StatusInternalServerError, fmt.Sprintf("%s: %s", prefix, err))
}

// Will log a debug message, and send an HTTP response with status 404
func LogNotFound(w http.ResponseWriter, r *http.Request, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	writeDetail(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	writeDetail(w, r, status, errMsg)
}

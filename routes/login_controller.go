package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/speech-survey/accounts"
	"github.com/mbolis/speech-survey/app"
	"github.com/mbolis/speech-survey/httpx"
	"github.com/mbolis/speech-survey/log"
	"github.com/mbolis/speech-survey/model"
)

// Login checks a username/password pair against the account table.
// Nothing is issued on success: the caller only learns whether the pair is valid.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.LoginRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_body", "Invalid request body")
			return
		}

		result := app.Authenticate(req.Username, req.Password)
		if result != accounts.Success {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.InfoLevel, "login.authenticate", "%s", result)
			return
		}

		render.JSON(w, r, model.LoginResponse{
			Message:  result.String(),
			Username: req.Username,
			Status:   0,
		})
	}
}

package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/speech-survey/app"
	"github.com/mbolis/speech-survey/httpx"
	"github.com/mbolis/speech-survey/log"
	"github.com/mbolis/speech-survey/model"
)

func SubmitSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		survey := model.SurveyRequest{}
		err := render.DecodeJSON(r.Body, &survey)
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_body", "Invalid request body")
			return
		}

		uid, err := app.InsertSurvey(r.Context(), survey.Age, survey.Gender, survey.Region)
		if err != nil {
			httpx.LogInternalError(w, r, "db.insert_survey", "Database error", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"uid": uid,
		})
	}
}

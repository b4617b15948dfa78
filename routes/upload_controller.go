package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/hashicorp/go-multierror"
	"github.com/mbolis/speech-survey/app"
	"github.com/mbolis/speech-survey/httpx"
	"github.com/mbolis/speech-survey/log"
	"github.com/mbolis/speech-survey/model"
)

// parts above this size are spooled to temporary files
const maxUploadMemory = 32 << 20

// UploadFile stores the recording first and records its sentence second.
// If the record cannot be written the recording is removed again,
// so a failed upload leaves neither behind.
func UploadFile(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(maxUploadMemory)
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_multipart", "Invalid multipart body")
			return
		}
		defer r.MultipartForm.RemoveAll()

		info, err := model.ParseUploadInfo(r.FormValue("info"))
		switch {
		case errors.Is(err, model.ErrMissingUID):
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.info.uid", "UID is required")
			return
		case err != nil:
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.info", "Invalid info payload: %s", err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.file", "File is required")
			return
		}
		defer file.Close()

		objectName, err := app.StoreBlob(info.UID, header.Filename, file)
		if err != nil {
			httpx.LogInternalError(w, r, "archive.store_blob", "Internal Server Error", err)
			return
		}

		err = app.InsertUpload(r.Context(), info.Text)
		if err != nil {
			if rmErr := app.Remove(info.UID, objectName); rmErr != nil {
				err = multierror.Append(err, rmErr)
			}
			httpx.LogInternalError(w, r, "db.insert_upload", "Internal Server Error", err)
			return
		}

		log.Debugf("upload.stored: %s", app.Path(info.UID, objectName))
		render.JSON(w, r, model.UploadResponse{
			Filename: header.Filename,
			UID:      info.UID,
			Message:  "File uploaded successfully",
		})
	}
}

func ListUploads(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sentences, err := app.ListDistinctSentences(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.list_uploads", "Error retrieving upload list", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"data": sentences,
		})
	}
}

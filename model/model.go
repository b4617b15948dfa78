package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

type SurveyResponse struct {
	UID    string `json:"uid"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Region string `json:"region"`
}

type SurveyRequest struct {
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Region string `json:"region"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Status   int    `json:"status"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
	UID      string `json:"uid"`
	Message  string `json:"message"`
}

// UploadInfo is the JSON document sent in the "info" form field of an upload.
// Text is nil when the client omits it.
type UploadInfo struct {
	UID  string  `json:"uid"`
	Text *string `json:"text"`
}

var (
	ErrMalformedInfo = errors.New("malformed info payload")
	ErrMissingUID    = errors.New("UID is required")
)

func ParseUploadInfo(raw string) (info UploadInfo, err error) {
	if strings.TrimSpace(raw) == "" {
		err = fmt.Errorf("%w: empty", ErrMalformedInfo)
		return
	}
	err = json.Unmarshal([]byte(raw), &info)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrMalformedInfo, err)
		return
	}
	if info.UID == "" {
		err = ErrMissingUID
	}
	return
}

package app

import (
	"github.com/mbolis/speech-survey/accounts"
	"github.com/mbolis/speech-survey/archive"
	"github.com/mbolis/speech-survey/config"
	"github.com/mbolis/speech-survey/database"
)

type App struct {
	*database.Store
	*archive.Archive
	accounts.Table
	config.Config
}

package handlers

import (
	"demoforge/service"
	"demoforge/storage"
)

// @title           DemoForge API
// @version         1.0
// @description     Generate a demo BigQuery dataset and companion AI agent setup from a business scenario description.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

type Handlers struct {
	generator *service.Generator
	history   *storage.HistoryStore
}

func New(generator *service.Generator, history *storage.HistoryStore) *Handlers {
	return &Handlers{
		generator: generator,
		history:   history,
	}
}

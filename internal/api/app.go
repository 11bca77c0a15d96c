package api

import (
	"github.com/sam-roberts/oura-data-visualiser/internal"
	"github.com/sam-roberts/oura-data-visualiser/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Store() storage.Store
}

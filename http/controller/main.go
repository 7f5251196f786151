package controller

import (
	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/ingest"
	"github.com/Jeremi16/synify-be/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Pipeline   *ingest.Pipeline
}

func InitController(cfg *config.Config) *Controller {
	inf := infra.InitInfra(cfg)
	repo := repository.InitRepository(inf)

	return &Controller{
		Config:     cfg,
		Infra:      inf,
		Repository: repo,
		Pipeline:   ingest.NewPipeline(inf, repo),
	}
}

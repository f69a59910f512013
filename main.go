package main

import (
	"context"
	"os"

	customerx "github.com/tanpawarit/telecom-support-agent/agent/customer"
	knowledgex "github.com/tanpawarit/telecom-support-agent/agent/knowledge"
	llmx "github.com/tanpawarit/telecom-support-agent/agent/llm"
	pipelinex "github.com/tanpawarit/telecom-support-agent/agent/pipeline"
	serverx "github.com/tanpawarit/telecom-support-agent/server"

	configx "github.com/tanpawarit/telecom-support-agent/pkg/config"
	logx "github.com/tanpawarit/telecom-support-agent/pkg/logger"
	_ "github.com/tanpawarit/telecom-support-agent/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/telecom-support-agent/pkg/openrouter"
)

func main() {
	logger := logx.Component("main")
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	models, err := llmx.NewRegistry(ctx, *llmCfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build model registry")
		os.Exit(1)
	}

	customerCfg := configx.MustNew[customerx.Config]("CUSTOMER_DB")
	customers, err := customerx.NewPostgresStore(*customerCfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open customer store")
		os.Exit(1)
	}
	defer customers.Close()

	knowledgeCfg := configx.MustNew[knowledgex.Config]("KNOWLEDGE")
	pool, err := knowledgex.Connect(ctx, knowledgeCfg.DatabaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect knowledge database")
		os.Exit(1)
	}

	embedClient := openrouterx.NewClient(openrouterx.Config{
		BaseURL:  llmCfg.BaseURL,
		APIKey:   llmCfg.APIKey,
		SiteURL:  llmCfg.SiteURL,
		SiteName: llmCfg.SiteName,
	})
	embedder := knowledgex.NewOpenAIEmbedder(embedClient, knowledgeCfg.EmbedModel)
	knowledge, err := knowledgex.NewPgvectorStore(pool, embedder)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build knowledge store")
		os.Exit(1)
	}
	defer knowledge.Close()

	pipelineCfg := configx.MustNew[pipelinex.Config]("PIPELINE")
	pipe, err := pipelinex.New(models, customers, knowledge, *pipelineCfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build pipeline")
		os.Exit(1)
	}

	serverCfg := configx.MustNew[serverx.Config]("SERVER")
	srv := serverx.New(pipe, *serverCfg)
	if err := srv.Start(); err != nil {
		logger.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}

package cmd

import (
	"github.com/alexiusacademia/gosite/internal/config"
	"github.com/alexiusacademia/gosite/internal/history"
	"github.com/alexiusacademia/gosite/internal/soil"
)

// loadConfig applies the global flags on top of file and environment settings
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile, config.DefaultEnvFile)
	if err != nil {
		return nil, err
	}
	if historyDir != "" {
		cfg.History.Dir = historyDir
	}
	return cfg, nil
}

func recorder(cfg *config.Config, noHistory bool) *history.Recorder {
	if noHistory {
		return nil
	}
	return cfg.Recorder()
}

func soilModel(cfg *config.Config) (*soil.Model, error) {
	return soil.NewModel(cfg.SoilParams())
}

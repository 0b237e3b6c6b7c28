package main

import (
	"context"

	"github.com/Raab70/dax/pkg/settings"
	"github.com/Raab70/dax/pkg/xnat"
)

// loadSettings reads the settings file named by FSVIEW_SETTINGS (falling
// back to ~/.fsview.yaml) with environment overrides applied.
func loadSettings() (settings.Settings, error) {
	return settings.Load(&settings.RealEnvGetter{}, "")
}

// xnatClient builds an archive client from the configured credentials.
func xnatClient() (*xnat.Client, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return xnat.New(cfg.XnatHost, cfg.XnatUser, cfg.XnatPass, nil)
}

// disconnect drops the server-side XNAT session. Failures are ignored;
// the server expires stale sessions on its own.
func disconnect(ctx context.Context, client *xnat.Client) {
	_ = client.Close(ctx)
}

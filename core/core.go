package core

import (
	"github.com/spf13/afero"
	"go.hacdias.com/redirects/log"
	"go.uber.org/zap"
)

type Core struct {
	cfg *Config
	log *zap.SugaredLogger

	sourceFS *afero.Afero // afero around [Config.SourceDirectory]
}

func NewCore(cfg *Config) *Core {
	return NewCoreFromFs(cfg, afero.NewBasePathFs(afero.NewOsFs(), cfg.SourceDirectory))
}

// NewCoreFromFs creates a [Core] whose source directory is the root of fs.
func NewCoreFromFs(cfg *Config, fs afero.Fs) *Core {
	return &Core{
		cfg:      cfg,
		log:      log.S().Named("core"),
		sourceFS: &afero.Afero{Fs: fs},
	}
}

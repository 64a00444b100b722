package memcache_fx

import (
	"go.uber.org/fx"
	"zfit/internal/models/db_models"
	mem "zfit/pkg/memcache"
)

var Module = fx.Provide(provideProfileCache)

func provideProfileCache() *mem.Store[db_models.Profile] {
	return mem.NewStore[db_models.Profile]()
}

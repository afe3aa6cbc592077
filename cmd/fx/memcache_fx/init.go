package memcache_fx

import (
	"go.uber.org/fx"

	mem "astroportal/pkg/memcache"
)

var Module = fx.Provide(
	provideResetCodeStore)

func provideResetCodeStore() mem.ResetCodeStore {
	return mem.NewResetCodes()
}

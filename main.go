package main

import (
	"context"
	"database/sql"

	"trex/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// main is unused: Nakama loads this module as a plugin via InitModule.
func main() {}

// InitModule proxies Nakama initialization to the nakama adapter package.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

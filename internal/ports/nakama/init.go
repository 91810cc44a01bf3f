package nakama

import (
	"context"
	"database/sql"

	"retroflow/internal/app"
	"retroflow/internal/config"
	"retroflow/internal/ports"
	"retroflow/internal/snapshot"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs, hooks and the board match handler for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	configPath := env[envBoardConfig]
	if configPath == "" {
		configPath = defaultBoardConfigPath
	}
	if err := config.LoadBoardConfig(configPath); err != nil {
		logger.Warn("InitModule: Could not load board config %s, using defaults: %v", configPath, err)
	}
	cfg := config.GetBoardConfig()

	secret := env[envTicketSecret]
	if secret == "" {
		secret = "retroflow-dev-secret"
		logger.Warn("InitModule: %s missing from env, using development secret.", envTicketSecret)
	}
	issuer := env[envTicketIssuer]
	if issuer == "" {
		issuer = defaultTicketIssuer
	}
	tickets := app.NewTicketService(secret, issuer)

	var mirror ports.SnapshotMirrorPort
	if url := env[envRedisURL]; url != "" {
		store, err := snapshot.NewRedisStore(url)
		if err != nil {
			logger.Warn("InitModule: Snapshot mirror disabled: %v", err)
		} else {
			mirror = store
		}
	}

	if err := RegisterRPCs(initializer, newBoardRPC(tickets, mirror)); err != nil {
		return err
	}

	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameRetro, newMatchFactory(matchDeps{
		cfg:     cfg,
		tickets: tickets,
		mirror:  mirror,
	})); err != nil {
		return err
	}

	logger.Info("Retroflow Go module loaded.")
	return nil
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, rpc *boardRPC) error {
	if err := initializer.RegisterRpc(RpcRegisterSession, rpc.registerSession); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcJoinBoard, rpc.joinBoard); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcBoardSnapshot, rpc.boardSnapshot)
}

package nakama

const (
	// RpcRegisterSession stores a new session seed and makes the caller its host.
	RpcRegisterSession = "register_session"

	// RpcJoinBoard resolves an invite code to the session's match and a join ticket.
	RpcJoinBoard = "join_board"

	// RpcBoardSnapshot returns the current board snapshot of a match.
	RpcBoardSnapshot = "board_snapshot"

	// MatchNameRetro is the authoritative match handler name registered with Nakama.
	MatchNameRetro = "retroflow_board"
)

const (
	// Env keys read from the Nakama runtime environment.
	envTicketSecret = "retroflow_ticket_secret"
	envTicketIssuer = "retroflow_ticket_issuer"
	envRedisURL     = "retroflow_redis_url"
	envBoardConfig  = "retroflow_board_config"

	defaultBoardConfigPath = "data/board_config.json"
	defaultTicketIssuer    = "retroflow"

	// Match params and metadata keys.
	paramSeed      = "seed"
	metadataTicket = "ticket"

	// Storage layout of the session directory.
	sessionCollection = "retroflow_sessions"
)

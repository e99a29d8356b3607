// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".heliost"
	LogDir      = "logs"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"
	EnvPrefix             = "HELIOST"

	APIRequestTimeout = 30 * time.Second

	// Solana is the only network selector deploy-token accepts.
	SolanaNetwork = "solana"

	MainnetRPCEndpoint      = "https://api.mainnet-beta.solana.com"
	PumpMetadataEndpoint    = "https://pump.fun/api/ipfs"
	PumpPortalTradeEndpoint = "https://pumpportal.fun/api/trade-local"
	GeneratorEndpoint       = "https://api.heliost.ai/api/generate-token"
	SolscanURL              = "https://solscan.io"
	PumpPool                = "pump"

	DefaultArtworkDir    = "images"
	DefaultArtworkOutput = "output.png"
	ArtworkSize          = 500

	DefaultInitialBuy  = 1.0
	DefaultSlippage    = 10.0
	DefaultPriorityFee = 0.0005
	MaxInitialBuy      = 100.0
	MaxSlippage        = 100.0

	MinPublicKeyLen  = 32
	MaxPublicKeyLen  = 44
	MinPrivateKeyLen = 64
	MaxPrivateKeyLen = 88
)

// Config keys. Each one can also be set through the environment with the
// HELIOST_ prefix, e.g. HELIOST_RPC_ENDPOINT.
const (
	ConfigRPCEndpoint       = "rpc-endpoint"
	ConfigMetadataEndpoint  = "metadata-endpoint"
	ConfigRelayEndpoint     = "relay-endpoint"
	ConfigGeneratorEndpoint = "generator-endpoint"
	ConfigExplorerURL       = "explorer-url"
	ConfigPool              = "pool"
	ConfigRequestTimeout    = "request-timeout"
	ConfigArtworkDir        = "artwork-dir"
)

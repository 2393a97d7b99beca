package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Stage names accepted in the STAGE environment variable.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// Config holds all runtime configuration for the API server.
// The relayer signing key is mandatory: without it no meta-transaction can be
// submitted and the server must refuse to start.
type Config struct {
	Stage       string
	DatabaseURL string

	// Chain access
	RPCURL  string
	ChainID int64

	// Relayer hot wallet (hex private key, 0x-prefixed)
	RelayerPrivateKey string

	// Contract addresses
	PaymentsContract string
	CreditsContract  string
	RegistryContract string
	MulticallContract string

	// Receipt confirmation bound. The relay blocks until a receipt is found
	// or this deadline elapses.
	ReceiptTimeout time.Duration

	// Notifications (optional; reminders are skipped when the key is empty)
	ResendAPIKey string
	FromEmail    string
	FromName     string
	BaseURL      string
}

// IsValidStage reports whether the given stage name is recognized.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}

// Load reads configuration from the environment. Missing required values
// produce an error; the caller decides whether that is fatal.
func Load() (*Config, error) {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = StageLocal
	}
	if !IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s", stage, StageProd, StageDev, StageLocal)
	}

	cfg := &Config{
		Stage:             stage,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RPCURL:            os.Getenv("RPC_URL"),
		RelayerPrivateKey: os.Getenv("RELAYER_PRIVATE_KEY"),
		PaymentsContract:  os.Getenv("PAYMENTS_CONTRACT_ADDRESS"),
		CreditsContract:   os.Getenv("CREDITS_CONTRACT_ADDRESS"),
		RegistryContract:  os.Getenv("REGISTRY_CONTRACT_ADDRESS"),
		MulticallContract: os.Getenv("MULTICALL_CONTRACT_ADDRESS"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		FromEmail:         getEnvWithDefault("EMAIL_FROM_ADDRESS", "noreply@splithub.xyz"),
		FromName:          getEnvWithDefault("EMAIL_FROM_NAME", "SplitHub"),
		BaseURL:           getEnvWithDefault("BASE_URL", "http://localhost:3000"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC_URL is required")
	}
	if cfg.RelayerPrivateKey == "" {
		return nil, fmt.Errorf("RELAYER_PRIVATE_KEY is required: the relayer cannot submit transactions without a signing key")
	}
	if !IsPrivateKeyValid(cfg.RelayerPrivateKey) {
		return nil, fmt.Errorf("RELAYER_PRIVATE_KEY is not a valid private key")
	}

	chainIDStr := os.Getenv("CHAIN_ID")
	if chainIDStr == "" {
		return nil, fmt.Errorf("CHAIN_ID is required")
	}
	chainID, err := strconv.ParseInt(chainIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAIN_ID %q: %w", chainIDStr, err)
	}
	cfg.ChainID = chainID

	for name, addr := range map[string]string{
		"PAYMENTS_CONTRACT_ADDRESS": cfg.PaymentsContract,
		"CREDITS_CONTRACT_ADDRESS":  cfg.CreditsContract,
		"REGISTRY_CONTRACT_ADDRESS": cfg.RegistryContract,
	} {
		if addr == "" {
			return nil, fmt.Errorf("%s is required", name)
		}
		if !IsAddressValid(addr) {
			return nil, fmt.Errorf("%s is not a valid address", name)
		}
	}

	// Multicall3 is deployed at the same address on every supported network.
	if cfg.MulticallContract == "" {
		cfg.MulticallContract = "0xcA11bde05977b3631167028862bE2a173976CA11"
	}
	if !IsAddressValid(cfg.MulticallContract) {
		return nil, fmt.Errorf("MULTICALL_CONTRACT_ADDRESS is not a valid address")
	}

	cfg.ReceiptTimeout = 2 * time.Minute
	if v := os.Getenv("RECEIPT_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid RECEIPT_TIMEOUT_SECONDS %q", v)
		}
		cfg.ReceiptTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

// IsAddressValid checks if the provided string is a valid Ethereum address.
// It verifies:
// 1. The address is exactly 42 characters long
// 2. The address starts with "0x"
// 3. The remaining 40 characters are valid hexadecimal
func IsAddressValid(address string) bool {
	if len(address) != 42 {
		return false
	}
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	for _, c := range address[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// IsPrivateKeyValid checks if the provided string is a valid Ethereum private key.
// It verifies:
// 1. The key is exactly 66 characters long (including 0x prefix)
// 2. The key starts with "0x"
// 3. The remaining 64 characters are valid hexadecimal
func IsPrivateKeyValid(key string) bool {
	if len(key) != 66 {
		return false
	}
	if !strings.HasPrefix(key, "0x") {
		return false
	}
	for _, c := range key[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

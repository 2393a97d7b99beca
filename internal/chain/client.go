// Package chain wraps all EVM access: the shared RPC client, the on-chain
// nonce and registry reads, and the relayer that signs and submits
// meta-transactions on behalf of end users.
package chain

import (
	"context"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client is a thin wrapper around ethclient bound to a single network.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
	logger  *zap.Logger
}

// Dial connects to the RPC endpoint and verifies it serves the expected
// chain. A mismatch is a configuration error: signatures are domain-bound to
// the chain id, so submitting to the wrong network can never succeed.
func Dial(ctx context.Context, rpcURL string, chainID int64, logger *zap.Logger) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RPC")
	}

	remote, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, errors.Wrap(err, "failed to query chain id")
	}
	if remote.Int64() != chainID {
		eth.Close()
		return nil, errors.Errorf("RPC chain id mismatch: configured %d, endpoint reports %s", chainID, remote)
	}

	logger.Info("Connected to network RPC",
		zap.String("rpc_url", rpcURL),
		zap.Int64("chain_id", chainID),
	)

	return &Client{
		eth:     eth,
		chainID: big.NewInt(chainID),
		logger:  logger,
	}, nil
}

// ChainID returns the chain id the client is bound to.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Call performs a read-only eth_call against the given contract.
func (c *Client) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{To: &to, Data: data}
	out, err := c.eth.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "contract call failed")
	}
	return out, nil
}

// WaitForReceipt polls until the transaction is mined or ctx expires.
// Receipt lookups race block propagation, so not-found results are retried
// with exponential backoff.
func (c *Client) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = 0 // bounded by ctx, not by the policy

	var receipt *types.Receipt
	operation := func() error {
		r, err := c.eth.TransactionReceipt(ctx, txHash)
		if err != nil {
			return err // retried: the tx may not be mined yet
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, errors.Wrapf(err, "timed out waiting for receipt of %s", txHash.Hex())
	}
	return receipt, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
	c.logger.Info("Closed RPC connection", zap.String("chain_id", c.chainID.String()))
}

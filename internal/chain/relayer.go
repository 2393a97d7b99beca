package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Relayer signs and submits transactions from the service hot wallet so end
// users never spend gas. All submissions go through a single mutex: two
// concurrent sends would otherwise race for the same account nonce and one
// would be dropped by the mempool.
type Relayer struct {
	client         *Client
	key            *ecdsa.PrivateKey
	address        common.Address
	receiptTimeout time.Duration
	logger         *zap.Logger

	mu sync.Mutex
}

// SubmitResult describes a mined relay transaction.
type SubmitResult struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// NewRelayer derives the hot wallet from the configured private key.
func NewRelayer(client *Client, privateKeyHex string, receiptTimeout time.Duration, logger *zap.Logger) (*Relayer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid relayer private key")
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	logger.Info("Relayer hot wallet loaded", zap.String("address", address.Hex()))

	return &Relayer{
		client:         client,
		key:            key,
		address:        address,
		receiptTimeout: receiptTimeout,
		logger:         logger,
	}, nil
}

// Address returns the hot wallet address paying for gas.
func (r *Relayer) Address() common.Address {
	return r.address
}

// Submit sends calldata to the target contract and waits for the receipt.
// The gas estimate doubles as a dry run: a call that would revert fails here
// with the contract's reason before any gas is spent.
func (r *Relayer) Submit(ctx context.Context, to common.Address, callData []byte) (*SubmitResult, error) {
	r.mu.Lock()
	signedTx, err := r.signNext(ctx, to, callData)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	err = r.client.eth.SendTransaction(ctx, signedTx)
	r.mu.Unlock()
	if err != nil {
		return nil, TranslateRevert(err)
	}

	txHash := signedTx.Hash()
	r.logger.Info("Relay transaction submitted",
		zap.String("tx_hash", txHash.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("account_nonce", signedTx.Nonce()),
	)

	waitCtx, cancel := context.WithTimeout(ctx, r.receiptTimeout)
	defer cancel()

	receipt, err := r.client.WaitForReceipt(waitCtx, txHash)
	if err != nil {
		return nil, errors.Wrapf(err, "transaction %s not confirmed", txHash.Hex())
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, r.diagnoseRevert(ctx, to, callData, receipt)
	}

	r.logger.Info("Relay transaction confirmed",
		zap.String("tx_hash", txHash.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
		zap.Uint64("gas_used", receipt.GasUsed),
	)
	return &SubmitResult{
		TxHash:      txHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// signNext builds and signs a dynamic-fee transaction at the wallet's next
// pending nonce. Caller must hold r.mu.
func (r *Relayer) signNext(ctx context.Context, to common.Address, callData []byte) (*types.Transaction, error) {
	nonce, err := r.client.eth.PendingNonceAt(ctx, r.address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch relayer account nonce")
	}

	gasLimit, err := r.client.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: r.address,
		To:   &to,
		Data: callData,
	})
	if err != nil {
		return nil, TranslateRevert(err)
	}
	// Headroom against state drift between estimate and inclusion.
	gasLimit = gasLimit * 120 / 100

	tipCap, err := r.client.eth.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch gas tip cap")
	}
	head, err := r.client.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch chain head")
	}
	feeCap := new(big.Int).Add(
		new(big.Int).Mul(head.BaseFee, big.NewInt(2)),
		tipCap,
	)

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   r.client.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &to,
		Data:      callData,
	})
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(r.client.chainID), r.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}
	return signedTx, nil
}

// diagnoseRevert re-simulates a failed transaction at its mined block so the
// contract's revert reason can be surfaced. A receipt alone carries no reason.
func (r *Relayer) diagnoseRevert(ctx context.Context, to common.Address, callData []byte, receipt *types.Receipt) error {
	msg := ethereum.CallMsg{
		From: r.address,
		To:   &to,
		Data: callData,
	}
	_, callErr := r.client.eth.CallContract(ctx, msg, receipt.BlockNumber)
	if callErr != nil {
		relayErr := TranslateRevert(callErr)
		r.logger.Error("Relay transaction reverted",
			zap.String("tx_hash", receipt.TxHash.Hex()),
			zap.String("reason", relayErr.Reason),
			zap.Error(callErr),
		)
		return relayErr
	}
	r.logger.Error("Relay transaction reverted without a recoverable reason",
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	return &RelayError{Reason: ReasonUnknownRevert}
}

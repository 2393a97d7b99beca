package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/chain"
	"github.com/0xgeorgemathew/splithub-sub001/internal/typeddata"
)

// TxSubmitter signs and submits relay transactions from the hot wallet.
type TxSubmitter interface {
	Submit(ctx context.Context, to common.Address, callData []byte) (*chain.SubmitResult, error)
	Address() common.Address
}

// NonceReader reads a payer's replay nonce from the payments contract.
type NonceReader interface {
	NonceFor(ctx context.Context, payer common.Address) (*big.Int, error)
}

// ChipResolver maps a chip address to the wallet that registered it.
type ChipResolver interface {
	OwnerOf(ctx context.Context, chip common.Address) (common.Address, error)
}

// RelayService verifies signed authorizations off-chain and forwards the
// valid ones on-chain through the hot wallet. Every check the contract makes
// is made here first, so a doomed transaction never costs the relayer gas.
type RelayService struct {
	submitter TxSubmitter
	nonces    NonceReader
	resolver  ChipResolver
	circles   *CircleService
	requests  *PaymentRequestService

	paymentsDomain typeddata.Domain
	creditsDomain  typeddata.Domain
	registryDomain typeddata.Domain
	payments       common.Address
	credits        common.Address
	registry       common.Address
	multicall      common.Address

	logger *zap.Logger
}

// RelayConfig binds the relay service to its deployed contracts.
type RelayConfig struct {
	ChainID   int64
	Payments  common.Address
	Credits   common.Address
	Registry  common.Address
	Multicall common.Address
}

func NewRelayService(
	submitter TxSubmitter,
	nonces NonceReader,
	resolver ChipResolver,
	circles *CircleService,
	requests *PaymentRequestService,
	cfg RelayConfig,
	logger *zap.Logger,
) *RelayService {
	return &RelayService{
		submitter:      submitter,
		nonces:         nonces,
		resolver:       resolver,
		circles:        circles,
		requests:       requests,
		paymentsDomain: typeddata.NewDomain(cfg.ChainID, cfg.Payments),
		creditsDomain:  typeddata.NewDomain(cfg.ChainID, cfg.Credits),
		registryDomain: typeddata.NewDomain(cfg.ChainID, cfg.Registry),
		payments:       cfg.Payments,
		credits:        cfg.Credits,
		registry:       cfg.Registry,
		multicall:      cfg.Multicall,
		logger:         logger,
	}
}

// SignedPaymentAuth pairs an authorization with its chip signature.
type SignedPaymentAuth struct {
	Auth      typeddata.PaymentAuth
	Signature []byte
}

// PaymentRelayResult is the outcome of a confirmed relay, including any
// circle split it triggered.
type PaymentRelayResult struct {
	TxHash          string
	BlockNumber     uint64
	GasUsed         uint64
	Split           *SplitResult
	RequestsSettled int64
}

// RelayPayment verifies and submits a single signed payment.
func (s *RelayService) RelayPayment(ctx context.Context, signed SignedPaymentAuth) (*PaymentRelayResult, error) {
	if err := s.verifyPaymentAuth(ctx, signed); err != nil {
		return nil, err
	}

	callData, err := chain.EncodeExecutePayment(signed.Auth, signed.Signature)
	if err != nil {
		return nil, err
	}
	submitted, err := s.submitter.Submit(ctx, s.payments, callData)
	if err != nil {
		return nil, err
	}

	result := &PaymentRelayResult{
		TxHash:      submitted.TxHash.Hex(),
		BlockNumber: submitted.BlockNumber,
		GasUsed:     submitted.GasUsed,
	}
	s.afterPayment(ctx, signed.Auth, result)
	return result, nil
}

// RelayBatchPayment settles several signed payments in one atomic Multicall3
// transaction. Either every payment lands or none do.
func (s *RelayService) RelayBatchPayment(ctx context.Context, batch []SignedPaymentAuth) (*PaymentRelayResult, error) {
	if len(batch) == 0 {
		return nil, chain.NewRelayError("batch must contain at least one payment", nil)
	}

	// Payers appearing more than once must present consecutive nonces, in
	// batch order, starting from the on-chain value.
	expected := make(map[common.Address]*big.Int, len(batch))
	for i, signed := range batch {
		next, tracked := expected[signed.Auth.Payer]
		if err := s.verifyPaymentAuthAt(ctx, signed, next); err != nil {
			return nil, errors.Wrapf(err, "batch entry %d", i)
		}
		if !tracked {
			next = new(big.Int).Set(signed.Auth.Nonce)
		}
		expected[signed.Auth.Payer] = next.Add(next, big.NewInt(1))
	}

	calls := make([]chain.Call3, 0, len(batch))
	for i, signed := range batch {
		callData, err := chain.EncodeExecutePayment(signed.Auth, signed.Signature)
		if err != nil {
			return nil, errors.Wrapf(err, "batch entry %d", i)
		}
		calls = append(calls, chain.Call3{
			Target:       s.payments,
			AllowFailure: false,
			CallData:     callData,
		})
	}
	callData, err := chain.EncodeAggregate3(calls)
	if err != nil {
		return nil, err
	}

	submitted, err := s.submitter.Submit(ctx, s.multicall, callData)
	if err != nil {
		return nil, err
	}

	result := &PaymentRelayResult{
		TxHash:      submitted.TxHash.Hex(),
		BlockNumber: submitted.BlockNumber,
		GasUsed:     submitted.GasUsed,
	}
	for _, signed := range batch {
		s.afterPayment(ctx, signed.Auth, result)
	}
	return result, nil
}

// RelayCreditPurchase verifies and submits a signed credit purchase. The
// purchase is recorded as a circle expense but never bills circle members.
func (s *RelayService) RelayCreditPurchase(ctx context.Context, purchase typeddata.CreditPurchase, signature []byte) (*PaymentRelayResult, error) {
	if err := s.checkDeadline(purchase.Deadline); err != nil {
		return nil, err
	}
	if err := s.verifySigner(ctx, s.creditsDomain, purchase, signature, purchase.Buyer); err != nil {
		return nil, err
	}
	if err := s.checkNonce(ctx, purchase.Buyer, purchase.Nonce); err != nil {
		return nil, err
	}

	callData, err := chain.EncodePurchaseCredits(purchase, signature)
	if err != nil {
		return nil, err
	}
	submitted, err := s.submitter.Submit(ctx, s.credits, callData)
	if err != nil {
		return nil, err
	}

	result := &PaymentRelayResult{
		TxHash:      submitted.TxHash.Hex(),
		BlockNumber: submitted.BlockNumber,
		GasUsed:     submitted.GasUsed,
	}
	if s.circles != nil {
		split, splitErr := s.circles.ApplySplit(ctx, SplitParams{
			PayerWallet:    purchase.Buyer.Hex(),
			TokenAddress:   "",
			Amount:         purchase.USDCAmount.String(),
			Memo:           "Credit purchase",
			CreateRequests: false,
		})
		if splitErr != nil {
			s.logger.Error("Circle split failed after credit purchase",
				zap.String("tx_hash", result.TxHash),
				zap.Error(splitErr),
			)
		} else {
			result.Split = split
		}
	}
	return result, nil
}

// RelayCreditSpend verifies and submits a signed credit spend. Spends are
// group activity and do bill circle members.
func (s *RelayService) RelayCreditSpend(ctx context.Context, spend typeddata.CreditSpend, signature []byte) (*PaymentRelayResult, error) {
	if err := s.checkDeadline(spend.Deadline); err != nil {
		return nil, err
	}
	if err := s.verifySigner(ctx, s.creditsDomain, spend, signature, spend.Spender); err != nil {
		return nil, err
	}
	if err := s.checkNonce(ctx, spend.Spender, spend.Nonce); err != nil {
		return nil, err
	}

	callData, err := chain.EncodeSpendCredits(spend, signature)
	if err != nil {
		return nil, err
	}
	submitted, err := s.submitter.Submit(ctx, s.credits, callData)
	if err != nil {
		return nil, err
	}

	result := &PaymentRelayResult{
		TxHash:      submitted.TxHash.Hex(),
		BlockNumber: submitted.BlockNumber,
		GasUsed:     submitted.GasUsed,
	}
	if s.circles != nil {
		split, splitErr := s.circles.ApplySplit(ctx, SplitParams{
			PayerWallet:    spend.Spender.Hex(),
			TokenAddress:   "",
			Amount:         spend.Amount.String(),
			Memo:           fmt.Sprintf("Credit spend on activity %s", spend.ActivityID),
			CreateRequests: true,
		})
		if splitErr != nil {
			s.logger.Error("Circle split failed after credit spend",
				zap.String("tx_hash", result.TxHash),
				zap.Error(splitErr),
			)
		} else {
			result.Split = split
		}
	}
	return result, nil
}

// RegisterChip binds a chip to its owner wallet on the registry. The chip
// itself signs the binding, proving physical possession.
func (s *RelayService) RegisterChip(ctx context.Context, reg typeddata.ChipRegistration, signature []byte) (*PaymentRelayResult, error) {
	digest, err := typeddata.Digest(s.registryDomain, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to compute registration digest: %w", err)
	}
	signer, err := typeddata.RecoverSigner(digest, signature)
	if err != nil {
		return nil, chain.NewRelayError(chain.ReasonInvalidSignature, err)
	}
	if signer != reg.ChipAddress {
		return nil, chain.NewRelayError(chain.ReasonInvalidSignature,
			errors.Errorf("registration must be signed by the chip, got %s", signer.Hex()))
	}

	callData, err := chain.EncodeRegisterChip(reg, signature)
	if err != nil {
		return nil, err
	}
	submitted, err := s.submitter.Submit(ctx, s.registry, callData)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Chip registered",
		zap.String("chip_address", reg.ChipAddress.Hex()),
		zap.String("owner_wallet", reg.Owner.Hex()),
		zap.String("tx_hash", submitted.TxHash.Hex()),
	)
	return &PaymentRelayResult{
		TxHash:      submitted.TxHash.Hex(),
		BlockNumber: submitted.BlockNumber,
		GasUsed:     submitted.GasUsed,
	}, nil
}

// ResolveChip returns the wallet that owns a chip.
func (s *RelayService) ResolveChip(ctx context.Context, chip common.Address) (common.Address, error) {
	return s.resolver.OwnerOf(ctx, chip)
}

// NonceOf returns the next expected replay nonce for a payer wallet.
func (s *RelayService) NonceOf(ctx context.Context, payer common.Address) (*big.Int, error) {
	return s.nonces.NonceFor(ctx, payer)
}

// RelayerAddress returns the hot wallet address.
func (s *RelayService) RelayerAddress() common.Address {
	return s.submitter.Address()
}

func (s *RelayService) verifyPaymentAuth(ctx context.Context, signed SignedPaymentAuth) error {
	return s.verifyPaymentAuthAt(ctx, signed, nil)
}

// verifyPaymentAuthAt runs the full preflight. expectedNonce overrides the
// on-chain read for later entries of a batch; nil means read from the chain.
func (s *RelayService) verifyPaymentAuthAt(ctx context.Context, signed SignedPaymentAuth, expectedNonce *big.Int) error {
	auth := signed.Auth
	if typeddata.IsDiscoveryPlaceholder(auth.Payer) {
		return chain.NewRelayError(
			"discovery authorization cannot be relayed: resolve the chip owner and sign a real payment", nil)
	}
	if auth.Amount == nil || auth.Amount.Sign() <= 0 {
		return chain.NewRelayError("payment amount must be positive", nil)
	}
	if err := s.checkDeadline(auth.Deadline); err != nil {
		return err
	}
	if err := s.verifySigner(ctx, s.paymentsDomain, auth, signed.Signature, auth.Payer); err != nil {
		return err
	}
	if expectedNonce != nil {
		if auth.Nonce == nil || auth.Nonce.Cmp(expectedNonce) != 0 {
			return chain.NewRelayError(chain.ReasonInvalidNonce, nil)
		}
		return nil
	}
	return s.checkNonce(ctx, auth.Payer, auth.Nonce)
}

// verifySigner recovers the signer of the struct and accepts either the
// wallet itself or a chip the registry binds to that wallet.
func (s *RelayService) verifySigner(ctx context.Context, domain typeddata.Domain, payload typeddata.Signable, signature []byte, wallet common.Address) error {
	digest, err := typeddata.Digest(domain, payload)
	if err != nil {
		return fmt.Errorf("failed to compute digest: %w", err)
	}
	signer, err := typeddata.RecoverSigner(digest, signature)
	if err != nil {
		return chain.NewRelayError(chain.ReasonInvalidSignature, err)
	}
	if signer == wallet {
		return nil
	}

	owner, err := s.resolver.OwnerOf(ctx, signer)
	if err != nil {
		if errors.Is(err, chain.ErrChipNotRegistered) {
			return chain.NewRelayError(chain.ReasonUnauthorizedSigner, err)
		}
		return fmt.Errorf("failed to resolve signing chip: %w", err)
	}
	if owner != wallet {
		return chain.NewRelayError(chain.ReasonUnauthorizedSigner,
			errors.Errorf("chip %s belongs to %s, not %s", signer.Hex(), owner.Hex(), wallet.Hex()))
	}
	return nil
}

func (s *RelayService) checkDeadline(deadline *big.Int) error {
	if deadline == nil || deadline.Cmp(big.NewInt(time.Now().Unix())) < 0 {
		return chain.NewRelayError(chain.ReasonExpiredSignature, nil)
	}
	return nil
}

func (s *RelayService) checkNonce(ctx context.Context, payer common.Address, nonce *big.Int) error {
	onChain, err := s.nonces.NonceFor(ctx, payer)
	if err != nil {
		return fmt.Errorf("failed to read payer nonce: %w", err)
	}
	if nonce == nil || nonce.Cmp(onChain) != 0 {
		return chain.NewRelayError(chain.ReasonInvalidNonce,
			errors.Errorf("expected nonce %s", onChain))
	}
	return nil
}

// afterPayment settles matching payment requests and applies the payer's
// circle split. Neither failure voids the confirmed payment; both are logged
// and the relay result is returned regardless.
func (s *RelayService) afterPayment(ctx context.Context, auth typeddata.PaymentAuth, result *PaymentRelayResult) {
	if s.requests != nil {
		settled, err := s.requests.SettleMatching(ctx,
			auth.Payer.Hex(), auth.Recipient.Hex(), auth.Amount.String(), result.TxHash)
		if err != nil {
			s.logger.Error("Failed to settle payment requests after relay",
				zap.String("tx_hash", result.TxHash),
				zap.Error(err),
			)
		} else {
			result.RequestsSettled += settled
		}
	}

	if s.circles != nil {
		split, err := s.circles.ApplySplit(ctx, SplitParams{
			PayerWallet:    auth.Payer.Hex(),
			TokenAddress:   auth.Token.Hex(),
			Amount:         auth.Amount.String(),
			Memo:           fmt.Sprintf("Payment to %s", auth.Recipient.Hex()),
			CreateRequests: true,
		})
		if err != nil {
			s.logger.Error("Circle split failed after payment",
				zap.String("tx_hash", result.TxHash),
				zap.Error(err),
			)
			return
		}
		if split != nil {
			result.Split = split
		}
	}
}

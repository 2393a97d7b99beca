package services

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/chain"
	"github.com/0xgeorgemathew/splithub-sub001/internal/mocks"
	"github.com/0xgeorgemathew/splithub-sub001/internal/typeddata"
)

var testRelayConfig = RelayConfig{
	ChainID:   84532,
	Payments:  common.HexToAddress("0x00000000000000000000000000000000000000A1"),
	Credits:   common.HexToAddress("0x00000000000000000000000000000000000000A2"),
	Registry:  common.HexToAddress("0x00000000000000000000000000000000000000A3"),
	Multicall: common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11"),
}

type relayMocks struct {
	submitter *mocks.MockTxSubmitter
	nonces    *mocks.MockNonceReader
	resolver  *mocks.MockChipResolver
}

func newTestRelayService(t *testing.T) (*RelayService, relayMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := relayMocks{
		submitter: mocks.NewMockTxSubmitter(ctrl),
		nonces:    mocks.NewMockNonceReader(ctrl),
		resolver:  mocks.NewMockChipResolver(ctrl),
	}
	svc := NewRelayService(m.submitter, m.nonces, m.resolver, nil, nil, testRelayConfig, zap.NewNop())
	return svc, m
}

func signPayload(t *testing.T, key *ecdsa.PrivateKey, domain typeddata.Domain, payload typeddata.Signable) []byte {
	t.Helper()
	digest, err := typeddata.Digest(domain, payload)
	require.NoError(t, err)
	sig, err := crypto.Sign(digest.Bytes(), key)
	require.NoError(t, err)
	return sig
}

func futureDeadline() *big.Int {
	return big.NewInt(time.Now().Add(10 * time.Minute).Unix())
}

func testAuth(payer common.Address, nonce int64) typeddata.PaymentAuth {
	return typeddata.PaymentAuth{
		Payer:     payer,
		Recipient: common.HexToAddress("0x00000000000000000000000000000000000000B1"),
		Token:     common.HexToAddress("0x00000000000000000000000000000000000000C1"),
		Amount:    big.NewInt(90_000_000),
		Nonce:     big.NewInt(nonce),
		Deadline:  futureDeadline(),
	}
}

func TestRelayPaymentChipSigned(t *testing.T) {
	svc, m := newTestRelayService(t)

	chipKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	chipAddr := crypto.PubkeyToAddress(chipKey.PublicKey)
	payer := common.HexToAddress("0x1000000000000000000000000000000000000001")

	auth := testAuth(payer, 4)
	sig := signPayload(t, chipKey, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments), auth)

	m.resolver.EXPECT().OwnerOf(gomock.Any(), chipAddr).Return(payer, nil)
	m.nonces.EXPECT().NonceFor(gomock.Any(), payer).Return(big.NewInt(4), nil)
	m.submitter.EXPECT().
		Submit(gomock.Any(), testRelayConfig.Payments, gomock.Any()).
		Return(&chain.SubmitResult{
			TxHash:      common.HexToHash("0xdead"),
			BlockNumber: 1200,
			GasUsed:     90_000,
		}, nil)

	result, err := svc.RelayPayment(context.Background(), SignedPaymentAuth{Auth: auth, Signature: sig})
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0xdead").Hex(), result.TxHash)
	assert.Equal(t, uint64(1200), result.BlockNumber)
	assert.Nil(t, result.Split)
}

func TestRelayPaymentWalletSigned(t *testing.T) {
	svc, m := newTestRelayService(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	payer := crypto.PubkeyToAddress(key.PublicKey)

	auth := testAuth(payer, 0)
	sig := signPayload(t, key, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments), auth)

	// Wallet-signed: the registry is never consulted.
	m.nonces.EXPECT().NonceFor(gomock.Any(), payer).Return(big.NewInt(0), nil)
	m.submitter.EXPECT().
		Submit(gomock.Any(), testRelayConfig.Payments, gomock.Any()).
		Return(&chain.SubmitResult{TxHash: common.HexToHash("0x01")}, nil)

	_, err = svc.RelayPayment(context.Background(), SignedPaymentAuth{Auth: auth, Signature: sig})
	require.NoError(t, err)
}

func TestRelayPaymentRejectsDiscoveryPlaceholder(t *testing.T) {
	svc, _ := newTestRelayService(t)

	auth := typeddata.DiscoveryPaymentAuth()
	_, err := svc.RelayPayment(context.Background(), SignedPaymentAuth{
		Auth:      auth,
		Signature: make([]byte, 65),
	})
	require.Error(t, err)
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Contains(t, relayErr.Reason, "discovery")
}

func TestRelayPaymentRejectsExpiredDeadline(t *testing.T) {
	svc, _ := newTestRelayService(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	payer := crypto.PubkeyToAddress(key.PublicKey)

	auth := testAuth(payer, 0)
	auth.Deadline = big.NewInt(time.Now().Add(-time.Minute).Unix())
	sig := signPayload(t, key, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments), auth)

	_, err = svc.RelayPayment(context.Background(), SignedPaymentAuth{Auth: auth, Signature: sig})
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, chain.ReasonExpiredSignature, relayErr.Reason)
}

func TestRelayPaymentRejectsNonceMismatch(t *testing.T) {
	svc, m := newTestRelayService(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	payer := crypto.PubkeyToAddress(key.PublicKey)

	auth := testAuth(payer, 3)
	sig := signPayload(t, key, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments), auth)

	m.nonces.EXPECT().NonceFor(gomock.Any(), payer).Return(big.NewInt(5), nil)

	_, err = svc.RelayPayment(context.Background(), SignedPaymentAuth{Auth: auth, Signature: sig})
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, chain.ReasonInvalidNonce, relayErr.Reason)
}

func TestRelayPaymentRejectsUnregisteredChip(t *testing.T) {
	svc, m := newTestRelayService(t)

	chipKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	chipAddr := crypto.PubkeyToAddress(chipKey.PublicKey)
	payer := common.HexToAddress("0x1000000000000000000000000000000000000001")

	auth := testAuth(payer, 0)
	sig := signPayload(t, chipKey, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments), auth)

	m.resolver.EXPECT().OwnerOf(gomock.Any(), chipAddr).Return(common.Address{}, chain.ErrChipNotRegistered)

	_, err = svc.RelayPayment(context.Background(), SignedPaymentAuth{Auth: auth, Signature: sig})
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, chain.ReasonUnauthorizedSigner, relayErr.Reason)
}

func TestRelayPaymentRejectsChipOfAnotherWallet(t *testing.T) {
	svc, m := newTestRelayService(t)

	chipKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	chipAddr := crypto.PubkeyToAddress(chipKey.PublicKey)
	payer := common.HexToAddress("0x1000000000000000000000000000000000000001")
	otherOwner := common.HexToAddress("0x2000000000000000000000000000000000000002")

	auth := testAuth(payer, 0)
	sig := signPayload(t, chipKey, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments), auth)

	m.resolver.EXPECT().OwnerOf(gomock.Any(), chipAddr).Return(otherOwner, nil)

	_, err = svc.RelayPayment(context.Background(), SignedPaymentAuth{Auth: auth, Signature: sig})
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, chain.ReasonUnauthorizedSigner, relayErr.Reason)
}

func TestRelayBatchPaymentSequentialNonces(t *testing.T) {
	svc, m := newTestRelayService(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	payer := crypto.PubkeyToAddress(key.PublicKey)
	domain := typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments)

	first := testAuth(payer, 7)
	second := testAuth(payer, 8)
	batch := []SignedPaymentAuth{
		{Auth: first, Signature: signPayload(t, key, domain, first)},
		{Auth: second, Signature: signPayload(t, key, domain, second)},
	}

	// Only the first entry reads the chain; the second is checked against
	// the tracked successor nonce.
	m.nonces.EXPECT().NonceFor(gomock.Any(), payer).Return(big.NewInt(7), nil).Times(1)
	m.submitter.EXPECT().
		Submit(gomock.Any(), testRelayConfig.Multicall, gomock.Any()).
		Return(&chain.SubmitResult{TxHash: common.HexToHash("0x02")}, nil)

	_, err = svc.RelayBatchPayment(context.Background(), batch)
	require.NoError(t, err)
}

func TestRelayBatchPaymentRejectsNonceGap(t *testing.T) {
	svc, m := newTestRelayService(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	payer := crypto.PubkeyToAddress(key.PublicKey)
	domain := typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Payments)

	first := testAuth(payer, 7)
	third := testAuth(payer, 9)
	batch := []SignedPaymentAuth{
		{Auth: first, Signature: signPayload(t, key, domain, first)},
		{Auth: third, Signature: signPayload(t, key, domain, third)},
	}

	m.nonces.EXPECT().NonceFor(gomock.Any(), payer).Return(big.NewInt(7), nil).Times(1)

	_, err = svc.RelayBatchPayment(context.Background(), batch)
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, chain.ReasonInvalidNonce, relayErr.Reason)
}

func TestRelayBatchPaymentRejectsEmptyBatch(t *testing.T) {
	svc, _ := newTestRelayService(t)
	_, err := svc.RelayBatchPayment(context.Background(), nil)
	assert.Error(t, err)
}

func TestRelayCreditPurchase(t *testing.T) {
	svc, m := newTestRelayService(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	buyer := crypto.PubkeyToAddress(key.PublicKey)

	purchase := typeddata.CreditPurchase{
		Buyer:      buyer,
		USDCAmount: big.NewInt(50_000_000),
		Nonce:      big.NewInt(2),
		Deadline:   futureDeadline(),
	}
	sig := signPayload(t, key, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Credits), purchase)

	m.nonces.EXPECT().NonceFor(gomock.Any(), buyer).Return(big.NewInt(2), nil)
	m.submitter.EXPECT().
		Submit(gomock.Any(), testRelayConfig.Credits, gomock.Any()).
		Return(&chain.SubmitResult{TxHash: common.HexToHash("0x03")}, nil)

	result, err := svc.RelayCreditPurchase(context.Background(), purchase, sig)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0x03").Hex(), result.TxHash)
}

func TestRegisterChipRequiresChipSignature(t *testing.T) {
	svc, _ := newTestRelayService(t)

	ownerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	chipKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	reg := typeddata.ChipRegistration{
		Owner:       crypto.PubkeyToAddress(ownerKey.PublicKey),
		ChipAddress: crypto.PubkeyToAddress(chipKey.PublicKey),
	}
	// Signed by the owner instead of the chip: possession is not proven.
	sig := signPayload(t, ownerKey, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Registry), reg)

	_, err = svc.RegisterChip(context.Background(), reg, sig)
	var relayErr *chain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, chain.ReasonInvalidSignature, relayErr.Reason)
}

func TestRegisterChip(t *testing.T) {
	svc, m := newTestRelayService(t)

	ownerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	chipKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	reg := typeddata.ChipRegistration{
		Owner:       crypto.PubkeyToAddress(ownerKey.PublicKey),
		ChipAddress: crypto.PubkeyToAddress(chipKey.PublicKey),
	}
	sig := signPayload(t, chipKey, typeddata.NewDomain(testRelayConfig.ChainID, testRelayConfig.Registry), reg)

	m.submitter.EXPECT().
		Submit(gomock.Any(), testRelayConfig.Registry, gomock.Any()).
		Return(&chain.SubmitResult{TxHash: common.HexToHash("0x04")}, nil)

	result, err := svc.RegisterChip(context.Background(), reg, sig)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0x04").Hex(), result.TxHash)
}

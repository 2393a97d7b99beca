package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/0xgeorgemathew/splithub-sub001/internal/typeddata"
)

// Tuple layouts mirror the contract struct definitions. The abi package
// matches fields positionally, so order here is load-bearing.
type paymentAuthTuple struct {
	Payer     common.Address
	Recipient common.Address
	Token     common.Address
	Amount    *big.Int
	Nonce     *big.Int
	Deadline  *big.Int
}

type creditPurchaseTuple struct {
	Buyer      common.Address
	UsdcAmount *big.Int
	Nonce      *big.Int
	Deadline   *big.Int
}

type creditSpendTuple struct {
	Spender    common.Address
	Amount     *big.Int
	ActivityId *big.Int
	Nonce      *big.Int
	Deadline   *big.Int
}

type chipRegistrationTuple struct {
	Owner       common.Address
	ChipAddress common.Address
}

// Call3 is one entry of a Multicall3 aggregate3 batch.
type Call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// EncodeExecutePayment builds the calldata for a single signed payment.
func EncodeExecutePayment(auth typeddata.PaymentAuth, signature []byte) ([]byte, error) {
	data, err := paymentsABI.Pack("executePayment", paymentAuthTuple{
		Payer:     auth.Payer,
		Recipient: auth.Recipient,
		Token:     auth.Token,
		Amount:    auth.Amount,
		Nonce:     auth.Nonce,
		Deadline:  auth.Deadline,
	}, signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode executePayment")
	}
	return data, nil
}

// EncodePurchaseCredits builds the calldata for a signed credit purchase.
func EncodePurchaseCredits(purchase typeddata.CreditPurchase, signature []byte) ([]byte, error) {
	data, err := creditsABI.Pack("purchaseCredits", creditPurchaseTuple{
		Buyer:      purchase.Buyer,
		UsdcAmount: purchase.USDCAmount,
		Nonce:      purchase.Nonce,
		Deadline:   purchase.Deadline,
	}, signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode purchaseCredits")
	}
	return data, nil
}

// EncodeSpendCredits builds the calldata for a signed credit spend.
func EncodeSpendCredits(spend typeddata.CreditSpend, signature []byte) ([]byte, error) {
	data, err := creditsABI.Pack("spendCredits", creditSpendTuple{
		Spender:    spend.Spender,
		Amount:     spend.Amount,
		ActivityId: spend.ActivityID,
		Nonce:      spend.Nonce,
		Deadline:   spend.Deadline,
	}, signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode spendCredits")
	}
	return data, nil
}

// EncodeRegisterChip builds the calldata binding a chip to its owner wallet.
func EncodeRegisterChip(reg typeddata.ChipRegistration, signature []byte) ([]byte, error) {
	data, err := registryABI.Pack("registerChip", chipRegistrationTuple{
		Owner:       reg.Owner,
		ChipAddress: reg.ChipAddress,
	}, signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode registerChip")
	}
	return data, nil
}

// EncodeAggregate3 builds a Multicall3 batch. Callers set AllowFailure per
// entry; the relay path always uses false so a batch settles atomically.
func EncodeAggregate3(calls []Call3) ([]byte, error) {
	if len(calls) == 0 {
		return nil, errors.New("empty multicall batch")
	}
	data, err := multicall3ABI.Pack("aggregate3", calls)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode aggregate3")
	}
	return data, nil
}

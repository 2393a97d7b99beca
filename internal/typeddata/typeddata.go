// Package typeddata builds the EIP-712 typed structs a chip signs to
// authorize relayed operations: payments, credit purchases, credit spends and
// chip registrations. All four primary types are bound to the same domain
// (name, version, chain id, verifying contract), so a signature over one type
// can never be replayed as another.
package typeddata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Domain constants shared with the on-chain verifier.
const (
	DomainName    = "SplitHub"
	DomainVersion = "1"
)

// Type hashes (keccak256 of the type signature strings). Field order matters
// and must match the Solidity definitions exactly.
var (
	domainTypeHash = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))

	paymentAuthTypeHash      = crypto.Keccak256Hash([]byte("PaymentAuth(address payer,address recipient,address token,uint256 amount,uint256 nonce,uint256 deadline)"))
	creditPurchaseTypeHash   = crypto.Keccak256Hash([]byte("CreditPurchase(address buyer,uint256 usdcAmount,uint256 nonce,uint256 deadline)"))
	creditSpendTypeHash      = crypto.Keccak256Hash([]byte("CreditSpend(address spender,uint256 amount,uint256 activityId,uint256 nonce,uint256 deadline)"))
	chipRegistrationTypeHash = crypto.Keccak256Hash([]byte("ChipRegistration(address owner,address chipAddress)"))
)

// DiscoveryPlaceholder is the payer/owner value used in discovery-tap
// structs. The chip only reveals its address by signing, so the first tap
// signs a throwaway struct carrying this sentinel. Relay paths must reject
// any authorization whose signer-bound address equals it.
var DiscoveryPlaceholder = common.BigToAddress(big.NewInt(1))

// Domain is the EIP-712 domain the authorization structs are bound to.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

// NewDomain returns the SplitHub domain for the given chain and verifying
// contract.
func NewDomain(chainID int64, verifyingContract common.Address) Domain {
	return Domain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainID:           big.NewInt(chainID),
		VerifyingContract: verifyingContract,
	}
}

// Separator computes the EIP-712 domain separator:
// keccak256(abi.encode(domainTypeHash, keccak256(name), keccak256(version), chainId, verifyingContract))
func (d Domain) Separator() (common.Hash, error) {
	if d.Name == "" || d.Version == "" || d.ChainID == nil {
		return common.Hash{}, errors.New("incomplete domain")
	}
	return encodeWords(
		domainTypeHash.Bytes(),
		crypto.Keccak256([]byte(d.Name)),
		crypto.Keccak256([]byte(d.Version)),
		padUint256(d.ChainID),
		padAddress(d.VerifyingContract),
	), nil
}

// PaymentAuth authorizes a single token transfer. Single-use: the contract
// consumes the payer's nonce when it executes.
type PaymentAuth struct {
	Payer     common.Address
	Recipient common.Address
	Token     common.Address
	Amount    *big.Int
	Nonce     *big.Int
	Deadline  *big.Int
}

// StructHash computes keccak256(abi.encode(typeHash, payer, recipient, token, amount, nonce, deadline)).
func (a PaymentAuth) StructHash() common.Hash {
	return encodeWords(
		paymentAuthTypeHash.Bytes(),
		padAddress(a.Payer),
		padAddress(a.Recipient),
		padAddress(a.Token),
		padUint256(a.Amount),
		padUint256(a.Nonce),
		padUint256(a.Deadline),
	)
}

// CreditPurchase authorizes minting credits against a USDC deposit.
type CreditPurchase struct {
	Buyer      common.Address
	USDCAmount *big.Int
	Nonce      *big.Int
	Deadline   *big.Int
}

func (p CreditPurchase) StructHash() common.Hash {
	return encodeWords(
		creditPurchaseTypeHash.Bytes(),
		padAddress(p.Buyer),
		padUint256(p.USDCAmount),
		padUint256(p.Nonce),
		padUint256(p.Deadline),
	)
}

// CreditSpend authorizes spending previously purchased credits on an activity.
type CreditSpend struct {
	Spender    common.Address
	Amount     *big.Int
	ActivityID *big.Int
	Nonce      *big.Int
	Deadline   *big.Int
}

func (s CreditSpend) StructHash() common.Hash {
	return encodeWords(
		creditSpendTypeHash.Bytes(),
		padAddress(s.Spender),
		padUint256(s.Amount),
		padUint256(s.ActivityID),
		padUint256(s.Nonce),
		padUint256(s.Deadline),
	)
}

// ChipRegistration binds an ephemeral chip address to a wallet. At most one
// owner per chip; the registry enforces uniqueness on registration.
type ChipRegistration struct {
	Owner       common.Address
	ChipAddress common.Address
}

func (r ChipRegistration) StructHash() common.Hash {
	return encodeWords(
		chipRegistrationTypeHash.Bytes(),
		padAddress(r.Owner),
		padAddress(r.ChipAddress),
	)
}

// Signable is any struct shape that hashes into an EIP-712 digest.
type Signable interface {
	StructHash() common.Hash
}

// Digest returns the final EIP-712 digest to be signed or recovered:
// keccak256("\x19\x01" || domainSeparator || structHash).
func Digest(domain Domain, s Signable) (common.Hash, error) {
	separator, err := domain.Separator()
	if err != nil {
		return common.Hash{}, err
	}
	structHash := s.StructHash()
	return crypto.Keccak256Hash(
		[]byte{0x19, 0x01},
		separator.Bytes(),
		structHash.Bytes(),
	), nil
}

// RecoverSigner recovers the address that signed the given digest.
// sig must be 65 bytes (R||S||V); V may be 0/1 or 27/28.
func RecoverSigner(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, errors.Errorf("signature must be 65 bytes, got %d", len(sig))
	}

	// copy to avoid mutating the caller's slice
	s := make([]byte, 65)
	copy(s, sig)
	if s[64] >= 27 {
		s[64] -= 27
	}

	pubKey, err := crypto.SigToPub(digest.Bytes(), s)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "signature recovery failed")
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// IsDiscoveryPlaceholder reports whether addr is the discovery-tap sentinel.
func IsDiscoveryPlaceholder(addr common.Address) bool {
	return addr == DiscoveryPlaceholder
}

// DiscoveryPaymentAuth returns the throwaway struct a client asks the chip to
// sign on its first tap, solely to learn the chip's address. The placeholder
// payer and zero nonce guarantee the signature can never execute.
func DiscoveryPaymentAuth() PaymentAuth {
	return PaymentAuth{
		Payer:     DiscoveryPlaceholder,
		Recipient: DiscoveryPlaceholder,
		Token:     common.Address{},
		Amount:    big.NewInt(0),
		Nonce:     big.NewInt(0),
		Deadline:  big.NewInt(0),
	}
}

// encodeWords concatenates 32-byte words and hashes the result, matching
// abi.encode over already-padded values.
func encodeWords(words ...[]byte) common.Hash {
	joined := make([]byte, 0, len(words)*32)
	for _, w := range words {
		joined = append(joined, w...)
	}
	return crypto.Keccak256Hash(joined)
}

// padUint256 returns a 32-byte left-padded big-endian representation.
func padUint256(n *big.Int) []byte {
	if n == nil {
		n = big.NewInt(0)
	}
	b := n.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// padAddress left-pads a 20-byte address into a 32-byte word.
func padAddress(a common.Address) []byte {
	out := make([]byte, 32)
	copy(out[12:], a.Bytes())
	return out
}

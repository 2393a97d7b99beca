package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrChipNotRegistered is returned when the registry has no owner bound to a
// chip address.
var ErrChipNotRegistered = errors.New("chip is not registered to any wallet")

// NonceOracle reads the per-payer replay nonce from the payments contract.
// The nonce is always fetched fresh before signing: a stale value produces a
// signature the contract will reject.
type NonceOracle struct {
	client   *Client
	payments common.Address
}

func NewNonceOracle(client *Client, payments common.Address) *NonceOracle {
	return &NonceOracle{client: client, payments: payments}
}

// NonceFor returns the next expected nonce for the payer.
func (o *NonceOracle) NonceFor(ctx context.Context, payer common.Address) (*big.Int, error) {
	data, err := paymentsABI.Pack("nonces", payer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode nonces call")
	}
	out, err := o.client.Call(ctx, o.payments, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read nonce for %s", payer.Hex())
	}
	values, err := paymentsABI.Unpack("nonces", out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode nonce")
	}
	nonce, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected nonce return type")
	}
	return nonce, nil
}

// RegistryResolver maps chip addresses to the wallets that own them.
type RegistryResolver struct {
	client   *Client
	registry common.Address
}

func NewRegistryResolver(client *Client, registry common.Address) *RegistryResolver {
	return &RegistryResolver{client: client, registry: registry}
}

// OwnerOf resolves the wallet a chip is bound to. An unset (zero) owner means
// the chip was never registered and yields ErrChipNotRegistered.
func (r *RegistryResolver) OwnerOf(ctx context.Context, chip common.Address) (common.Address, error) {
	data, err := registryABI.Pack("ownerOf", chip)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed to encode ownerOf call")
	}
	out, err := r.client.Call(ctx, r.registry, data)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "failed to resolve chip %s", chip.Hex())
	}
	values, err := registryABI.Unpack("ownerOf", out)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed to decode chip owner")
	}
	owner, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("unexpected owner return type")
	}
	if owner == (common.Address{}) {
		return common.Address{}, ErrChipNotRegistered
	}
	return owner, nil
}

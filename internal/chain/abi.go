package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract ABIs are trimmed to the functions this service actually calls.
const paymentsABIJSON = `[
  {"type":"function","name":"executePayment","stateMutability":"nonpayable","inputs":[
    {"name":"auth","type":"tuple","components":[
      {"name":"payer","type":"address"},
      {"name":"recipient","type":"address"},
      {"name":"token","type":"address"},
      {"name":"amount","type":"uint256"},
      {"name":"nonce","type":"uint256"},
      {"name":"deadline","type":"uint256"}]},
    {"name":"signature","type":"bytes"}],"outputs":[]},
  {"type":"function","name":"nonces","stateMutability":"view","inputs":[
    {"name":"payer","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const creditsABIJSON = `[
  {"type":"function","name":"purchaseCredits","stateMutability":"nonpayable","inputs":[
    {"name":"purchase","type":"tuple","components":[
      {"name":"buyer","type":"address"},
      {"name":"usdcAmount","type":"uint256"},
      {"name":"nonce","type":"uint256"},
      {"name":"deadline","type":"uint256"}]},
    {"name":"signature","type":"bytes"}],"outputs":[]},
  {"type":"function","name":"spendCredits","stateMutability":"nonpayable","inputs":[
    {"name":"spend","type":"tuple","components":[
      {"name":"spender","type":"address"},
      {"name":"amount","type":"uint256"},
      {"name":"activityId","type":"uint256"},
      {"name":"nonce","type":"uint256"},
      {"name":"deadline","type":"uint256"}]},
    {"name":"signature","type":"bytes"}],"outputs":[]}
]`

const registryABIJSON = `[
  {"type":"function","name":"registerChip","stateMutability":"nonpayable","inputs":[
    {"name":"registration","type":"tuple","components":[
      {"name":"owner","type":"address"},
      {"name":"chipAddress","type":"address"}]},
    {"name":"signature","type":"bytes"}],"outputs":[]},
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[
    {"name":"chip","type":"address"}],"outputs":[{"name":"","type":"address"}]}
]`

const multicall3ABIJSON = `[
  {"type":"function","name":"aggregate3","stateMutability":"payable","inputs":[
    {"name":"calls","type":"tuple[]","components":[
      {"name":"target","type":"address"},
      {"name":"allowFailure","type":"bool"},
      {"name":"callData","type":"bytes"}]}],
   "outputs":[
    {"name":"returnData","type":"tuple[]","components":[
      {"name":"success","type":"bool"},
      {"name":"returnData","type":"bytes"}]}]}
]`

var (
	paymentsABI   = mustParseABI(paymentsABIJSON)
	creditsABI    = mustParseABI(creditsABIJSON)
	registryABI   = mustParseABI(registryABIJSON)
	multicall3ABI = mustParseABI(multicall3ABIJSON)
)

// revertStringArgs decodes the payload of an Error(string) revert.
var revertStringArgs = abi.Arguments{{Type: mustABIType("string")}}

func mustABIType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic("invalid ABI type: " + err.Error())
	}
	return t
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("invalid embedded ABI: " + err.Error())
	}
	return parsed
}

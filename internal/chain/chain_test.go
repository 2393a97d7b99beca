package chain

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgeorgemathew/splithub-sub001/internal/typeddata"
)

type fakeDataError struct {
	msg  string
	data interface{}
}

func (e *fakeDataError) Error() string          { return e.msg }
func (e *fakeDataError) ErrorData() interface{} { return e.data }

func encodeRevertString(t *testing.T, msg string) string {
	t.Helper()
	payload, err := revertStringArgs.Pack(msg)
	require.NoError(t, err)
	return "0x08c379a0" + hex.EncodeToString(payload)
}

func TestTranslateRevert(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReason string
	}{
		{
			name:       "unauthorized signer selector",
			err:        &fakeDataError{msg: "execution reverted", data: errorSelector("UnauthorizedSigner()")},
			wantReason: ReasonUnauthorizedSigner,
		},
		{
			name:       "invalid nonce selector",
			err:        &fakeDataError{msg: "execution reverted", data: errorSelector("InvalidNonce()")},
			wantReason: ReasonInvalidNonce,
		},
		{
			name:       "expired signature selector",
			err:        &fakeDataError{msg: "execution reverted", data: errorSelector("ExpiredSignature()")},
			wantReason: ReasonExpiredSignature,
		},
		{
			name:       "invalid signature selector",
			err:        &fakeDataError{msg: "execution reverted", data: errorSelector("InvalidSignature()")},
			wantReason: ReasonInvalidSignature,
		},
		{
			name:       "chip not registered selector maps to unauthorized",
			err:        &fakeDataError{msg: "execution reverted", data: errorSelector("ChipNotRegistered()")},
			wantReason: ReasonUnauthorizedSigner,
		},
		{
			name:       "allowance message in Error(string)",
			err:        &fakeDataError{msg: "execution reverted", data: "placeholder"},
			wantReason: ReasonInsufficientAllowance,
		},
		{
			name:       "balance substring in plain error",
			err:        errors.New("execution reverted: ERC20: transfer amount exceeds balance"),
			wantReason: ReasonInsufficientBalance,
		},
		{
			name:       "expired substring in plain error",
			err:        errors.New("execution reverted: signature expired"),
			wantReason: ReasonExpiredSignature,
		},
		{
			name:       "unrecognized revert falls back",
			err:        errors.New("execution reverted"),
			wantReason: ReasonUnknownRevert,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			if fe, ok := err.(*fakeDataError); ok && fe.data == "placeholder" {
				fe.data = encodeRevertString(t, "ERC20: insufficient allowance")
			}
			relayErr := TranslateRevert(err)
			require.NotNil(t, relayErr)
			assert.Equal(t, tt.wantReason, relayErr.Reason)
			assert.ErrorIs(t, relayErr, err)
		})
	}
}

func TestTranslateRevertNil(t *testing.T) {
	assert.Nil(t, TranslateRevert(nil))
}

func TestEncodeExecutePayment(t *testing.T) {
	auth := typeddata.PaymentAuth{
		Payer:     common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Recipient: common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Token:     common.HexToAddress("0x3333333333333333333333333333333333333333"),
		Amount:    big.NewInt(1_000_000),
		Nonce:     big.NewInt(7),
		Deadline:  big.NewInt(1_900_000_000),
	}
	sig := make([]byte, 65)

	data, err := EncodeExecutePayment(auth, sig)
	require.NoError(t, err)

	wantSelector := crypto.Keccak256([]byte("executePayment((address,address,address,uint256,uint256,uint256),bytes)"))[:4]
	assert.Equal(t, wantSelector, data[:4])

	method, err := paymentsABI.MethodById(data[:4])
	require.NoError(t, err)
	decoded, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, decoded, 2)
}

func TestEncodeAggregate3(t *testing.T) {
	inner, err := EncodeExecutePayment(typeddata.PaymentAuth{
		Payer:     common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Recipient: common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Token:     common.HexToAddress("0x3333333333333333333333333333333333333333"),
		Amount:    big.NewInt(500_000),
		Nonce:     big.NewInt(0),
		Deadline:  big.NewInt(1_900_000_000),
	}, make([]byte, 65))
	require.NoError(t, err)

	target := common.HexToAddress("0x4444444444444444444444444444444444444444")
	data, err := EncodeAggregate3([]Call3{
		{Target: target, AllowFailure: false, CallData: inner},
		{Target: target, AllowFailure: false, CallData: inner},
	})
	require.NoError(t, err)

	wantSelector := crypto.Keccak256([]byte("aggregate3((address,bool,bytes)[])"))[:4]
	assert.Equal(t, wantSelector, data[:4])
}

func TestEncodeAggregate3RejectsEmptyBatch(t *testing.T) {
	_, err := EncodeAggregate3(nil)
	assert.Error(t, err)
}

func TestErrorSelectorFormat(t *testing.T) {
	sel := errorSelector("InvalidNonce()")
	assert.Len(t, sel, 10)
	assert.Equal(t, "0x", sel[:2])
}

package tests

import (
	"math/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// accountData returns a NEO3 wallet representation of the given account to be
// attached as data to GAS transfers.
func accountData(t testing.TB, acc util.Uint160) []byte {
	data, err := base58.Decode(address.Uint160ToString(acc))
	require.NoError(t, err)
	return data
}

// depositGas transfers GAS from the account to the given contract so the
// contract credits the account's prepaid deposit.
func depositGas(t *testing.T, e *neotest.Executor, from neotest.Signer, contract util.Uint160, amount int64) {
	gasHash, err := e.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	e.NewInvoker(gasHash, from).Invoke(t, true, "transfer",
		from.ScriptHash(), contract, amount, accountData(t, from.ScriptHash()))
}

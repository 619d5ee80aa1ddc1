package tests

import (
	"testing"

	"github.com/alexpaden/social-contract/common"
	"github.com/alexpaden/social-contract/contracts/netconfig/netconfigconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newNetconfigInvoker(t *testing.T, config ...any) (*neotest.Executor, *neotest.ContractInvoker) {
	e := newExecutor(t)
	h := deployNetconfigContract(t, e, config...)
	return e, e.CommitteeInvoker(h)
}

func configValue(t *testing.T, c *neotest.ContractInvoker, key string) int64 {
	s, err := c.TestInvoke(t, "config", []byte(key))
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func TestNetconfig_Defaults(t *testing.T) {
	_, c := newNetconfigInvoker(t)

	require.EqualValues(t, netconfigconst.DefaultRegistrationFee,
		configValue(t, c, netconfigconst.RegistrationFeeKey))
	require.EqualValues(t, netconfigconst.DefaultReputationPrice,
		configValue(t, c, netconfigconst.ReputationPriceKey))
	require.EqualValues(t, netconfigconst.DefaultOperatorEquity,
		configValue(t, c, netconfigconst.OperatorEquityKey))
	require.EqualValues(t, netconfigconst.DefaultMaxAssociatedIDs,
		configValue(t, c, netconfigconst.MaxAssociatedIDsKey))
	require.EqualValues(t, netconfigconst.DefaultMaxTaggedContracts,
		configValue(t, c, netconfigconst.MaxTaggedContractsKey))
	require.EqualValues(t, netconfigconst.DefaultMaxCommentLength,
		configValue(t, c, netconfigconst.MaxCommentLengthKey))
	require.EqualValues(t, netconfigconst.DefaultMaxTagLength,
		configValue(t, c, netconfigconst.MaxTagLengthKey))
	require.EqualValues(t, netconfigconst.DefaultMaxReputation,
		configValue(t, c, netconfigconst.MaxReputationKey))
	require.EqualValues(t, netconfigconst.DefaultDelegateMustBeMember,
		configValue(t, c, netconfigconst.DelegateMustBeMemberKey))

	t.Run("deploy-time override", func(t *testing.T) {
		_, c := newNetconfigInvoker(t,
			[]byte(netconfigconst.MaxAssociatedIDsKey), []byte{3})
		require.EqualValues(t, 3,
			configValue(t, c, netconfigconst.MaxAssociatedIDsKey))
	})
}

func TestNetconfig_SetConfig(t *testing.T) {
	_, c := newNetconfigInvoker(t)

	c.Invoke(t, stackitem.Null{}, "setConfig",
		[]byte(netconfigconst.MaxTaggedContractsKey), []byte{7})
	require.EqualValues(t, 7,
		configValue(t, c, netconfigconst.MaxTaggedContractsKey))

	c.InvokeFail(t, netconfigconst.ErrUnknownKey, "setConfig",
		[]byte("NoSuchKey"), []byte{1})
	c.InvokeFail(t, netconfigconst.ErrInvalidValue, "setConfig",
		[]byte(netconfigconst.OperatorEquityKey), []byte{101})
	c.InvokeFail(t, netconfigconst.ErrInvalidValue, "setConfig",
		[]byte(netconfigconst.MaxReputationKey), []byte{0})
	c.InvokeFail(t, netconfigconst.ErrInvalidValue, "setConfig",
		[]byte(netconfigconst.DelegateMustBeMemberKey), []byte{2})

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed, "setConfig",
		[]byte(netconfigconst.MaxTaggedContractsKey), []byte{5})
}

func TestNetconfig_ListConfig(t *testing.T) {
	_, c := newNetconfigInvoker(t)

	s, err := c.TestInvoke(t, "listConfig")
	require.NoError(t, err)

	records := s.Pop().Array()
	require.Len(t, records, 9)

	for _, r := range records {
		pair := r.Value().([]stackitem.Item)
		require.Len(t, pair, 2)
	}
}

func TestNetconfig_SetAdmin(t *testing.T) {
	_, c := newNetconfigInvoker(t)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
		"setAdmin", acc.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "setAdmin", acc.ScriptHash())

	s, err := c.TestInvoke(t, "admin")
	require.NoError(t, err)
	require.Equal(t, acc.ScriptHash().BytesBE(), s.Pop().Bytes())
}

package tests

import (
	"testing"

	"github.com/alexpaden/social-contract/common"
	"github.com/alexpaden/social-contract/contracts/addressregistry/registryconst"
	"github.com/alexpaden/social-contract/contracts/netconfig/netconfigconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const registrationFee = int64(netconfigconst.DefaultRegistrationFee)

func newRegistryInvoker(t *testing.T, config ...any) (*neotest.Executor, *neotest.ContractInvoker) {
	e := newExecutor(t)
	ncHash := deployNetconfigContract(t, e, config...)
	h := deployRegistryContract(t, e, ncHash)
	return e, e.CommitteeInvoker(h)
}

// newMember creates a fresh account with a prepaid registry deposit and
// registers a new group from it. Returns the account and its group ID.
func newMember(t *testing.T, e *neotest.Executor, c *neotest.ContractInvoker, rsid int64) neotest.Signer {
	acc := c.NewAccount(t)
	depositGas(t, e, acc, c.Hash, registrationFee)
	c.WithSigners(acc).Invoke(t, stackitem.Make(rsid), "createGroup", acc.ScriptHash())
	return acc
}

func membersOf(t *testing.T, c *neotest.ContractInvoker, rsid int64) [][]byte {
	s, err := c.TestInvoke(t, "members", rsid)
	require.NoError(t, err)

	items := s.Pop().Array()
	res := make([][]byte, 0, len(items))
	for _, it := range items {
		b, err := it.TryBytes()
		require.NoError(t, err)
		res = append(res, b)
	}
	return res
}

func groupsOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) []int64 {
	s, err := c.TestInvoke(t, "groupsOf", acc)
	require.NoError(t, err)

	items := s.Pop().Array()
	res := make([]int64, 0, len(items))
	for _, it := range items {
		n, err := it.TryInteger()
		require.NoError(t, err)
		res = append(res, n.Int64())
	}
	return res
}

func balanceValue(t *testing.T, c *neotest.ContractInvoker, method string, acc util.Uint160) int64 {
	s, err := c.TestInvoke(t, method, acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func TestRegistry_CreateGroup(t *testing.T) {
	e, c := newRegistryInvoker(t)

	acc := c.NewAccount(t)
	depositGas(t, e, acc, c.Hash, 2*registrationFee)

	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Make(1), "createGroup", acc.ScriptHash())

	require.Equal(t, [][]byte{acc.ScriptHash().BytesBE()}, membersOf(t, c, 1))
	require.Equal(t, []int64{1}, groupsOf(t, c, acc.ScriptHash()))

	s, err := c.TestInvoke(t, "founder", int64(1))
	require.NoError(t, err)
	require.Equal(t, acc.ScriptHash().BytesBE(), s.Pop().Bytes())

	s, err = c.TestInvoke(t, "total")
	require.NoError(t, err)
	require.EqualValues(t, 1, s.Pop().BigInt().Int64())

	t.Run("association limit", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrAssociationLimit,
			"createGroup", acc.ScriptHash())
	})

	t.Run("monotonic IDs", func(t *testing.T) {
		newMember(t, e, c, 2)
		newMember(t, e, c, 3)
	})

	t.Run("missing witness", func(t *testing.T) {
		other := c.NewAccount(t)
		cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed,
			"createGroup", other.ScriptHash())
	})

	t.Run("underpaid fee is a no-op", func(t *testing.T) {
		poor := c.NewAccount(t)
		depositGas(t, e, poor, c.Hash, registrationFee-1)

		c.WithSigners(poor).Invoke(t, stackitem.Make(0),
			"createGroup", poor.ScriptHash())

		require.Empty(t, groupsOf(t, c, poor.ScriptHash()))
		require.EqualValues(t, registrationFee-1,
			balanceValue(t, c, "balanceOf", poor.ScriptHash()))

		s, err := c.TestInvoke(t, "total")
		require.NoError(t, err)
		require.EqualValues(t, 3, s.Pop().BigInt().Int64())
	})
}

func TestRegistry_UpdateAddresses(t *testing.T) {
	e, c := newRegistryInvoker(t)

	acc := newMember(t, e, c, 1)
	cAcc := c.WithSigners(acc)

	joiner := c.NewAccount(t)
	cAcc.Invoke(t, stackitem.Null{}, "updateAddresses",
		acc.ScriptHash(), int64(1), []any{joiner.ScriptHash()})

	require.Len(t, membersOf(t, c, 1), 2)
	require.Equal(t, []int64{1}, groupsOf(t, c, joiner.ScriptHash()))
	c.Invoke(t, stackitem.Make(true), "isMember", int64(1), joiner.ScriptHash())

	t.Run("duplicate association", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrAlreadyAssociated, "updateAddresses",
			acc.ScriptHash(), int64(1), []any{joiner.ScriptHash()})
	})

	t.Run("per-address limit", func(t *testing.T) {
		other := newMember(t, e, c, 2)
		c.WithSigners(other).InvokeFail(t, registryconst.ErrAssociationLimit,
			"updateAddresses", other.ScriptHash(), int64(2), []any{joiner.ScriptHash()})
	})

	t.Run("unauthorized caller", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, registryconst.ErrNotMemberOrDelegate,
			"updateAddresses", stranger.ScriptHash(), int64(1), []any{stranger.ScriptHash()})
	})

	t.Run("unknown group", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrGroupNotFound, "updateAddresses",
			acc.ScriptHash(), int64(42), []any{})
	})
}

func TestRegistry_UpdateAddressesMigration(t *testing.T) {
	e, c := newRegistryInvoker(t,
		[]byte(netconfigconst.MaxAssociatedIDsKey), []byte{2})

	acc1 := newMember(t, e, c, 1)
	acc2 := newMember(t, e, c, 2)

	// acc2 joins group 1 while keeping group 2 as its primary.
	c.WithSigners(acc1).Invoke(t, stackitem.Null{}, "updateAddresses",
		acc1.ScriptHash(), int64(1), []any{acc2.ScriptHash()})
	require.Equal(t, []int64{2, 1}, groupsOf(t, c, acc2.ScriptHash()))

	// Updating group 1 as acc2 migrates it out of its primary group 2.
	extra := c.NewAccount(t)
	c.WithSigners(acc2).Invoke(t, stackitem.Null{}, "updateAddresses",
		acc2.ScriptHash(), int64(1), []any{extra.ScriptHash()})

	require.Equal(t, []int64{1}, groupsOf(t, c, acc2.ScriptHash()))
	c.Invoke(t, stackitem.Make(false), "isMember", int64(2), acc2.ScriptHash())
	c.Invoke(t, stackitem.Make(true), "isMember", int64(1), acc2.ScriptHash())
}

func TestRegistry_RemoveSelf(t *testing.T) {
	e, c := newRegistryInvoker(t)

	acc := newMember(t, e, c, 1)
	joiner := c.NewAccount(t)
	c.WithSigners(acc).Invoke(t, stackitem.Null{}, "updateAddresses",
		acc.ScriptHash(), int64(1), []any{joiner.ScriptHash()})

	c.WithSigners(joiner).Invoke(t, stackitem.Null{}, "removeSelf",
		joiner.ScriptHash(), int64(1))

	require.Equal(t, [][]byte{acc.ScriptHash().BytesBE()}, membersOf(t, c, 1))
	require.Empty(t, groupsOf(t, c, joiner.ScriptHash()))
	c.Invoke(t, stackitem.Make(false), "isMember", int64(1), joiner.ScriptHash())

	t.Run("not a member", func(t *testing.T) {
		c.WithSigners(joiner).InvokeFail(t, registryconst.ErrNotAssociated,
			"removeSelf", joiner.ScriptHash(), int64(1))
	})

	t.Run("group survives emptying", func(t *testing.T) {
		c.WithSigners(acc).Invoke(t, stackitem.Null{}, "removeSelf",
			acc.ScriptHash(), int64(1))

		require.Empty(t, membersOf(t, c, 1))

		s, err := c.TestInvoke(t, "founder", int64(1))
		require.NoError(t, err)
		require.Equal(t, acc.ScriptHash().BytesBE(), s.Pop().Bytes())
	})
}

func TestRegistry_RemoveAddress(t *testing.T) {
	e, c := newRegistryInvoker(t)

	founder := newMember(t, e, c, 1)
	member1 := c.NewAccount(t)
	member2 := c.NewAccount(t)
	cFounder := c.WithSigners(founder)
	cFounder.Invoke(t, stackitem.Null{}, "updateAddresses",
		founder.ScriptHash(), int64(1), []any{member1.ScriptHash(), member2.ScriptHash()})

	t.Run("target not a member", func(t *testing.T) {
		stranger := c.NewAccount(t)
		cFounder.InvokeFail(t, registryconst.ErrNotAssociated, "removeAddress",
			founder.ScriptHash(), int64(1), stranger.ScriptHash())
	})

	t.Run("non-founder may not remove", func(t *testing.T) {
		c.WithSigners(member1).InvokeFail(t, registryconst.ErrOnlyFounder,
			"removeAddress", member1.ScriptHash(), int64(1), member2.ScriptHash())
	})

	cFounder.Invoke(t, stackitem.Null{}, "removeAddress",
		founder.ScriptHash(), int64(1), member2.ScriptHash())
	require.Len(t, membersOf(t, c, 1), 2)

	t.Run("delegate takes over removal rights", func(t *testing.T) {
		cFounder.Invoke(t, stackitem.Null{}, "addDelegate",
			founder.ScriptHash(), int64(1), member1.ScriptHash())

		cFounder.InvokeFail(t, registryconst.ErrOnlyDelegate, "removeAddress",
			founder.ScriptHash(), int64(1), member1.ScriptHash())

		c.WithSigners(member1).Invoke(t, stackitem.Null{}, "removeAddress",
			member1.ScriptHash(), int64(1), founder.ScriptHash())
		require.Equal(t, [][]byte{member1.ScriptHash().BytesBE()}, membersOf(t, c, 1))
	})
}

func TestRegistry_Delegates(t *testing.T) {
	e, c := newRegistryInvoker(t)

	founder := newMember(t, e, c, 1)
	member := c.NewAccount(t)
	outsider := c.NewAccount(t)
	cFounder := c.WithSigners(founder)
	cFounder.Invoke(t, stackitem.Null{}, "updateAddresses",
		founder.ScriptHash(), int64(1), []any{member.ScriptHash()})

	t.Run("no delegate initially", func(t *testing.T) {
		c.InvokeFail(t, registryconst.ErrNoDelegate, "delegate", int64(1))
		c.Invoke(t, stackitem.Make(false), "isDelegate", int64(1), member.ScriptHash())
	})

	t.Run("delegate must be a member", func(t *testing.T) {
		cFounder.InvokeFail(t, registryconst.ErrDelegateNotMember, "addDelegate",
			founder.ScriptHash(), int64(1), outsider.ScriptHash())
	})

	t.Run("only members may appoint", func(t *testing.T) {
		c.WithSigners(outsider).InvokeFail(t, registryconst.ErrNotAssociated,
			"addDelegate", outsider.ScriptHash(), int64(1), member.ScriptHash())
	})

	cFounder.Invoke(t, stackitem.Null{}, "addDelegate",
		founder.ScriptHash(), int64(1), member.ScriptHash())
	c.Invoke(t, stackitem.Make(true), "isDelegate", int64(1), member.ScriptHash())

	t.Run("single slot", func(t *testing.T) {
		cFounder.InvokeFail(t, registryconst.ErrDelegateSet, "addDelegate",
			founder.ScriptHash(), int64(1), founder.ScriptHash())
	})

	t.Run("change requires current delegate", func(t *testing.T) {
		cFounder.InvokeFail(t, registryconst.ErrOnlyCurrentDelegate, "changeDelegate",
			founder.ScriptHash(), int64(1), founder.ScriptHash())

		c.WithSigners(member).Invoke(t, stackitem.Null{}, "changeDelegate",
			member.ScriptHash(), int64(1), founder.ScriptHash())
		c.Invoke(t, stackitem.Make(true), "isDelegate", int64(1), founder.ScriptHash())
	})

	t.Run("removal", func(t *testing.T) {
		cFounder.InvokeFail(t, registryconst.ErrNotDelegate, "removeDelegate",
			founder.ScriptHash(), int64(1), member.ScriptHash())

		c.WithSigners(member).Invoke(t, stackitem.Null{}, "removeDelegate",
			member.ScriptHash(), int64(1), founder.ScriptHash())
		c.InvokeFail(t, registryconst.ErrNoDelegate, "delegate", int64(1))

		c.WithSigners(member).InvokeFail(t, registryconst.ErrNoDelegate,
			"removeDelegate", member.ScriptHash(), int64(1), founder.ScriptHash())
	})

	t.Run("re-add after removal", func(t *testing.T) {
		cFounder.Invoke(t, stackitem.Null{}, "addDelegate",
			founder.ScriptHash(), int64(1), member.ScriptHash())
		c.Invoke(t, stackitem.Make(true), "isDelegate", int64(1), member.ScriptHash())
	})
}

func TestRegistry_Tags(t *testing.T) {
	e, c := newRegistryInvoker(t)

	acc := newMember(t, e, c, 1)
	cAcc := c.WithSigners(acc)

	tagged := make([]any, netconfigconst.DefaultMaxTaggedContracts)
	for i := range tagged {
		tagged[i] = util.Uint160{byte(i + 1)}
	}

	cAcc.Invoke(t, stackitem.Null{}, "addTags", acc.ScriptHash(), int64(1), tagged)

	s, err := c.TestInvoke(t, "tags", int64(1))
	require.NoError(t, err)
	require.Len(t, s.Pop().Array(), netconfigconst.DefaultMaxTaggedContracts)

	t.Run("cap is enforced on the whole batch", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrTagLimit, "addTags",
			acc.ScriptHash(), int64(1), []any{util.Uint160{0xff}})

		s, err := c.TestInvoke(t, "tags", int64(1))
		require.NoError(t, err)
		require.Len(t, s.Pop().Array(), netconfigconst.DefaultMaxTaggedContracts)
	})

	t.Run("duplicates rejected", func(t *testing.T) {
		cAcc.Invoke(t, stackitem.Null{}, "removeTag",
			acc.ScriptHash(), int64(1), util.Uint160{1})

		cAcc.InvokeFail(t, registryconst.ErrTagExists, "addTags",
			acc.ScriptHash(), int64(1), []any{util.Uint160{2}})
	})

	t.Run("removing unknown tag", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrTagNotFound, "removeTag",
			acc.ScriptHash(), int64(1), util.Uint160{0xaa})
	})

	t.Run("unauthorized caller", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, registryconst.ErrNotMemberOrDelegate,
			"addTags", stranger.ScriptHash(), int64(1), []any{util.Uint160{0xbb}})
	})
}

func TestRegistry_IterateGroups(t *testing.T) {
	e, c := newRegistryInvoker(t)

	newMember(t, e, c, 1)
	newMember(t, e, c, 2)

	s, err := c.TestInvoke(t, "iterateGroups")
	require.NoError(t, err)

	groups := iteratorToArray(s.Pop().Value().(*storage.Iterator))
	require.Len(t, groups, 2)
	for i, g := range groups {
		pair := g.Value().([]stackitem.Item)
		require.Len(t, pair, 2)

		id, err := pair[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, []byte{byte(i + 1)}, id)
	}
}

func TestRegistry_DepositWithdraw(t *testing.T) {
	e, c := newRegistryInvoker(t)

	acc := c.NewAccount(t)
	depositGas(t, e, acc, c.Hash, 3*registrationFee)
	require.EqualValues(t, 3*registrationFee,
		balanceValue(t, c, "balanceOf", acc.ScriptHash()))

	c.WithSigners(acc).Invoke(t, stackitem.Make(1), "createGroup", acc.ScriptHash())
	require.EqualValues(t, 2*registrationFee,
		balanceValue(t, c, "balanceOf", acc.ScriptHash()))

	// Registration fees land on the contract owner's pending balance.
	require.EqualValues(t, registrationFee,
		balanceValue(t, c, "pendingOf", c.CommitteeHash))

	t.Run("owner withdraws collected fees", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "withdraw", c.CommitteeHash, int64(0))
		require.EqualValues(t, 0, balanceValue(t, c, "pendingOf", c.CommitteeHash))

		c.InvokeFail(t, registryconst.ErrInsufficientBalance,
			"withdraw", c.CommitteeHash, int64(0))
	})

	t.Run("deposit refund", func(t *testing.T) {
		cAcc := c.WithSigners(acc)
		cAcc.Invoke(t, stackitem.Null{}, "withdrawDeposit",
			acc.ScriptHash(), registrationFee)
		require.EqualValues(t, registrationFee,
			balanceValue(t, c, "balanceOf", acc.ScriptHash()))

		cAcc.InvokeFail(t, registryconst.ErrInsufficientBalance,
			"withdrawDeposit", acc.ScriptHash(), 2*registrationFee)

		cAcc.Invoke(t, stackitem.Null{}, "withdrawDeposit",
			acc.ScriptHash(), int64(0))
		require.EqualValues(t, 0,
			balanceValue(t, c, "balanceOf", acc.ScriptHash()))
	})
}

package tests

import (
	"crypto/sha256"
	"testing"

	"github.com/alexpaden/social-contract/contracts/netconfig/netconfigconst"
	"github.com/alexpaden/social-contract/contracts/reputation/reputationconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const ratingFee = int64(netconfigconst.DefaultReputationPrice)

// rateeShare is the part of the rating fee credited to the rated address
// after the operator equity cut.
const rateeShare = ratingFee - ratingFee*int64(netconfigconst.DefaultOperatorEquity)/100

func newReputationInvoker(t *testing.T, config ...any) (*neotest.Executor, *neotest.ContractInvoker) {
	e := newExecutor(t)
	ncHash := deployNetconfigContract(t, e, config...)
	h := deployReputationContract(t, e, ncHash)
	return e, e.CommitteeInvoker(h)
}

// newRater creates a fresh account with a deposit covering n ratings.
func newRater(t *testing.T, e *neotest.Executor, c *neotest.ContractInvoker, n int64) neotest.Signer {
	acc := c.NewAccount(t)
	depositGas(t, e, acc, c.Hash, n*ratingFee)
	return acc
}

func entryOf(t *testing.T, c *neotest.ContractInvoker, rater, ratee util.Uint160) []stackitem.Item {
	s, err := c.TestInvoke(t, "entryOf", rater, ratee)
	require.NoError(t, err)

	entry := s.Pop().Array()
	require.Len(t, entry, 4)
	return entry
}

func scoreOf(t *testing.T, c *neotest.ContractInvoker, ratee util.Uint160) int64 {
	s, err := c.TestInvoke(t, "scoreOf", ratee)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

// ratingIndex enumerates "ratersOf" or "rateesOf" for the given address.
func ratingIndex(t *testing.T, c *neotest.ContractInvoker, method string, addr util.Uint160) [][]byte {
	s, err := c.TestInvoke(t, method, addr)
	require.NoError(t, err)

	items := iteratorToArray(s.Pop().Value().(*storage.Iterator))
	res := make([][]byte, 0, len(items))
	for _, it := range items {
		b, err := it.TryBytes()
		require.NoError(t, err)
		res = append(res, b)
	}
	return res
}

func TestReputation_Rate(t *testing.T) {
	e, c := newReputationInvoker(t)

	rater := newRater(t, e, c, 10)
	ratee := c.NewAccount(t).ScriptHash()
	cRater := c.WithSigners(rater)

	comment := []byte("trusted relay operator")

	// Out-of-range score is clamped, not rejected.
	cRater.Invoke(t, stackitem.Make(netconfigconst.DefaultMaxReputation), "rate",
		rater.ScriptHash(), ratee, int64(5), comment, []byte("infra"))

	entry := entryOf(t, c, rater.ScriptHash(), ratee)
	score, err := entry[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, netconfigconst.DefaultMaxReputation, score.Int64())

	ts, err := entry[1].TryInteger()
	require.NoError(t, err)
	require.NotZero(t, ts.Int64())

	hash, err := entry[2].TryBytes()
	require.NoError(t, err)
	expected := sha256.Sum256(comment)
	require.Equal(t, expected[:], hash)

	tag, err := entry[3].TryBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("infra"), tag)

	require.EqualValues(t, netconfigconst.DefaultMaxReputation, scoreOf(t, c, ratee))

	t.Run("comment hash equality", func(t *testing.T) {
		c.Invoke(t, stackitem.Make(true), "isCommentMatch",
			rater.ScriptHash(), ratee, comment)
		c.Invoke(t, stackitem.Make(false), "isCommentMatch",
			rater.ScriptHash(), ratee, []byte("different text"))
	})

	t.Run("re-rating overwrites", func(t *testing.T) {
		cRater.Invoke(t, stackitem.Make(-int64(netconfigconst.DefaultMaxReputation)),
			"rate", rater.ScriptHash(), ratee, int64(-100), comment, []byte{})

		require.EqualValues(t, -int64(netconfigconst.DefaultMaxReputation),
			scoreOf(t, c, ratee))
	})

	t.Run("comment length limit", func(t *testing.T) {
		long := randomBytes(netconfigconst.DefaultMaxCommentLength + 1)
		cRater.InvokeFail(t, reputationconst.ErrCommentTooLong, "rate",
			rater.ScriptHash(), ratee, int64(1), long, []byte{})
	})

	t.Run("tag length limit", func(t *testing.T) {
		long := randomBytes(netconfigconst.DefaultMaxTagLength + 1)
		cRater.InvokeFail(t, reputationconst.ErrTagTooLong, "rate",
			rater.ScriptHash(), ratee, int64(1), []byte("ok"), long)
	})

	t.Run("uncovered fee", func(t *testing.T) {
		broke := c.NewAccount(t)
		c.WithSigners(broke).InvokeFail(t, reputationconst.ErrInsufficientBalance,
			"rate", broke.ScriptHash(), ratee, int64(1), []byte("hi"), []byte{})
	})
}

func TestReputation_Delete(t *testing.T) {
	e, c := newReputationInvoker(t)

	rater := newRater(t, e, c, 1)
	ratee := c.NewAccount(t).ScriptHash()
	cRater := c.WithSigners(rater)

	cRater.Invoke(t, stackitem.Make(1), "rate",
		rater.ScriptHash(), ratee, int64(1), []byte("ok"), []byte{})
	require.EqualValues(t, 1, scoreOf(t, c, ratee))

	cRater.Invoke(t, stackitem.Null{}, "delete", rater.ScriptHash(), ratee)
	require.EqualValues(t, 0, scoreOf(t, c, ratee))

	_, err := c.TestInvoke(t, "entryOf", rater.ScriptHash(), ratee)
	require.ErrorContains(t, err, reputationconst.ErrEntryNotFound)

	t.Run("double delete", func(t *testing.T) {
		cRater.InvokeFail(t, reputationconst.ErrEntryNotFound,
			"delete", rater.ScriptHash(), ratee)
	})
}

func TestReputation_RatingIndices(t *testing.T) {
	e, c := newReputationInvoker(t)

	rater := newRater(t, e, c, 3)
	other := newRater(t, e, c, 1)
	ratee := c.NewAccount(t).ScriptHash()
	cRater := c.WithSigners(rater)

	cRater.Invoke(t, stackitem.Make(1), "rate",
		rater.ScriptHash(), ratee, int64(1), []byte("first"), []byte{})

	require.Equal(t, [][]byte{rater.ScriptHash().BytesBE()}, ratingIndex(t, c, "ratersOf", ratee))
	require.Equal(t, [][]byte{ratee.BytesBE()}, ratingIndex(t, c, "rateesOf", rater.ScriptHash()))

	t.Run("re-rating keeps a single index entry", func(t *testing.T) {
		cRater.Invoke(t, stackitem.Make(-1), "rate",
			rater.ScriptHash(), ratee, int64(-1), []byte("changed my mind"), []byte{})

		require.Len(t, ratingIndex(t, c, "ratersOf", ratee), 1)
		require.Len(t, ratingIndex(t, c, "rateesOf", rater.ScriptHash()), 1)
	})

	c.WithSigners(other).Invoke(t, stackitem.Make(2), "rate",
		other.ScriptHash(), ratee, int64(2), []byte("second opinion"), []byte{})
	require.Len(t, ratingIndex(t, c, "ratersOf", ratee), 2)

	t.Run("delete drops both index entries", func(t *testing.T) {
		cRater.Invoke(t, stackitem.Null{}, "delete", rater.ScriptHash(), ratee)

		require.Equal(t, [][]byte{other.ScriptHash().BytesBE()}, ratingIndex(t, c, "ratersOf", ratee))
		require.Empty(t, ratingIndex(t, c, "rateesOf", rater.ScriptHash()))
	})
}

func TestReputation_RateBatch(t *testing.T) {
	e, c := newReputationInvoker(t)

	ratee1 := c.NewAccount(t).ScriptHash()
	ratee2 := c.NewAccount(t).ScriptHash()

	t.Run("total fee checked up front", func(t *testing.T) {
		rater := c.NewAccount(t)
		depositGas(t, e, rater, c.Hash, 2*ratingFee-1)

		c.WithSigners(rater).InvokeFail(t, reputationconst.ErrInsufficientBalance,
			"rateBatch", rater.ScriptHash(),
			[]any{ratee1, ratee2}, []any{int64(1), int64(2)},
			[]any{[]byte("a"), []byte("b")}, []any{[]byte{}, []byte{}})

		_, err := c.TestInvoke(t, "entryOf", rater.ScriptHash(), ratee1)
		require.ErrorContains(t, err, reputationconst.ErrEntryNotFound)
		_, err = c.TestInvoke(t, "entryOf", rater.ScriptHash(), ratee2)
		require.ErrorContains(t, err, reputationconst.ErrEntryNotFound)
		require.EqualValues(t, 0, scoreOf(t, c, ratee1))
	})

	rater := newRater(t, e, c, 2)
	cRater := c.WithSigners(rater)

	t.Run("argument lengths must match", func(t *testing.T) {
		cRater.InvokeFail(t, reputationconst.ErrLengthMismatch,
			"rateBatch", rater.ScriptHash(),
			[]any{ratee1, ratee2}, []any{int64(1)},
			[]any{[]byte("a")}, []any{[]byte{}})
	})

	cRater.Invoke(t, stackitem.Null{}, "rateBatch", rater.ScriptHash(),
		[]any{ratee1, ratee2}, []any{int64(1), int64(2)},
		[]any{[]byte("a"), []byte("b")}, []any{[]byte{}, []byte{}})

	require.EqualValues(t, 1, scoreOf(t, c, ratee1))
	require.EqualValues(t, 2, scoreOf(t, c, ratee2))
	require.EqualValues(t, 0, balanceValue(t, c, "balanceOf", rater.ScriptHash()))
}

func TestReputation_Withdraw(t *testing.T) {
	e, c := newReputationInvoker(t)

	ratee := c.NewAccount(t)
	rater1 := newRater(t, e, c, 1)
	rater2 := newRater(t, e, c, 1)

	c.WithSigners(rater1).Invoke(t, stackitem.Make(1), "rate",
		rater1.ScriptHash(), ratee.ScriptHash(), int64(1), []byte("fast"), []byte{})
	c.WithSigners(rater2).Invoke(t, stackitem.Make(2), "rate",
		rater2.ScriptHash(), ratee.ScriptHash(), int64(2), []byte("reliable"), []byte{})

	require.EqualValues(t, 2*rateeShare,
		balanceValue(t, c, "pendingOf", ratee.ScriptHash()))
	require.EqualValues(t, 2*(ratingFee-rateeShare),
		balanceValue(t, c, "pendingOf", c.CommitteeHash))
	require.EqualValues(t, 3, scoreOf(t, c, ratee.ScriptHash()))

	cRatee := c.WithSigners(ratee)
	cRatee.Invoke(t, stackitem.Null{}, "withdraw", ratee.ScriptHash(), int64(0))
	require.EqualValues(t, 0, balanceValue(t, c, "pendingOf", ratee.ScriptHash()))

	t.Run("empty balance", func(t *testing.T) {
		cRatee.InvokeFail(t, reputationconst.ErrInsufficientBalance,
			"withdraw", ratee.ScriptHash(), int64(0))
	})

	t.Run("operator share", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "withdraw", c.CommitteeHash, int64(0))
		require.EqualValues(t, 0, balanceValue(t, c, "pendingOf", c.CommitteeHash))
	})
}

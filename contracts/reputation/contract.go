package reputation

import (
	rcst "github.com/alexpaden/social-contract/contracts/reputation/reputationconst"

	"github.com/alexpaden/social-contract/common"
	cst "github.com/alexpaden/social-contract/contracts/netconfig/netconfigconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Entry is a single live rating from one address to another.
type Entry struct {
	Score       int
	Timestamp   int
	CommentHash []byte
	Tag         []byte
}

const (
	netconfigContractKey = "netconfigScriptHash"

	entryPrefix     = 'e'
	aggregatePrefix = 's'
	givenPrefix     = 'g'
	receivedPrefix  = 'v'
	depositPrefix   = 'a'
	pendingPrefix   = 'p'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	args := data.(struct {
		owner             interop.Hash160
		netconfigContract interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect owner account")
	}
	if len(args.netconfigContract) != interop.Hash160Len {
		panic("incorrect netconfig contract script hash")
	}

	storage.Put(ctx, common.OwnerKey, args.owner)
	storage.Put(ctx, netconfigContractKey, args.netconfigContract)

	runtime.Log("reputation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()

	if !common.HasUpdateAccess(ctx) {
		panic("only owner can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("reputation contract updated")
}

// Rate stores a signed rating from the caller to the given address. The score
// is clamped into the configured [-max, +max] range rather than rejected. The
// comment is stored as its SHA-256 content hash, the tag verbatim; both are
// length-checked against the configuration. Rating the same address again
// overwrites the previous entry, the ratee's aggregate is adjusted by the
// score difference.
//
// The rating fee is charged from the caller's prepaid deposit and split
// between the contract owner and the ratee according to the configured
// operator equity percentage. Both shares are credited to pending balances
// withdrawable via Withdraw. An uncovered fee fails the whole call.
//
// On success, produces Rated notification and returns the clamped score.
func Rate(caller interop.Hash160, ratee interop.Hash160, score int, comment []byte, tag []byte) int {
	ctx := storage.GetContext()

	if len(caller) != interop.Hash160Len {
		panic("incorrect caller account")
	}
	common.CheckOwnerWitness(caller)

	fee := cfgInt(ctx, cst.ReputationPriceKey, cst.DefaultReputationPrice)
	if common.GetAccount(ctx, depositPrefix, caller).Balance < fee {
		panic(rcst.ErrInsufficientBalance)
	}

	return rate(ctx, caller, ratee, score, comment, tag, fee)
}

// RateBatch applies a sequence of ratings from the caller in input order. The
// i-th elements of ratees, scores, comments and tags form one rating. The
// caller's deposit must cover the total fee of the whole batch up front and
// any per-entry validation failure discards the batch entirely.
func RateBatch(caller interop.Hash160, ratees []interop.Hash160, scores []int, comments [][]byte, tags [][]byte) {
	ctx := storage.GetContext()

	if len(caller) != interop.Hash160Len {
		panic("incorrect caller account")
	}
	common.CheckOwnerWitness(caller)

	if len(scores) != len(ratees) || len(comments) != len(ratees) || len(tags) != len(ratees) {
		panic(rcst.ErrLengthMismatch)
	}

	fee := cfgInt(ctx, cst.ReputationPriceKey, cst.DefaultReputationPrice)
	if common.GetAccount(ctx, depositPrefix, caller).Balance < fee*len(ratees) {
		panic(rcst.ErrInsufficientBalance)
	}

	for i := 0; i < len(ratees); i++ {
		rate(ctx, caller, ratees[i], scores[i], comments[i], tags[i], fee)
	}
}

// Delete removes the caller's live rating of the given address, subtracting
// its score from the ratee's aggregate. Fails if no such rating exists.
// Produces RatingRemoved notification.
func Delete(caller interop.Hash160, ratee interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)

	key := entryKey(caller, ratee)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(rcst.ErrEntryNotFound)
	}

	entry := std.Deserialize(data.([]byte)).(Entry)
	addAggregate(ctx, ratee, -entry.Score)

	storage.Delete(ctx, key)
	storage.Delete(ctx, pairKey(givenPrefix, caller, ratee))
	storage.Delete(ctx, pairKey(receivedPrefix, ratee, caller))

	runtime.Notify("RatingRemoved", caller, ratee)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract. Any
// received GAS is credited to the sender's prepaid deposit which rating fees
// are later charged from. Produces Deposit notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS is accepted for deposit")
	}
	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	common.CreditAccount(ctx, depositPrefix, from, amount)
	runtime.Notify("Deposit", from, amount)
}

// Withdraw transfers accumulated revenue from the caller's pending balance
// back to the caller's account. Zero amount means the whole pending balance.
// The local balance is updated before the outward GAS transfer so a
// reentering call can never observe a stale balance.
func Withdraw(caller interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	withdrawFrom(ctx, pendingPrefix, caller, amount)
}

// WithdrawDeposit transfers an unused part of the caller's prepaid deposit
// back to the caller's account. Zero amount means the whole deposit.
func WithdrawDeposit(caller interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	withdrawFrom(ctx, depositPrefix, caller, amount)
}

// EntryOf returns the live rating from rater to ratee. Fails if no such
// rating exists.
func EntryOf(rater interop.Hash160, ratee interop.Hash160) Entry {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, entryKey(rater, ratee))
	if data == nil {
		panic(rcst.ErrEntryNotFound)
	}

	return std.Deserialize(data.([]byte)).(Entry)
}

// ScoreOf returns the aggregate reputation of the given address, the signed
// sum of all its live ratings. Unrated addresses have zero aggregate.
func ScoreOf(ratee interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, append([]byte{aggregatePrefix}, ratee...))
	if data == nil {
		return 0
	}

	return data.(int)
}

// IsCommentMatch returns true if the given comment hashes to the comment
// hash stored in the live rating from rater to ratee. Fails if no such rating
// exists.
func IsCommentMatch(rater interop.Hash160, ratee interop.Hash160, comment []byte) bool {
	entry := EntryOf(rater, ratee)
	return common.BytesEqual([]byte(crypto.Sha256(comment)), entry.CommentHash)
}

// RatersOf returns an iterator over addresses that currently rate the given
// address.
func RatersOf(ratee interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{receivedPrefix}, ratee...),
		storage.KeysOnly|storage.RemovePrefix)
}

// RateesOf returns an iterator over addresses currently rated by the given
// address.
func RateesOf(rater interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{givenPrefix}, rater...),
		storage.KeysOnly|storage.RemovePrefix)
}

// BalanceOf returns the prepaid deposit of the given address.
func BalanceOf(addr interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetAccount(ctx, depositPrefix, addr).Balance
}

// PendingOf returns the pending (withdrawable) revenue balance of the given
// address.
func PendingOf(addr interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetAccount(ctx, pendingPrefix, addr).Balance
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func rate(ctx storage.Context, caller, ratee interop.Hash160, score int, comment, tag []byte, fee int) int {
	if len(ratee) != interop.Hash160Len {
		panic("incorrect ratee account")
	}
	if len(comment) > cfgInt(ctx, cst.MaxCommentLengthKey, cst.DefaultMaxCommentLength) {
		panic(rcst.ErrCommentTooLong)
	}
	if len(tag) > cfgInt(ctx, cst.MaxTagLengthKey, cst.DefaultMaxTagLength) {
		panic(rcst.ErrTagTooLong)
	}

	maxScore := cfgInt(ctx, cst.MaxReputationKey, cst.DefaultMaxReputation)
	if score > maxScore {
		score = maxScore
	} else if score < -maxScore {
		score = -maxScore
	}

	if fee > 0 {
		if !common.DebitAccount(ctx, depositPrefix, caller, fee) {
			panic(rcst.ErrInsufficientBalance)
		}

		// Multiply before divide, the remainder of the integer split always
		// goes to the ratee.
		operatorShare := fee * cfgInt(ctx, cst.OperatorEquityKey, cst.DefaultOperatorEquity) / 100
		if operatorShare > 0 {
			common.CreditAccount(ctx, pendingPrefix, common.ContractOwner(ctx), operatorShare)
		}
		if fee-operatorShare > 0 {
			common.CreditAccount(ctx, pendingPrefix, ratee, fee-operatorShare)
		}
	}

	key := entryKey(caller, ratee)
	if prev := storage.Get(ctx, key); prev != nil {
		addAggregate(ctx, ratee, -std.Deserialize(prev.([]byte)).(Entry).Score)
	}

	now := runtime.GetTime()
	common.SetSerialized(ctx, key, Entry{
		Score:       score,
		Timestamp:   now,
		CommentHash: []byte(crypto.Sha256(comment)),
		Tag:         tag,
	})
	addAggregate(ctx, ratee, score)

	storage.Put(ctx, pairKey(givenPrefix, caller, ratee), []byte{1})
	storage.Put(ctx, pairKey(receivedPrefix, ratee, caller), []byte{1})

	runtime.Notify("Rated", caller, ratee, score, comment, now)

	return score
}

func withdrawFrom(ctx storage.Context, prefix byte, caller interop.Hash160, amount int) {
	available := common.GetAccount(ctx, prefix, caller).Balance
	if amount == 0 {
		amount = available
	}
	if amount <= 0 || !common.DebitAccount(ctx, prefix, caller, amount) {
		panic(rcst.ErrInsufficientBalance)
	}

	if !gas.Transfer(runtime.GetExecutingScriptHash(), caller, amount, nil) {
		panic(rcst.ErrTransferFailed)
	}

	runtime.Notify("Withdraw", caller, amount)
}

func entryKey(rater, ratee interop.Hash160) []byte {
	return pairKey(entryPrefix, rater, ratee)
}

func pairKey(prefix byte, first, second interop.Hash160) []byte {
	return append(append([]byte{prefix}, first...), second...)
}

func addAggregate(ctx storage.Context, ratee interop.Hash160, delta int) {
	key := append([]byte{aggregatePrefix}, ratee...)

	total := 0
	if data := storage.Get(ctx, key); data != nil {
		total = data.(int)
	}
	total += delta

	if total == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, total)
	}
}

func cfgInt(ctx storage.Context, key string, def int) int {
	ncAddr := storage.Get(ctx, netconfigContractKey).(interop.Hash160)
	raw := contract.Call(ncAddr, "config", contract.ReadOnly, key)
	if raw == nil {
		return def
	}

	return raw.(int)
}

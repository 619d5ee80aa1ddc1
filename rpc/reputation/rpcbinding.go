// Package reputation contains RPC wrappers for Social Reputation contract.
package reputation

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ReputationEntry is a contract-specific reputation.Entry type used by its methods.
type ReputationEntry struct {
	Score       *big.Int
	Timestamp   *big.Int
	CommentHash []byte
	Tag         []byte
}

// RatedEvent represents "Rated" event emitted by the contract.
type RatedEvent struct {
	Rater     util.Uint160
	Ratee     util.Uint160
	Score     *big.Int
	Comment   []byte
	Timestamp *big.Int
}

// RatingRemovedEvent represents "RatingRemoved" event emitted by the contract.
type RatingRemovedEvent struct {
	Rater util.Uint160
	Ratee util.Uint160
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From   util.Uint160
	Amount *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	To     util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(addr util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", addr))
}

// EntryOf invokes `entryOf` method of contract.
func (c *ContractReader) EntryOf(rater util.Uint160, ratee util.Uint160) (*ReputationEntry, error) {
	return itemToReputationEntry(unwrap.Item(c.invoker.Call(c.hash, "entryOf", rater, ratee)))
}

// IsCommentMatch invokes `isCommentMatch` method of contract.
func (c *ContractReader) IsCommentMatch(rater util.Uint160, ratee util.Uint160, comment []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isCommentMatch", rater, ratee, comment))
}

// PendingOf invokes `pendingOf` method of contract.
func (c *ContractReader) PendingOf(addr util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingOf", addr))
}

// RateesOf invokes `rateesOf` method of contract.
func (c *ContractReader) RateesOf(rater util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "rateesOf", rater))
}

// RateesOfExpanded is similar to RateesOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) RateesOfExpanded(rater util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "rateesOf", _numOfIteratorItems, rater))
}

// RatersOf invokes `ratersOf` method of contract.
func (c *ContractReader) RatersOf(ratee util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "ratersOf", ratee))
}

// RatersOfExpanded is similar to RatersOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) RatersOfExpanded(ratee util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "ratersOf", _numOfIteratorItems, ratee))
}

// ScoreOf invokes `scoreOf` method of contract.
func (c *ContractReader) ScoreOf(ratee util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "scoreOf", ratee))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Delete creates a transaction invoking `delete` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Delete(caller util.Uint160, ratee util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "delete", caller, ratee)
}

// DeleteTransaction creates a transaction invoking `delete` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeleteTransaction(caller util.Uint160, ratee util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "delete", caller, ratee)
}

// DeleteUnsigned creates a transaction invoking `delete` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeleteUnsigned(caller util.Uint160, ratee util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "delete", nil, caller, ratee)
}

// Rate creates a transaction invoking `rate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Rate(caller util.Uint160, ratee util.Uint160, score *big.Int, comment []byte, tag []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rate", caller, ratee, score, comment, tag)
}

// RateTransaction creates a transaction invoking `rate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RateTransaction(caller util.Uint160, ratee util.Uint160, score *big.Int, comment []byte, tag []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rate", caller, ratee, score, comment, tag)
}

// RateUnsigned creates a transaction invoking `rate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RateUnsigned(caller util.Uint160, ratee util.Uint160, score *big.Int, comment []byte, tag []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rate", nil, caller, ratee, score, comment, tag)
}

// RateBatch creates a transaction invoking `rateBatch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RateBatch(caller util.Uint160, ratees []util.Uint160, scores []*big.Int, comments [][]byte, tags [][]byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rateBatch", caller, ratees, scores, comments, tags)
}

// RateBatchTransaction creates a transaction invoking `rateBatch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RateBatchTransaction(caller util.Uint160, ratees []util.Uint160, scores []*big.Int, comments [][]byte, tags [][]byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rateBatch", caller, ratees, scores, comments, tags)
}

// RateBatchUnsigned creates a transaction invoking `rateBatch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RateBatchUnsigned(caller util.Uint160, ratees []util.Uint160, scores []*big.Int, comments [][]byte, tags [][]byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rateBatch", nil, caller, ratees, scores, comments, tags)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(caller util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", caller, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(caller util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", caller, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(caller util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, caller, amount)
}

// WithdrawDeposit creates a transaction invoking `withdrawDeposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawDeposit(caller util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawDeposit", caller, amount)
}

// WithdrawDepositTransaction creates a transaction invoking `withdrawDeposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawDepositTransaction(caller util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawDeposit", caller, amount)
}

// WithdrawDepositUnsigned creates a transaction invoking `withdrawDeposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawDepositUnsigned(caller util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawDeposit", nil, caller, amount)
}

// itemToReputationEntry converts stack item into *ReputationEntry.
func itemToReputationEntry(item stackitem.Item, err error) (*ReputationEntry, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReputationEntry)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReputationEntry from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReputationEntry) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.CommentHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field CommentHash: %w", err)
	}

	index++
	res.Tag, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Tag: %w", err)
	}

	return nil
}

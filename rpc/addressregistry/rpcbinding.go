// Package addressregistry contains RPC wrappers for Social Address Registry contract.
package addressregistry

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// GroupCreatedEvent represents "GroupCreated" event emitted by the contract.
type GroupCreatedEvent struct {
	Rsid    *big.Int
	Founder util.Uint160
}

// RegistrationSkippedEvent represents "RegistrationSkipped" event emitted by the contract.
type RegistrationSkippedEvent struct {
	Caller    util.Uint160
	Fee       *big.Int
	Deposited *big.Int
}

// AddressesUpdatedEvent represents "AddressesUpdated" event emitted by the contract.
type AddressesUpdatedEvent struct {
	Rsid      *big.Int
	Addresses []util.Uint160
}

// AddressRemovedEvent represents "AddressRemoved" event emitted by the contract.
type AddressRemovedEvent struct {
	Rsid    *big.Int
	Address util.Uint160
}

// DelegateAddedEvent represents "DelegateAdded" event emitted by the contract.
type DelegateAddedEvent struct {
	Rsid     *big.Int
	Delegate util.Uint160
}

// DelegateChangedEvent represents "DelegateChanged" event emitted by the contract.
type DelegateChangedEvent struct {
	Rsid     *big.Int
	Previous util.Uint160
	Delegate util.Uint160
}

// DelegateRemovedEvent represents "DelegateRemoved" event emitted by the contract.
type DelegateRemovedEvent struct {
	Rsid     *big.Int
	Delegate util.Uint160
}

// TagAddedEvent represents "TagAdded" event emitted by the contract.
type TagAddedEvent struct {
	Rsid     *big.Int
	Contract util.Uint160
}

// TagRemovedEvent represents "TagRemoved" event emitted by the contract.
type TagRemovedEvent struct {
	Rsid     *big.Int
	Contract util.Uint160
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

// Delegate invokes `delegate` method of contract.
func (c *ContractReader) Delegate(rsid *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "delegate", rsid))
}

// Founder invokes `founder` method of contract.
func (c *ContractReader) Founder(rsid *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "founder", rsid))
}

// GroupsOf invokes `groupsOf` method of contract.
func (c *ContractReader) GroupsOf(addr util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "groupsOf", addr))
}

// IsDelegate invokes `isDelegate` method of contract.
func (c *ContractReader) IsDelegate(rsid *big.Int, addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isDelegate", rsid, addr))
}

// IsMember invokes `isMember` method of contract.
func (c *ContractReader) IsMember(rsid *big.Int, addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isMember", rsid, addr))
}

// IterateGroups invokes `iterateGroups` method of contract.
func (c *ContractReader) IterateGroups() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateGroups"))
}

// IterateGroupsExpanded is similar to IterateGroups (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateGroupsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateGroups", _numOfIteratorItems))
}

// Members invokes `members` method of contract.
func (c *ContractReader) Members(rsid *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "members", rsid))
}

// PendingOf invokes `pendingOf` method of contract.
func (c *ContractReader) PendingOf(addr util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingOf", addr))
}

// Tags invokes `tags` method of contract.
func (c *ContractReader) Tags(rsid *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "tags", rsid))
}

// Total invokes `total` method of contract.
func (c *ContractReader) Total() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "total"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddDelegate creates a transaction invoking `addDelegate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddDelegate(caller util.Uint160, rsid *big.Int, who util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addDelegate", caller, rsid, who)
}

// AddDelegateTransaction creates a transaction invoking `addDelegate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddDelegateTransaction(caller util.Uint160, rsid *big.Int, who util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addDelegate", caller, rsid, who)
}

// AddDelegateUnsigned creates a transaction invoking `addDelegate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddDelegateUnsigned(caller util.Uint160, rsid *big.Int, who util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addDelegate", nil, caller, rsid, who)
}

// AddTags creates a transaction invoking `addTags` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddTags(caller util.Uint160, rsid *big.Int, contracts []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addTags", caller, rsid, contracts)
}

// AddTagsTransaction creates a transaction invoking `addTags` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddTagsTransaction(caller util.Uint160, rsid *big.Int, contracts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addTags", caller, rsid, contracts)
}

// AddTagsUnsigned creates a transaction invoking `addTags` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddTagsUnsigned(caller util.Uint160, rsid *big.Int, contracts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addTags", nil, caller, rsid, contracts)
}

// ChangeDelegate creates a transaction invoking `changeDelegate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeDelegate(caller util.Uint160, rsid *big.Int, who util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeDelegate", caller, rsid, who)
}

// ChangeDelegateTransaction creates a transaction invoking `changeDelegate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeDelegateTransaction(caller util.Uint160, rsid *big.Int, who util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeDelegate", caller, rsid, who)
}

// ChangeDelegateUnsigned creates a transaction invoking `changeDelegate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeDelegateUnsigned(caller util.Uint160, rsid *big.Int, who util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeDelegate", nil, caller, rsid, who)
}

// CreateGroup creates a transaction invoking `createGroup` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateGroup(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createGroup", caller)
}

// CreateGroupTransaction creates a transaction invoking `createGroup` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateGroupTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createGroup", caller)
}

// CreateGroupUnsigned creates a transaction invoking `createGroup` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateGroupUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createGroup", nil, caller)
}

// RemoveAddress creates a transaction invoking `removeAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveAddress(caller util.Uint160, rsid *big.Int, target util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeAddress", caller, rsid, target)
}

// RemoveAddressTransaction creates a transaction invoking `removeAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveAddressTransaction(caller util.Uint160, rsid *big.Int, target util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeAddress", caller, rsid, target)
}

// RemoveAddressUnsigned creates a transaction invoking `removeAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveAddressUnsigned(caller util.Uint160, rsid *big.Int, target util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeAddress", nil, caller, rsid, target)
}

// RemoveDelegate creates a transaction invoking `removeDelegate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveDelegate(caller util.Uint160, rsid *big.Int, who util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeDelegate", caller, rsid, who)
}

// RemoveDelegateTransaction creates a transaction invoking `removeDelegate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveDelegateTransaction(caller util.Uint160, rsid *big.Int, who util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeDelegate", caller, rsid, who)
}

// RemoveDelegateUnsigned creates a transaction invoking `removeDelegate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveDelegateUnsigned(caller util.Uint160, rsid *big.Int, who util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeDelegate", nil, caller, rsid, who)
}

// RemoveSelf creates a transaction invoking `removeSelf` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveSelf(caller util.Uint160, rsid *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeSelf", caller, rsid)
}

// RemoveSelfTransaction creates a transaction invoking `removeSelf` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveSelfTransaction(caller util.Uint160, rsid *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeSelf", caller, rsid)
}

// RemoveSelfUnsigned creates a transaction invoking `removeSelf` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveSelfUnsigned(caller util.Uint160, rsid *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeSelf", nil, caller, rsid)
}

// RemoveTag creates a transaction invoking `removeTag` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveTag(caller util.Uint160, rsid *big.Int, addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeTag", caller, rsid, addr)
}

// RemoveTagTransaction creates a transaction invoking `removeTag` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveTagTransaction(caller util.Uint160, rsid *big.Int, addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeTag", caller, rsid, addr)
}

// RemoveTagUnsigned creates a transaction invoking `removeTag` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveTagUnsigned(caller util.Uint160, rsid *big.Int, addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeTag", nil, caller, rsid, addr)
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

// UpdateAddresses creates a transaction invoking `updateAddresses` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateAddresses(caller util.Uint160, rsid *big.Int, addrs []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateAddresses", caller, rsid, addrs)
}

// UpdateAddressesTransaction creates a transaction invoking `updateAddresses` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateAddressesTransaction(caller util.Uint160, rsid *big.Int, addrs []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateAddresses", caller, rsid, addrs)
}

// UpdateAddressesUnsigned creates a transaction invoking `updateAddresses` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateAddressesUnsigned(caller util.Uint160, rsid *big.Int, addrs []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateAddresses", nil, caller, rsid, addrs)
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

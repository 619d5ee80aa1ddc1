package addressregistry

import (
	"github.com/alexpaden/social-contract/common"
	rcst "github.com/alexpaden/social-contract/contracts/addressregistry/registryconst"
	cst "github.com/alexpaden/social-contract/contracts/netconfig/netconfigconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	counterKey           = "rsidCounter"
	netconfigContractKey = "netconfigScriptHash"

	memberPrefix   = 'm'
	flagPrefix     = 'f'
	founderPrefix  = 'o'
	delegatePrefix = 'd'
	reversePrefix  = 'r'
	tagPrefix      = 't'
	depositPrefix  = 'a'
	pendingPrefix  = 'p'
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
	storage.Put(ctx, counterKey, 0)

	runtime.Log("address registry contract initialized")
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
	runtime.Log("address registry contract updated")
}

// CreateGroup allocates the next social ID and registers the caller as its
// sole member and immutable founder. The caller must not exceed the configured
// maximum of associated social IDs and must have a prepaid deposit covering
// the registration fee.
//
// Underpaid registration does not abort the transaction: the contract emits a
// RegistrationSkipped notification and returns 0 while the rest of the call
// state stays untouched. This is the only fail-soft validation in the suite,
// kept for compatibility with the original registry behavior.
//
// The registration fee is moved from the caller's deposit to the pending
// balance of the contract owner. On success, the method produces GroupCreated
// notification and returns the new social ID.
func CreateGroup(caller interop.Hash160) int {
	ctx := storage.GetContext()

	if len(caller) != interop.Hash160Len {
		panic("incorrect caller account")
	}
	common.CheckOwnerWitness(caller)

	maxIDs := cfgInt(ctx, cst.MaxAssociatedIDsKey, cst.DefaultMaxAssociatedIDs)
	if len(groupsOf(ctx, caller)) >= maxIDs {
		panic(rcst.ErrAssociationLimit)
	}

	fee := cfgInt(ctx, cst.RegistrationFeeKey, cst.DefaultRegistrationFee)
	deposited := common.GetAccount(ctx, depositPrefix, caller).Balance
	if deposited < fee {
		runtime.Log("registration fee is not covered, group is not created")
		runtime.Notify("RegistrationSkipped", caller, fee, deposited)
		return 0
	}

	if fee > 0 {
		common.DebitAccount(ctx, depositPrefix, caller, fee)
		common.CreditAccount(ctx, pendingPrefix, common.ContractOwner(ctx), fee)
	}

	rsid := storage.Get(ctx, counterKey).(int) + 1
	storage.Put(ctx, counterKey, rsid)

	common.SetSerialized(ctx, groupKey(memberPrefix, rsid), []interop.Hash160{caller})
	storage.Put(ctx, addrKey(flagPrefix, rsid, caller), []byte{1})
	storage.Put(ctx, groupKey(founderPrefix, rsid), caller)
	appendReverse(ctx, caller, rsid)

	runtime.Notify("GroupCreated", rsid, caller)

	return rsid
}

// UpdateAddresses associates a batch of new addresses with an existing group.
// The caller must be an associated member or the delegate of the group. If the
// caller's primary group differs from the target one, the caller is migrated
// out of the primary group first.
//
// Every address of the batch must stay within its own associated ID limit and
// must not already belong to the group, otherwise the whole call fails. The
// method produces a single AddressesUpdated notification carrying the batch.
func UpdateAddresses(caller interop.Hash160, rsid int, addrs []interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	if !isMemberOrDelegate(ctx, rsid, caller) {
		panic(rcst.ErrNotMemberOrDelegate)
	}

	primary := primaryOf(ctx, caller)
	if primary != 0 && primary != rsid {
		removeMember(ctx, primary, caller)
	}

	maxIDs := cfgInt(ctx, cst.MaxAssociatedIDsKey, cst.DefaultMaxAssociatedIDs)
	list := members(ctx, rsid)

	for i := 0; i < len(addrs); i++ {
		addr := addrs[i]
		if len(addr) != interop.Hash160Len {
			panic("incorrect address")
		}
		if len(groupsOf(ctx, addr)) >= maxIDs {
			panic(rcst.ErrAssociationLimit)
		}
		if isAssociated(ctx, rsid, addr) {
			panic(rcst.ErrAlreadyAssociated)
		}

		list = append(list, addr)
		storage.Put(ctx, addrKey(flagPrefix, rsid, addr), []byte{1})
		appendReverse(ctx, addr, rsid)
	}

	common.SetSerialized(ctx, groupKey(memberPrefix, rsid), list)

	runtime.Notify("AddressesUpdated", rsid, addrs)
}

// RemoveSelf dissociates the caller from the group. No authorization beyond
// the caller's own membership is required. Produces AddressRemoved
// notification.
func RemoveSelf(caller interop.Hash160, rsid int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	if !isAssociated(ctx, rsid, caller) {
		panic(rcst.ErrNotAssociated)
	}

	removeMember(ctx, rsid, caller)
	runtime.Notify("AddressRemoved", rsid, caller)
}

// RemoveAddress dissociates another member from the group. If the group has a
// delegate, only the delegate may remove members. Otherwise only the group
// founder may. Produces AddressRemoved notification.
func RemoveAddress(caller interop.Hash160, rsid int, target interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	if !isAssociated(ctx, rsid, target) {
		panic(rcst.ErrNotAssociated)
	}

	del := delegateOf(ctx, rsid)
	if del != nil {
		if !caller.Equals(del) {
			panic(rcst.ErrOnlyDelegate)
		}
	} else if !caller.Equals(founderOf(ctx, rsid)) {
		panic(rcst.ErrOnlyFounder)
	}

	removeMember(ctx, rsid, target)
	runtime.Notify("AddressRemoved", rsid, target)
}

// AddDelegate grants the single delegate slot of the group to the given
// address. The caller must be an associated member. When the
// DelegateMustBeMember configuration flag is set, the delegate candidate must
// be an associated member as well. Fails if the group already has a delegate.
// Produces DelegateAdded notification.
func AddDelegate(caller interop.Hash160, rsid int, who interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	if !isAssociated(ctx, rsid, caller) {
		panic(rcst.ErrNotAssociated)
	}
	if len(who) != interop.Hash160Len {
		panic("incorrect delegate account")
	}
	if cfgInt(ctx, cst.DelegateMustBeMemberKey, cst.DefaultDelegateMustBeMember) != 0 &&
		!isAssociated(ctx, rsid, who) {
		panic(rcst.ErrDelegateNotMember)
	}
	if delegateOf(ctx, rsid) != nil {
		panic(rcst.ErrDelegateSet)
	}

	storage.Put(ctx, groupKey(delegatePrefix, rsid), who)
	runtime.Notify("DelegateAdded", rsid, who)
}

// ChangeDelegate replaces the current delegate of the group with a new
// address. It can be invoked only by the current delegate itself. Produces
// DelegateChanged notification.
func ChangeDelegate(caller interop.Hash160, rsid int, who interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	cur := delegateOf(ctx, rsid)
	if cur == nil {
		panic(rcst.ErrNoDelegate)
	}
	if !caller.Equals(cur) {
		panic(rcst.ErrOnlyCurrentDelegate)
	}
	if len(who) != interop.Hash160Len {
		panic("incorrect delegate account")
	}

	storage.Put(ctx, groupKey(delegatePrefix, rsid), who)
	runtime.Notify("DelegateChanged", rsid, cur, who)
}

// RemoveDelegate clears the delegate slot of the group. The passed address
// must be the current delegate and the caller must be an associated member
// (any member, not only the delegate). Produces DelegateRemoved notification.
func RemoveDelegate(caller interop.Hash160, rsid int, who interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	cur := delegateOf(ctx, rsid)
	if cur == nil {
		panic(rcst.ErrNoDelegate)
	}
	if !who.Equals(cur) {
		panic(rcst.ErrNotDelegate)
	}
	if !isAssociated(ctx, rsid, caller) {
		panic(rcst.ErrNotAssociated)
	}

	storage.Delete(ctx, groupKey(delegatePrefix, rsid))
	runtime.Notify("DelegateRemoved", rsid, who)
}

// AddTags appends a batch of contract addresses to the tag list of the group.
// The caller must be an associated member or the delegate. The whole batch is
// rejected if it would push the tag count above the configured maximum or if
// any address duplicates an existing tag. Produces one TagAdded notification
// per appended address.
func AddTags(caller interop.Hash160, rsid int, contracts []interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	if !isMemberOrDelegate(ctx, rsid, caller) {
		panic(rcst.ErrNotMemberOrDelegate)
	}

	list := tags(ctx, rsid)
	maxTags := cfgInt(ctx, cst.MaxTaggedContractsKey, cst.DefaultMaxTaggedContracts)
	if len(list)+len(contracts) > maxTags {
		panic(rcst.ErrTagLimit)
	}

	for i := 0; i < len(contracts); i++ {
		addr := contracts[i]
		if len(addr) != interop.Hash160Len {
			panic("incorrect contract address")
		}
		for j := 0; j < len(list); j++ {
			if list[j].Equals(addr) {
				panic(rcst.ErrTagExists)
			}
		}

		list = append(list, addr)
		runtime.Notify("TagAdded", rsid, addr)
	}

	common.SetSerialized(ctx, groupKey(tagPrefix, rsid), list)
}

// RemoveTag removes a single contract address from the tag list of the group.
// The caller must be an associated member or the delegate. Fails if the
// address is not tagged. Produces TagRemoved notification.
func RemoveTag(caller interop.Hash160, rsid int, addr interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)
	requireGroup(ctx, rsid)

	if !isMemberOrDelegate(ctx, rsid, caller) {
		panic(rcst.ErrNotMemberOrDelegate)
	}

	list := tags(ctx, rsid)
	found := false
	for i := 0; i < len(list); i++ {
		if list[i].Equals(addr) {
			last := len(list) - 1
			list[i] = list[last]
			trimmed := []interop.Hash160{}
			for j := 0; j < last; j++ {
				trimmed = append(trimmed, list[j])
			}
			list = trimmed
			found = true
			break
		}
	}
	if !found {
		panic(rcst.ErrTagNotFound)
	}

	common.SetSerialized(ctx, groupKey(tagPrefix, rsid), list)
	runtime.Notify("TagRemoved", rsid, addr)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract. Any
// received GAS is credited to the sender's prepaid deposit which registration
// fees are later charged from. Produces Deposit notification.
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

// Withdraw transfers collected registration fees from the caller's pending
// balance back to the caller's account. Zero amount means the whole pending
// balance. The local balance is updated before the outward GAS transfer so a
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

// Members returns the member list of the group. Member order is not stable
// across removals.
func Members(rsid int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	requireGroup(ctx, rsid)

	return members(ctx, rsid)
}

// Founder returns the address that created the group. The founder does not
// change for the group's lifetime, even after leaving it.
func Founder(rsid int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	requireGroup(ctx, rsid)

	return founderOf(ctx, rsid)
}

// Delegate returns the current delegate of the group. Fails if no delegate is
// set.
func Delegate(rsid int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	requireGroup(ctx, rsid)

	del := delegateOf(ctx, rsid)
	if del == nil {
		panic(rcst.ErrNoDelegate)
	}

	return del
}

// IsDelegate returns true if the given address is the current delegate of the
// group.
func IsDelegate(rsid int, addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	requireGroup(ctx, rsid)

	del := delegateOf(ctx, rsid)
	return del != nil && addr.Equals(del)
}

// IsMember returns true if the given address is an associated member of the
// group.
func IsMember(rsid int, addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	requireGroup(ctx, rsid)

	return isAssociated(ctx, rsid, addr)
}

// GroupsOf returns the list of social IDs the given address is associated
// with, first of which is the address' primary group.
func GroupsOf(addr interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()
	return groupsOf(ctx, addr)
}

// Tags returns tagged contract addresses of the group.
func Tags(rsid int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	requireGroup(ctx, rsid)

	return tags(ctx, rsid)
}

// Total returns the last issued social ID. IDs are issued sequentially
// starting from 1 and are never reused.
func Total() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, counterKey).(int)
}

// BalanceOf returns the prepaid deposit of the given address.
func BalanceOf(addr interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetAccount(ctx, depositPrefix, addr).Balance
}

// PendingOf returns the pending (withdrawable) fee balance of the given
// address.
func PendingOf(addr interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetAccount(ctx, pendingPrefix, addr).Balance
}

// IterateGroups returns an iterator over all registered groups. Iteration is
// through key-value pairs where key is the social ID and value is the
// serialized member list.
func IterateGroups() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{memberPrefix}, storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
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

func groupKey(prefix byte, rsid int) []byte {
	return append([]byte{prefix}, convert.ToBytes(rsid)...)
}

func addrKey(prefix byte, rsid int, addr interop.Hash160) []byte {
	return append(groupKey(prefix, rsid), addr...)
}

func requireGroup(ctx storage.Context, rsid int) {
	if rsid <= 0 || storage.Get(ctx, groupKey(memberPrefix, rsid)) == nil {
		panic(rcst.ErrGroupNotFound)
	}
}

func members(ctx storage.Context, rsid int) []interop.Hash160 {
	data := storage.Get(ctx, groupKey(memberPrefix, rsid))
	if data != nil {
		return std.Deserialize(data.([]byte)).([]interop.Hash160)
	}

	return []interop.Hash160{}
}

func tags(ctx storage.Context, rsid int) []interop.Hash160 {
	data := storage.Get(ctx, groupKey(tagPrefix, rsid))
	if data != nil {
		return std.Deserialize(data.([]byte)).([]interop.Hash160)
	}

	return []interop.Hash160{}
}

func groupsOf(ctx storage.Context, addr interop.Hash160) []int {
	data := storage.Get(ctx, append([]byte{reversePrefix}, addr...))
	if data != nil {
		return std.Deserialize(data.([]byte)).([]int)
	}

	return []int{}
}

// primaryOf resolves the primary social ID of the address, 0 if the address
// is not associated with any group.
func primaryOf(ctx storage.Context, addr interop.Hash160) int {
	ids := groupsOf(ctx, addr)
	if len(ids) == 0 {
		return 0
	}

	return ids[0]
}

func isAssociated(ctx storage.Context, rsid int, addr interop.Hash160) bool {
	return storage.Get(ctx, addrKey(flagPrefix, rsid, addr)) != nil
}

func isMemberOrDelegate(ctx storage.Context, rsid int, addr interop.Hash160) bool {
	if isAssociated(ctx, rsid, addr) {
		return true
	}

	del := delegateOf(ctx, rsid)
	return del != nil && addr.Equals(del)
}

func delegateOf(ctx storage.Context, rsid int) interop.Hash160 {
	data := storage.Get(ctx, groupKey(delegatePrefix, rsid))
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

func founderOf(ctx storage.Context, rsid int) interop.Hash160 {
	return storage.Get(ctx, groupKey(founderPrefix, rsid)).(interop.Hash160)
}

func appendReverse(ctx storage.Context, addr interop.Hash160, rsid int) {
	ids := append(groupsOf(ctx, addr), rsid)
	common.SetSerialized(ctx, append([]byte{reversePrefix}, addr...), ids)
}

// removeMember dissociates the address from the group keeping the member list
// and the reverse index symmetric. Both lists shrink with swap-and-pop, so
// element order is not preserved.
func removeMember(ctx storage.Context, rsid int, addr interop.Hash160) {
	list := members(ctx, rsid)
	for i := 0; i < len(list); i++ {
		if list[i].Equals(addr) {
			last := len(list) - 1
			list[i] = list[last]
			trimmed := []interop.Hash160{}
			for j := 0; j < last; j++ {
				trimmed = append(trimmed, list[j])
			}
			list = trimmed
			break
		}
	}
	common.SetSerialized(ctx, groupKey(memberPrefix, rsid), list)
	storage.Delete(ctx, addrKey(flagPrefix, rsid, addr))

	ids := groupsOf(ctx, addr)
	for i := 0; i < len(ids); i++ {
		if ids[i] == rsid {
			last := len(ids) - 1
			ids[i] = ids[last]
			trimmed := []int{}
			for j := 0; j < last; j++ {
				trimmed = append(trimmed, ids[j])
			}
			ids = trimmed
			break
		}
	}

	revKey := append([]byte{reversePrefix}, addr...)
	if len(ids) == 0 {
		storage.Delete(ctx, revKey)
	} else {
		common.SetSerialized(ctx, revKey, ids)
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

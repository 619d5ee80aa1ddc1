/*
Package addressregistry implements Address Registry contract which is a part of
the social contract suite. The registry maintains groups of addresses sharing a
single social ID (RSID): any address may register a new group by paying a
registration fee from its prepaid GAS deposit, after which more addresses can
be associated with the group by its members or by a dedicated delegate. Each
group also keeps a short list of tagged contract addresses describing it.

Social IDs are issued sequentially starting from 1 and are never reused.
Configuration limits (registration fee, association and tag caps, delegate
membership requirement) are read from the Netconfig contract at call time.

# Contract notifications

GroupCreated notification. This notification is produced when a new group is
registered. Carries the new social ID and the founder address.

	GroupCreated
	  - name: rsid
	    type: Integer
	  - name: founder
	    type: Hash160

RegistrationSkipped notification. Produced instead of GroupCreated when the
caller's deposit does not cover the registration fee. The call itself does not
fail in this case.

	RegistrationSkipped
	  - name: caller
	    type: Hash160
	  - name: fee
	    type: Integer
	  - name: deposited
	    type: Integer

AddressesUpdated notification. Produced once per successful UpdateAddresses
call, carrying the whole associated batch.

	AddressesUpdated
	  - name: rsid
	    type: Integer
	  - name: addresses
	    type: Array

AddressRemoved notification. Produced when a member leaves or is removed from
a group.

	AddressRemoved
	  - name: rsid
	    type: Integer
	  - name: address
	    type: Hash160

DelegateAdded, DelegateChanged and DelegateRemoved notifications track the
single delegate slot of a group.

	DelegateAdded
	  - name: rsid
	    type: Integer
	  - name: delegate
	    type: Hash160

	DelegateChanged
	  - name: rsid
	    type: Integer
	  - name: previous
	    type: Hash160
	  - name: delegate
	    type: Hash160

	DelegateRemoved
	  - name: rsid
	    type: Integer
	  - name: delegate
	    type: Hash160

TagAdded and TagRemoved notifications track the tagged contract list.

	TagAdded
	  - name: rsid
	    type: Integer
	  - name: contract
	    type: Hash160

	TagRemoved
	  - name: rsid
	    type: Integer
	  - name: contract
	    type: Hash160

Deposit notification. Produced when GAS is attached to the registry via
NEP-17 transfer.

	Deposit
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification. Produced when pending fees or an unused deposit are
transferred back to their owner.

	Withdraw
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package addressregistry

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'rsidCounter' -> int
    last issued social ID
  - 'netconfigScriptHash' -> interop.Hash160
    Netconfig contract reference
  - 'contractOwner' -> interop.Hash160
    owner of the contract, receives registration fees
  - 'm' + rsid -> std.Serialize([]interop.Hash160)
    member list of the group
  - 'f' + rsid + addr -> 1
    membership flag, mirrors the member list
  - 'o' + rsid -> interop.Hash160
    immutable founder of the group
  - 'd' + rsid -> interop.Hash160
    current delegate of the group, absent if none
  - 'r' + addr -> std.Serialize([]int)
    social IDs the address is associated with, first is primary
  - 't' + rsid -> std.Serialize([]interop.Hash160)
    tagged contract addresses of the group
  - 'a' + addr -> int
    prepaid GAS deposit of the address
  - 'p' + addr -> int
    pending (withdrawable) fee balance of the address

# Groups
Contract stores every registered group as a member list keyed by its social ID
with a per-address membership flag kept in sync for O(1) lookups. The reverse
index under 'r' mirrors membership from the address side and defines the
address' primary group.

# Accounting
GAS attached via NEP-17 transfer lands under 'a'. Registration fees move from
'a' of the founder to 'p' of the contract owner and leave the contract only
through Withdraw.
*/

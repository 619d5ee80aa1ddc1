/*
Package reputation implements Reputation contract which is a part of the
social contract suite. The contract keeps a ledger of signed ratings between
addresses: any address may rate any other address with a bounded score and a
comment, paying a fee which is split between the contract owner and the rated
address. Each (rater, ratee) pair holds at most one live rating, re-rating
overwrites the previous entry. The contract also maintains an aggregate score
per address equal to the sum of all its live ratings.

Rating fees are charged from prepaid GAS deposits and revenue shares land on
pending balances, both withdrawable at any time. Fee amount, score bounds,
comment and tag length limits and the operator equity percentage are read from
the Netconfig contract at call time.

# Contract notifications

Rated notification. Produced on every stored rating, carrying the clamped
score and the original (unhashed) comment.

	Rated
	  - name: rater
	    type: Hash160
	  - name: ratee
	    type: Hash160
	  - name: score
	    type: Integer
	  - name: comment
	    type: ByteArray
	  - name: timestamp
	    type: Integer

RatingRemoved notification. Produced when a rater deletes their rating.

	RatingRemoved
	  - name: rater
	    type: Hash160
	  - name: ratee
	    type: Hash160

Deposit notification. Produced when GAS is attached to the contract via
NEP-17 transfer.

	Deposit
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification. Produced when pending revenue or an unused deposit is
transferred back to its owner.

	Withdraw
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package reputation

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'netconfigScriptHash' -> interop.Hash160
    Netconfig contract reference
  - 'contractOwner' -> interop.Hash160
    owner of the contract, receives the operator share of rating fees
  - 'e' + rater + ratee -> std.Serialize(Entry)
    live rating with score, timestamp, comment hash and tag
  - 's' + ratee -> int
    aggregate score of the address, absent when zero
  - 'g' + rater + ratee -> 1
    given-ratings index, one flag per live rating of the rater
  - 'v' + ratee + rater -> 1
    received-ratings index, one flag per live rating of the ratee
  - 'a' + addr -> int
    prepaid GAS deposit of the address
  - 'p' + addr -> int
    pending (withdrawable) revenue balance of the address

# Ratings
Entries are keyed by the ordered (rater, ratee) address pair, so each rater
holds at most one live rating per ratee. The 'g' and 'v' flag indices mirror
the entry set from both sides and back the RatersOf/RateesOf iterators. The
aggregate under 's' is maintained incrementally on every store and delete and
always equals the sum of live entry scores targeting the address.

# Accounting
GAS attached via NEP-17 transfer lands under 'a'. Each rating moves the fee
from 'a' of the rater to 'p' of the contract owner and the ratee, split by the
configured operator equity. Pending balances leave the contract only through
Withdraw.
*/

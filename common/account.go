package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Account stores an amount of GAS held by the contract on behalf of some
// address, either as a prepaid deposit or as pending (withdrawable) revenue.
type Account struct {
	// Balance in GAS notation (Fixed8).
	Balance int
}

// GetAccount returns the account stored under prefix for the given address or
// a zero account if there is none.
func GetAccount(ctx storage.Context, prefix byte, addr interop.Hash160) Account {
	data := storage.Get(ctx, append([]byte{prefix}, addr...))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

// CreditAccount adds amount to the balance of the given address.
func CreditAccount(ctx storage.Context, prefix byte, addr interop.Hash160, amount int) {
	acc := GetAccount(ctx, prefix, addr)
	acc.Balance += amount
	SetSerialized(ctx, append([]byte{prefix}, addr...), acc)
}

// DebitAccount subtracts amount from the balance of the given address. The
// balance is checked before the subtraction, debit of an amount exceeding the
// balance returns false with no state change. Emptied accounts are removed
// from storage.
func DebitAccount(ctx storage.Context, prefix byte, addr interop.Hash160, amount int) bool {
	acc := GetAccount(ctx, prefix, addr)
	if acc.Balance < amount {
		return false
	}

	key := append([]byte{prefix}, addr...)
	if acc.Balance == amount {
		storage.Delete(ctx, key)
	} else {
		acc.Balance -= amount
		SetSerialized(ctx, key, acc)
	}

	return true
}

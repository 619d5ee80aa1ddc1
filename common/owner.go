package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// OwnerKey is a key in contract storage with the account of the contract
// owner. The owner is the single administrator identity of the deployed
// contract and the operator of its fee revenue.
const OwnerKey = "contractOwner"

// ContractOwner returns the owner account stored at deploy time. It panics if
// the contract was deployed without an owner.
func ContractOwner(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, OwnerKey)
	if data == nil {
		panic("contract owner is not set")
	}

	return data.(interop.Hash160)
}

// HasUpdateAccess returns true if the contract can be updated by the current
// transaction signers.
func HasUpdateAccess(ctx storage.Context) bool {
	return runtime.CheckWitness(ContractOwner(ctx))
}

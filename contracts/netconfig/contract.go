package netconfig

import (
	"github.com/alexpaden/social-contract/common"
	cst "github.com/alexpaden/social-contract/contracts/netconfig/netconfigconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const adminKey = "contractAdmin"

var configPrefix = []byte("config")

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
		admin  interop.Hash160
		config [][]byte
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect admin account")
	}
	storage.Put(ctx, adminKey, args.admin)

	setConfig(ctx, cst.RegistrationFeeKey, cst.DefaultRegistrationFee)
	setConfig(ctx, cst.ReputationPriceKey, cst.DefaultReputationPrice)
	setConfig(ctx, cst.OperatorEquityKey, cst.DefaultOperatorEquity)
	setConfig(ctx, cst.MaxAssociatedIDsKey, cst.DefaultMaxAssociatedIDs)
	setConfig(ctx, cst.MaxTaggedContractsKey, cst.DefaultMaxTaggedContracts)
	setConfig(ctx, cst.MaxCommentLengthKey, cst.DefaultMaxCommentLength)
	setConfig(ctx, cst.MaxTagLengthKey, cst.DefaultMaxTagLength)
	setConfig(ctx, cst.MaxReputationKey, cst.DefaultMaxReputation)
	setConfig(ctx, cst.DelegateMustBeMemberKey, cst.DefaultDelegateMustBeMember)

	ln := len(args.config)
	if ln%2 != 0 {
		panic("bad configuration")
	}

	for i := 0; i < ln/2; i++ {
		key := args.config[i*2]
		val := args.config[i*2+1]

		validateConfig(key, convert.ToInteger(val))
		setConfig(ctx, key, val)
	}

	runtime.Log("netconfig contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract admin.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()

	if !runtime.CheckWitness(admin(ctx)) {
		panic("only admin can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("netconfig contract updated")
}

// Admin returns the account allowed to change configuration values.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return admin(ctx)
}

// SetAdmin transfers administrative rights to another account. It can be
// invoked only by the current admin.
func SetAdmin(addr interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(admin(ctx))

	if len(addr) != interop.Hash160Len {
		panic("incorrect admin account")
	}

	storage.Put(ctx, adminKey, addr)
	runtime.Log("netconfig admin has been changed")
}

// Config returns configuration value of the social network configuration. If
// key does not exist, returns nil.
func Config(key []byte) any {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx, key)
}

// SetConfig sets a key-value pair as a social network runtime configuration
// value. It can be invoked only by the contract admin. Unknown keys and
// out-of-range values are rejected.
func SetConfig(key, val []byte) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(admin(ctx))

	validateConfig(key, convert.ToInteger(val))
	setConfig(ctx, key, val)

	runtime.Log("configuration has been updated")
}

type record struct {
	key []byte
	val []byte
}

// ListConfig returns an array of structures that contain key and value of all
// social network configuration records. Key and value are both byte arrays.
func ListConfig() []record {
	ctx := storage.GetReadOnlyContext()

	var config []record

	it := storage.Find(ctx, configPrefix, storage.None)
	for iterator.Next(it) {
		pair := iterator.Value(it).(struct {
			key []byte
			val []byte
		})
		r := record{key: pair.key[len(configPrefix):], val: pair.val}

		config = append(config, r)
	}

	return config
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func admin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

func validateConfig(key []byte, val int) {
	switch string(key) {
	case cst.RegistrationFeeKey, cst.ReputationPriceKey:
		if val < 0 {
			panic(cst.ErrInvalidValue + ": negative fee")
		}
	case cst.OperatorEquityKey:
		if val < 0 || val > 100 {
			panic(cst.ErrInvalidValue + ": equity must be within [0, 100]")
		}
	case cst.MaxAssociatedIDsKey, cst.MaxTaggedContractsKey,
		cst.MaxCommentLengthKey, cst.MaxTagLengthKey, cst.MaxReputationKey:
		if val <= 0 {
			panic(cst.ErrInvalidValue + ": limit must be positive")
		}
	case cst.DelegateMustBeMemberKey:
		if val != 0 && val != 1 {
			panic(cst.ErrInvalidValue + ": flag must be 0 or 1")
		}
	default:
		panic(cst.ErrUnknownKey)
	}
}

func getConfig(ctx storage.Context, key any) any {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	return storage.Get(ctx, storageKey)
}

func setConfig(ctx storage.Context, key, val any) {
	postfix := convert.ToBytes(key)
	storageKey := append(configPrefix, postfix...)

	storage.Put(ctx, storageKey, val)
}

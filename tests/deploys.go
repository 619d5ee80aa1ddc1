package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	netconfigPath  = "../contracts/netconfig"
	registryPath   = "../contracts/addressregistry"
	reputationPath = "../contracts/reputation"
)

// deployNetconfigContract deploys the Netconfig contract with the committee
// as its admin. Extra key-value pairs override the built-in configuration
// defaults.
func deployNetconfigContract(t *testing.T, e *neotest.Executor, config ...any) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, netconfigPath,
		path.Join(netconfigPath, "config.yml"))

	args := make([]any, 2)
	args[0] = e.CommitteeHash
	args[1] = config

	e.DeployContract(t, c, args)
	return c.Hash
}

// deployRegistryContract deploys the Address Registry contract with the
// committee as its owner, reading configuration from the given Netconfig
// contract.
func deployRegistryContract(t *testing.T, e *neotest.Executor, netconfigHash util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, registryPath,
		path.Join(registryPath, "config.yml"))

	args := make([]any, 2)
	args[0] = e.CommitteeHash
	args[1] = netconfigHash

	e.DeployContract(t, c, args)
	return c.Hash
}

// deployReputationContract deploys the Reputation contract with the committee
// as its owner, reading configuration from the given Netconfig contract.
func deployReputationContract(t *testing.T, e *neotest.Executor, netconfigHash util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, reputationPath,
		path.Join(reputationPath, "config.yml"))

	args := make([]any, 2)
	args[0] = e.CommitteeHash
	args[1] = netconfigHash

	e.DeployContract(t, c, args)
	return c.Hash
}

/*
Package contracts enumerates the contracts of the social suite and provides
access to their sources for compilation and deployment tooling.
*/
package contracts

import "path"

const (
	netconfigDir       = "netconfig"
	addressRegistryDir = "addressregistry"
	reputationDir      = "reputation"

	configName = "config.yml"
)

// Contract groups information about a single contract source stored in the
// current package.
type Contract struct {
	// Name is the contract name from its manifest.
	Name string
	// SourceDir is the contract source directory relative to the
	// repository root.
	SourceDir string
	// ConfigPath is the contract configuration file relative to the
	// repository root.
	ConfigPath string
}

var suite = []Contract{
	{Name: "Social Netconfig", SourceDir: netconfigDir},
	{Name: "Social Address Registry", SourceDir: addressRegistryDir},
	{Name: "Social Reputation", SourceDir: reputationDir},
}

// GetSuite returns the set of social contracts stored in the package. They
// are returned in the order they are supposed to be deployed starting from
// Netconfig, which the other two contracts read their configuration from.
func GetSuite(root string) []Contract {
	res := make([]Contract, 0, len(suite))

	for _, c := range suite {
		c.SourceDir = path.Join(root, c.SourceDir)
		c.ConfigPath = path.Join(c.SourceDir, configName)
		res = append(res, c)
	}

	return res
}

/*
Package netconfig implements Netconfig contract which is deployed to the
social registry chain.

Netconfig contract stores all scalar parameters of the social registry:
registration fee, reputation price, operator equity share and the various
group/comment limits. Every parameter can be changed only by the single
configured administrator account. Address Registry and Reputation contracts
read this configuration on every fee-metered or limit-checked operation.

# Contract notifications

Netconfig contract does not produce notifications to process.
*/
package netconfig

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'contractAdmin' -> interop.Hash160
   account of the contract administrator
 - 'config' + <name> -> []byte
   configuration records, where <name> is a string key from the
   netconfigconst package

# Configuration
Contract stores the full set of social registry parameters, seeded with
defaults at deploy time.
*/

// Command dump prints the current state of a deployed social contract suite:
// network configuration, registered groups with their members, delegates and
// tags, and balances of a particular address if one is given.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/alexpaden/social-contract/rpc/addressregistry"
	"github.com/alexpaden/social-contract/rpc/netconfig"
	"github.com/alexpaden/social-contract/rpc/reputation"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	netconfigHash := flag.String("netconfig", "", "Netconfig contract script hash (LE)")
	registryHash := flag.String("registry", "", "Address Registry contract script hash (LE)")
	reputationHash := flag.String("reputation", "", "Reputation contract script hash (LE)")
	addr := flag.String("addr", "", "Neo address to inspect (optional)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *netconfigHash == "":
		log.Fatal("missing netconfig contract hash")
	case *registryHash == "":
		log.Fatal("missing address registry contract hash")
	case *reputationHash == "":
		log.Fatal("missing reputation contract hash")
	}

	err := _dump(*neoRPCEndpoint, *netconfigHash, *registryHash, *reputationHash, *addr)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint, netconfigHash, registryHash, reputationHash, addr string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	ncHash, err := util.Uint160DecodeStringLE(netconfigHash)
	if err != nil {
		return fmt.Errorf("decode netconfig contract hash: %w", err)
	}
	regHash, err := util.Uint160DecodeStringLE(registryHash)
	if err != nil {
		return fmt.Errorf("decode address registry contract hash: %w", err)
	}
	repHash, err := util.Uint160DecodeStringLE(reputationHash)
	if err != nil {
		return fmt.Errorf("decode reputation contract hash: %w", err)
	}

	fmt.Printf("block height: %d\n", b.currentBlock)

	err = dumpConfig(netconfig.NewReader(b.inv, ncHash))
	if err != nil {
		return fmt.Errorf("dump configuration: %w", err)
	}

	reg := addressregistry.NewReader(b.inv, regHash)

	err = dumpGroups(reg)
	if err != nil {
		return fmt.Errorf("dump groups: %w", err)
	}

	if addr != "" {
		acc, err := address.StringToUint160(addr)
		if err != nil {
			return fmt.Errorf("decode address: %w", err)
		}

		err = dumpAccount(reg, reputation.NewReader(b.inv, repHash), acc)
		if err != nil {
			return fmt.Errorf("dump account: %w", err)
		}
	}

	return nil
}

func dumpConfig(nc *netconfig.ContractReader) error {
	records, err := nc.ListConfig()
	if err != nil {
		return fmt.Errorf("list configuration: %w", err)
	}

	fmt.Println("configuration:")
	for _, r := range records {
		fmt.Printf("  %s: %d\n", r.Key, new(big.Int).SetBytes(reverse(r.Val)))
	}

	return nil
}

func dumpGroups(reg *addressregistry.ContractReader) error {
	total, err := reg.Total()
	if err != nil {
		return fmt.Errorf("get total: %w", err)
	}

	fmt.Printf("groups issued: %d\n", total)

	one := big.NewInt(1)
	for rsid := big.NewInt(1); rsid.Cmp(total) <= 0; rsid.Add(rsid, one) {
		members, err := reg.Members(rsid)
		if err != nil {
			return fmt.Errorf("get members of group %d: %w", rsid, err)
		}

		founder, err := reg.Founder(rsid)
		if err != nil {
			return fmt.Errorf("get founder of group %d: %w", rsid, err)
		}

		tags, err := reg.Tags(rsid)
		if err != nil {
			return fmt.Errorf("get tags of group %d: %w", rsid, err)
		}

		fmt.Printf("group %d: founder %s, %d member(s), %d tag(s)\n",
			rsid, address.Uint160ToString(founder), len(members), len(tags))
		for _, m := range members {
			fmt.Printf("  member %s\n", address.Uint160ToString(m))
		}
	}

	return nil
}

func dumpAccount(reg *addressregistry.ContractReader, rep *reputation.ContractReader, acc util.Uint160) error {
	groups, err := reg.GroupsOf(acc)
	if err != nil {
		return fmt.Errorf("get groups: %w", err)
	}

	deposit, err := reg.BalanceOf(acc)
	if err != nil {
		return fmt.Errorf("get registry deposit: %w", err)
	}

	pending, err := reg.PendingOf(acc)
	if err != nil {
		return fmt.Errorf("get registry pending balance: %w", err)
	}

	score, err := rep.ScoreOf(acc)
	if err != nil {
		return fmt.Errorf("get aggregate score: %w", err)
	}

	fmt.Printf("account %s:\n", address.Uint160ToString(acc))
	fmt.Printf("  groups: %v\n", groups)
	fmt.Printf("  registry deposit: %d\n", deposit)
	fmt.Printf("  registry pending: %d\n", pending)
	fmt.Printf("  aggregate score: %d\n", score)

	return nil
}

// reverse returns a copy of b with inverted byte order. Storage integers come
// in little-endian encoding while big.Int expects big-endian.
func reverse(b []byte) []byte {
	res := make([]byte, len(b))
	for i := range b {
		res[i] = b[len(b)-1-i]
	}

	return res
}

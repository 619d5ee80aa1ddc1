package tests

import (
	"testing"

	"github.com/alexpaden/social-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestVersion(t *testing.T) {
	e := newExecutor(t)

	ncHash := deployNetconfigContract(t, e)
	regHash := deployRegistryContract(t, e, ncHash)
	repHash := deployReputationContract(t, e, ncHash)

	expected := stackitem.Make(common.Version)
	e.CommitteeInvoker(ncHash).Invoke(t, expected, "version")
	e.CommitteeInvoker(regHash).Invoke(t, expected, "version")
	e.CommitteeInvoker(repHash).Invoke(t, expected, "version")
}

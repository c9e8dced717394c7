package config

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// NetworkConfig carries the endpoints and contract address of one deployment.
// It is configuration data only; the resolution logic never depends on which
// network it runs against.
type NetworkConfig struct {
	L1NodeURL        string
	L2NodeURL        string
	DiamondProxyAddr common.Address
}

var networks = map[string]NetworkConfig{
	"mainnet": {
		L1NodeURL:        "https://ethereum-rpc.publicnode.com",
		L2NodeURL:        "https://mainnet.era.zksync.io",
		DiamondProxyAddr: common.HexToAddress("0x32400084C286CF3E17e7B677ea9583e60a000324"),
	},
	"sepolia": {
		L1NodeURL:        "https://ethereum-sepolia-rpc.publicnode.com",
		L2NodeURL:        "https://sepolia.era.zksync.dev",
		DiamondProxyAddr: common.HexToAddress("0x9A6DE0f62Aa270A8bCB1e2610078650D539B1Ef9"),
	},
}

// Networks returns the names of the preconfigured networks, sorted.
func Networks() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyNetwork merges the endpoint related values of the named network into
// the configuration layer, above the defaults but below the config file and
// environment overrides.
func applyNetwork(name string) error {
	network, ok := networks[name]
	if !ok {
		return fmt.Errorf("unknown network %q, supported networks: %v", name, Networks())
	}
	return viper.MergeConfigMap(map[string]interface{}{
		"Etherman": map[string]interface{}{
			"URL":              network.L1NodeURL,
			"DiamondProxyAddr": network.DiamondProxyAddr.Hex(),
		},
		"L2Client": map[string]interface{}{
			"URL": network.L2NodeURL,
		},
	})
}

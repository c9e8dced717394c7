package config

import (
	"flag"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/zksync-community/storage-proofs/log"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, log.EnvironmentDevelopment, cfg.Log.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
	assert.Equal(t, common.HexToAddress("0x32400084C286CF3E17e7B677ea9583e60a000324"), cfg.Etherman.DiamondProxyAddr)
	assert.Equal(t, "https://mainnet.era.zksync.io", cfg.L2Client.URL)
	assert.Equal(t, uint64(2000), cfg.Aggregator.BatchLag)
}

func newCliContext(t *testing.T, network string) *cli.Context {
	t.Helper()
	flagSet := flag.NewFlagSet("test", flag.PanicOnError)
	flagSet.String(FlagNetwork, network, "")
	flagSet.String(FlagCfg, "", "")
	return cli.NewContext(cli.NewApp(), flagSet, nil)
}

func TestLoadNetworkPreset(t *testing.T) {
	cfg, err := Load(newCliContext(t, "sepolia"))
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress("0x9A6DE0f62Aa270A8bCB1e2610078650D539B1Ef9"), cfg.Etherman.DiamondProxyAddr)
	assert.Equal(t, "https://sepolia.era.zksync.dev", cfg.L2Client.URL)
	assert.Equal(t, "https://ethereum-sepolia-rpc.publicnode.com", cfg.Etherman.URL)
	assert.Equal(t, uint64(2000), cfg.Aggregator.BatchLag)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STORAGE_PROOFS_AGGREGATOR_BATCHLAG", "123")

	cfg, err := Load(newCliContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, uint64(123), cfg.Aggregator.BatchLag)
}

func TestLoadEnvOverridesNetworkPreset(t *testing.T) {
	t.Setenv("STORAGE_PROOFS_L2CLIENT_URL", "http://localhost:3050")

	cfg, err := Load(newCliContext(t, "sepolia"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3050", cfg.L2Client.URL)
	// the rest of the preset still applies
	assert.Equal(t, common.HexToAddress("0x9A6DE0f62Aa270A8bCB1e2610078650D539B1Ef9"), cfg.Etherman.DiamondProxyAddr)
}

func TestLoadUnknownNetwork(t *testing.T) {
	_, err := Load(newCliContext(t, "hoodi"))
	require.Error(t, err)
}

func TestNetworks(t *testing.T) {
	assert.Equal(t, []string{"mainnet", "sepolia"}, Networks())
}

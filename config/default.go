package config

// DefaultValues is the default configuration of the storage proof provider.
const DefaultValues = `
[Log]
Environment = "development"
Level = "info"
Outputs = ["stderr"]

[Etherman]
URL = "https://ethereum-rpc.publicnode.com"
DiamondProxyAddr = "0x32400084C286CF3E17e7B677ea9583e60a000324"

[L2Client]
URL = "https://mainnet.era.zksync.io"

[Aggregator]
BatchLag = 2000
`

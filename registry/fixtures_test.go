package registry

import (
	"testing"

	"github.com/jmgilman/go/fs/billy"
	"github.com/stretchr/testify/require"
)

const (
	mySwapAddress = "0x010884171baf1914edc28d7afb619b40a4051cfae78a094a55d230f19e944a28"
	aspectAddress = "0x04d0390b777b424e43839cd1e744799f3de6c176c7e32c1812a41dbd9c19db6a"
)

var repositoryFiles = map[string]string{
	"myswap/metadata.json": `{
		"id": "myswap",
		"displayName": "mySwap",
		"description": "A simple AMM",
		"host": "https://www.myswap.xyz",
		"contracts": [
			{
				"tag": "main",
				"implements": ["erc20"],
				"addresses": {
					"mainnet-alpha": ["` + mySwapAddress + `"],
					"goerli-alpha": ["0x018a439bcbb1b3535a6145c1dc9bc6366267d923f60a84bd0c7618f33c81d334"]
				}
			}
		],
		"categories": ["defi"]
	}`,
	"myswap/errors.json": `{
		"main": {
			"default": [
				{"matcher": "/Insufficient balance/", "message": "mySwap: not enough funds"}
			],
			"swap": [
				{
					"matcher": "/slippage/i",
					"message": "mySwap: price moved {{1}} bps",
					"extractors": [{"matcher": "/moved: (\\d+)/", "type": "decimal"}]
				}
			]
		}
	}`,
	"myswap/icon.png":  "png",
	"myswap/cover.jpeg": "jpeg",
	"aspect/metadata.json": `{
		"id": "aspect",
		"displayName": "Aspect",
		"description": "NFT marketplace",
		"host": {"mainnet-alpha": "https://aspect.co", "others": "https://testnet.aspect.co"},
		"contracts": [
			{
				"tag": "market",
				"implements": ["erc721", "erc1155"],
				"addresses": {"mainnet-alpha": ["` + aspectAddress + `"]}
			}
		],
		"categories": ["nft"]
	}`,
	"aspect/icon.jpg":   "jpg",
	"aspect/cover.jpeg": "jpeg",
	"errors-interfaces.json": `{
		"erc721": {
			"default": [{"matcher": "/not owner/", "message": "You do not own this token"}]
		},
		"erc20": {
			"default": [],
			"transfer": [{"matcher": "/Insufficient balance/", "message": "Not enough tokens to transfer"}]
		}
	}`,
	"errors-default.json": `{
		"default": [{"matcher": "/Insufficient balance/", "message": "Not enough funds"}]
	}`,
}

// newRepository writes files into a fresh in-memory filesystem.
func newRepository(t *testing.T, files map[string]string) *billy.MemoryFS {
	t.Helper()

	fsys := billy.NewMemory()
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
	}
	return fsys
}

// withFiles returns a copy of base with overrides applied. An empty override
// removes the file.
func withFiles(base map[string]string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

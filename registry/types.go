package registry

import (
	"encoding/json"

	"github.com/jmgilman/dappreg/errors"
)

// Network names a chain deployment.
type Network string

const (
	NetworkMainnet Network = "mainnet-alpha"
	NetworkGoerli  Network = "goerli-alpha"
	NetworkGoerli2 Network = "goerli-alpha-2"
	NetworkOthers  Network = "others"
)

// Category classifies a project.
type Category string

const (
	CategoryNFT       Category = "nft"
	CategoryDeFi      Category = "defi"
	CategoryMobile    Category = "mobile"
	CategoryInfra     Category = "infra"
	CategoryGameFi    Category = "gamefi"
	CategoryDigitalID Category = "digitalid"
)

// Host is a project's website. On disk it is either a single URL or an
// object mapping networks to URLs.
type Host struct {
	URL       string
	ByNetwork map[Network]string
}

// For returns the URL to use on network. A per-network host falls back to
// its "others" entry.
func (h Host) For(network Network) string {
	if h.URL != "" {
		return h.URL
	}
	if url, ok := h.ByNetwork[network]; ok {
		return url
	}
	return h.ByNetwork[NetworkOthers]
}

// UnmarshalJSON accepts a string or a network-to-URL object.
func (h *Host) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*h = Host{URL: url}
		return nil
	}

	var byNetwork map[Network]string
	if err := json.Unmarshal(data, &byNetwork); err != nil {
		return errors.Wrap(err, errors.CodeSchemaDecodeFailed, "host must be a string or an object")
	}
	*h = Host{ByNetwork: byNetwork}
	return nil
}

// MarshalJSON writes the on-disk form.
func (h Host) MarshalJSON() ([]byte, error) {
	if h.ByNetwork != nil {
		return json.Marshal(h.ByNetwork)
	}
	return json.Marshal(h.URL)
}

// MarshalYAML writes the on-disk form.
func (h Host) MarshalYAML() (interface{}, error) {
	if h.ByNetwork != nil {
		return h.ByNetwork, nil
	}
	return h.URL, nil
}

// Contract is a contract deployed by a project.
type Contract struct {
	// Tag identifies the contract within its project.
	Tag string `json:"tag" yaml:"tag"`

	// Implements lists the interfaces the contract implements. Order matters
	// when several interface tables match the same failure.
	Implements []string `json:"implements,omitempty" yaml:"implements,omitempty"`

	// Addresses lists the deployed addresses per network.
	Addresses map[Network][]string `json:"addresses" yaml:"addresses"`
}

// Metadata is the content of a project's metadata.json.
type Metadata struct {
	ID          string     `json:"id" yaml:"id"`
	DisplayName string     `json:"displayName" yaml:"displayName"`
	Description string     `json:"description" yaml:"description"`
	Host        Host       `json:"host" yaml:"host"`
	Contracts   []Contract `json:"contracts" yaml:"contracts"`
	Categories  []Category `json:"categories" yaml:"categories"`
}

// Project is a registered project with the URLs of its assets.
type Project struct {
	Icon     string   `json:"icon" yaml:"icon"`
	Cover    string   `json:"cover" yaml:"cover"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// ID returns the project id.
func (p Project) ID() string {
	return p.Metadata.ID
}

// Identity describes the contract found at an address.
type Identity struct {
	Protocol    string
	ContractTag string
	Interfaces  []string
}

// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Registry holds the parameters of every known network.  All of them are
// constructed up front, whichever one ends up being used, so that a genesis
// mismatch in any network surfaces at startup.
type Registry struct {
	params [numNetworks]*Params
}

// networkConstructors maps every network to the function building its
// parameters.
var networkConstructors = [numNetworks]func() (*Params, error){
	MainNet: MainNetParams,
	TestNet: TestNetParams,
	RegTest: RegNetParams,
}

// NewRegistry constructs the parameters of all networks.  The first
// construction error, typically a *GenesisMismatchError, is returned as is
// and must be treated as fatal by the caller.
func NewRegistry() (*Registry, error) {
	var r Registry
	for net, construct := range networkConstructors {
		params, err := construct()
		if err != nil {
			return nil, err
		}
		r.params[net] = params
		log.Debugf("Loaded %s parameters (genesis %v, %d checkpoints)",
			params.Name, params.GenesisHash,
			params.Checkpoints.TotalCheckpoints())
	}
	return &r, nil
}

// Resolve returns the parameters of the network with the given identifier.
// An *UnknownNetworkError is returned for anything other than "main", "test"
// or "regtest".
func (r *Registry) Resolve(name string) (*Params, error) {
	net, err := ParseNetwork(name)
	if err != nil {
		return nil, err
	}
	return r.params[net], nil
}

// ByNetwork returns the parameters of the given network.  It returns nil for
// values outside the defined networks.
func (r *Registry) ByNetwork(net Network) *Params {
	if net >= numNetworks {
		return nil
	}
	return r.params[net]
}

// All returns the parameters of every network ordered main, test, regtest.
func (r *Registry) All() []*Params {
	all := make([]*Params, 0, numNetworks)
	return append(all, r.params[:]...)
}

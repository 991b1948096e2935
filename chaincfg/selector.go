// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Selector holds the parameters of the network the process runs on.  It is
// created at startup, a network is selected exactly once, and the selected
// parameters are then handed to every subsystem that needs them.
//
// Selection happens before any concurrent work begins, so the selector does
// no locking.
type Selector struct {
	registry *Registry
	active   *Params
}

// NewSelector returns a Selector choosing among the networks of registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select resolves the named network and makes it the active one.  It fails
// with an *UnknownNetworkError for unknown names and with ErrAlreadySelected
// when a network was already selected.
func (s *Selector) Select(name string) error {
	if s.active != nil {
		return ErrAlreadySelected
	}
	params, err := s.registry.Resolve(name)
	if err != nil {
		return err
	}
	s.active = params
	log.Infof("Active network: %s (message start %x, port %s)",
		params.Name, params.MessageStart(), params.DefaultPort)
	return nil
}

// IsSelected returns whether a network has been selected.
func (s *Selector) IsSelected() bool {
	return s.active != nil
}

// Params returns the parameters of the active network.  Calling it before
// Select is a programming error and panics.
func (s *Selector) Params() *Params {
	if s.active == nil {
		panic("chaincfg: active network parameters read before a " +
			"network was selected")
	}
	return s.active
}

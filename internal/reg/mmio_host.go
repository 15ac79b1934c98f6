//go:build !baremetal

package reg

var hostSim = NewSim()

// Default returns the mapper for this build. Hosts get a shared, inert Sim.
// Tests should build their own with NewSim.
func Default() Mapper { return hostSim }

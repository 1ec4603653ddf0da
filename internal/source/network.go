package source

import (
	"context"
	"fmt"
	"net"

	"github.com/rileyhilliard/rmon/internal/metrics"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// DefaultMeshInterface is the batman-adv interface created when the node
// has joined the mesh.
const DefaultMeshInterface = "bat0"

// UnresolvedAddress is shown when the hostname does not resolve.
const UnresolvedAddress = "unresolved"

// InterfaceLister returns the names of the network interfaces present now.
type InterfaceLister func(ctx context.Context) ([]string, error)

// SystemInterfaces lists interfaces through gopsutil.
func SystemInterfaces(ctx context.Context) ([]string, error) {
	list, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, iface := range list {
		names = append(names, iface.Name)
	}
	return names, nil
}

// Mesh reports whether the interface called name exists. Its absence is a
// normal false; only a failure to list interfaces is unavailable.
func Mesh(list InterfaceLister, name string) metrics.Reader[bool] {
	return func(ctx context.Context) metrics.Reading[bool] {
		names, err := list(ctx)
		if err != nil {
			return metrics.Unavailable[bool](err)
		}
		for _, n := range names {
			if n == name {
				return metrics.Ok(true)
			}
		}
		return metrics.Ok(false)
	}
}

// Resolver looks up the addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Identity reports the hostname and its best-effort address. A failed
// lookup yields UnresolvedAddress rather than an unavailable reading.
func Identity(hostname func() (string, error), res Resolver) metrics.Reader[metrics.Host] {
	return func(ctx context.Context) metrics.Reading[metrics.Host] {
		name, err := hostname()
		if err != nil {
			return metrics.Unavailable[metrics.Host](fmt.Errorf("hostname: %w", err))
		}
		h := metrics.Host{Name: name, Address: UnresolvedAddress}
		if res == nil {
			return metrics.Ok(h)
		}
		addrs, err := res.LookupHost(ctx, name)
		if err != nil || len(addrs) == 0 {
			return metrics.Ok(h)
		}
		h.Address = pickAddress(addrs)
		h.Resolved = true
		return metrics.Ok(h)
	}
}

// pickAddress prefers a non-loopback IPv4 address, then any non-loopback
// address, then the first one.
func pickAddress(addrs []string) string {
	var fallback string
	for _, a := range addrs {
		ip := net.ParseIP(a)
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if ip.To4() != nil {
			return a
		}
		if fallback == "" {
			fallback = a
		}
	}
	if fallback != "" {
		return fallback
	}
	return addrs[0]
}

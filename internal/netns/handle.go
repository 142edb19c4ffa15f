package netns

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
	vnetns "github.com/vishvananda/netns"
)

// Handle provides netlink access to a named network namespace.
type Handle struct {
	name string
	ns   vnetns.NsHandle
	h    *netlink.Handle
}

// Open opens a netlink handle scoped to the named namespace.
func Open(name string) (*Handle, error) {
	ns, err := vnetns.GetFromName(name)
	if err != nil {
		return nil, fmt.Errorf("open netns %s: %w", name, err)
	}
	h, err := netlink.NewHandleAt(ns)
	if err != nil {
		ns.Close()
		return nil, fmt.Errorf("netlink handle in netns %s: %w", name, err)
	}
	return &Handle{name: name, ns: ns, h: h}, nil
}

// Close releases the namespace and netlink handles.
func (h *Handle) Close() {
	h.h.Close()
	h.ns.Close()
}

// MoveIn migrates a link from the root namespace into this namespace and
// brings it up there. Migration is a one-way ownership transfer of the
// device; on success the root namespace no longer sees it.
func (h *Handle) MoveIn(dev string) error {
	link, err := netlink.LinkByName(dev)
	if err != nil {
		return fmt.Errorf("find link %s: %w", dev, err)
	}
	if err := netlink.LinkSetNsFd(link, int(h.ns)); err != nil {
		return fmt.Errorf("move %s into netns %s: %w", dev, h.name, err)
	}
	moved, err := h.h.LinkByName(dev)
	if err != nil {
		return fmt.Errorf("find %s in netns %s after move: %w", dev, h.name, err)
	}
	if err := h.h.LinkSetUp(moved); err != nil {
		return fmt.Errorf("bring up %s in netns %s: %w", dev, h.name, err)
	}
	return nil
}

// AssignPointToPoint assigns the local address to the link with the gateway
// as its /32 point-to-point peer.
func (h *Handle) AssignPointToPoint(dev string, local, gateway net.IP) error {
	link, err := h.h.LinkByName(dev)
	if err != nil {
		return fmt.Errorf("find link %s in netns %s: %w", dev, h.name, err)
	}
	addr := &netlink.Addr{
		IPNet: &net.IPNet{IP: local, Mask: net.CIDRMask(32, 32)},
		Peer:  &net.IPNet{IP: gateway, Mask: net.CIDRMask(32, 32)},
	}
	if err := h.h.AddrAdd(link, addr); err != nil {
		return fmt.Errorf("assign %s peer %s to %s: %w", local, gateway, dev, err)
	}
	return nil
}

// InstallDefaultRoute installs the namespace default route via the gateway,
// sourced from the local tunnel address. This is what forces all traffic
// inside the namespace over the tunnel.
func (h *Handle) InstallDefaultRoute(dev string, gateway, local net.IP) error {
	link, err := h.h.LinkByName(dev)
	if err != nil {
		return fmt.Errorf("find link %s in netns %s: %w", dev, h.name, err)
	}
	route := &netlink.Route{
		LinkIndex: link.Attrs().Index,
		Gw:        gateway,
		Src:       local,
	}
	if err := h.h.RouteAdd(route); err != nil {
		return fmt.Errorf("install default route via %s in netns %s: %w", gateway, h.name, err)
	}
	return nil
}

// Links lists all links in the namespace.
func (h *Handle) Links() ([]netlink.Link, error) {
	return h.h.LinkList()
}

// Addrs lists the IPv4 addresses of a link.
func (h *Handle) Addrs(link netlink.Link) ([]netlink.Addr, error) {
	return h.h.AddrList(link, netlink.FAMILY_V4)
}

// Routes lists the IPv4 routes of the namespace.
func (h *Handle) Routes() ([]netlink.Route, error) {
	return h.h.RouteList(nil, netlink.FAMILY_V4)
}

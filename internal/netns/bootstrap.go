package netns

import (
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/vishvananda/netlink"
	vnetns "github.com/vishvananda/netns"
)

// Ensure guarantees the named network namespace exists and contains only a
// loopback adapter, brought up. A namespace holding any other link is
// presumed to belong to someone else and is never touched: the call fails
// instead of cleaning up. Safe to call repeatedly; loopback is re-asserted
// up every time, since namespace creation alone does not bring it up.
func Ensure(name string) error {
	ns, err := vnetns.GetFromName(name)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("open netns %s: %w", name, err)
		}
		ns, err = createNamed(name)
		if err != nil {
			return fmt.Errorf("create netns %s: %w", name, err)
		}
	}
	defer ns.Close()

	h, err := netlink.NewHandleAt(ns)
	if err != nil {
		return fmt.Errorf("netlink handle in netns %s: %w", name, err)
	}
	defer h.Close()

	links, err := h.LinkList()
	if err != nil {
		return fmt.Errorf("list links in netns %s: %w", name, err)
	}
	var lo netlink.Link
	for _, link := range links {
		if link.Attrs().Flags&net.FlagLoopback != 0 {
			lo = link
			continue
		}
		return fmt.Errorf("netns %s already contains adapter %s, refusing to use it", name, link.Attrs().Name)
	}
	if lo == nil {
		return fmt.Errorf("netns %s has no loopback adapter", name)
	}
	if err := h.LinkSetUp(lo); err != nil {
		return fmt.Errorf("bring up loopback in netns %s: %w", name, err)
	}
	return nil
}

// createNamed creates a named network namespace. NewNamed switches the
// calling thread into the new namespace, so the thread is locked and
// restored to its original namespace before returning.
func createNamed(name string) (vnetns.NsHandle, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	orig, err := vnetns.Get()
	if err != nil {
		return vnetns.None(), fmt.Errorf("get current netns: %w", err)
	}
	defer orig.Close()

	ns, err := vnetns.NewNamed(name)
	if err != nil {
		return vnetns.None(), err
	}
	if err := vnetns.Set(orig); err != nil {
		ns.Close()
		return vnetns.None(), fmt.Errorf("restore original netns: %w", err)
	}
	return ns, nil
}

package dnscfg

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// Probe resolves A records against a specific nameserver, bypassing the
// system resolver. Run inside the namespace, it exercises the exact path
// applications there will use.
type Probe struct {
	Server  string // nameserver address, port 53 assumed if absent
	Timeout time.Duration
}

// NewProbe creates a probe for the given nameserver.
func NewProbe(server string) *Probe {
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	return &Probe{
		Server:  server,
		Timeout: 5 * time.Second,
	}
}

// Resolve returns all A-record IPv4 addresses for a domain.
func (p *Probe) Resolve(ctx context.Context, domain string) ([]net.IP, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeA)

	client := &dns.Client{Timeout: p.Timeout}
	resp, _, err := client.ExchangeContext(ctx, m, p.Server)
	if err != nil {
		return nil, fmt.Errorf("dns query %s via %s: %w", domain, p.Server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("dns query %s via %s: rcode %s", domain, p.Server, dns.RcodeToString[resp.Rcode])
	}

	var ips []net.IP
	for _, ans := range resp.Answer {
		if a, ok := ans.(*dns.A); ok {
			ips = append(ips, a.A)
		}
	}
	return ips, nil
}

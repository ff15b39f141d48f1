package middleware

import (
	"net"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewIPExtractor decides what c.RealIP returns. Without trusted proxies the TCP
// peer is the client and forwarding headers are ignored. With proxies,
// X-Forwarded-For is walked from the right and only hops inside the listed
// ranges are skipped.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, proxy := range trustedProxies {
		ipNet, err := parseTrustedProxy(proxy)
		if err != nil {
			return nil, err
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}

// parseTrustedProxy accepts a CIDR or a single address.
func parseTrustedProxy(proxy string) (*net.IPNet, error) {
	proxy = strings.TrimSpace(proxy)
	if strings.Contains(proxy, "/") {
		_, ipNet, err := net.ParseCIDR(proxy)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy %q", proxy)
		}

		return ipNet, nil
	}

	ip := net.ParseIP(proxy)
	if ip == nil {
		return nil, errors.Errorf("invalid trusted proxy %q", proxy)
	}
	bits := 128
	if ip4 := ip.To4(); ip4 != nil {
		ip, bits = ip4, 32
	}

	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
}

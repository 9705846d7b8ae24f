package web

import (
	"net"
	"strings"

	"github.com/kataras/iris/v12"
)

const clientIPKey = "client_ip"

var trustedProxies = mustParseCIDRs(
	"127.0.0.0/8",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"::1/128",
	"fc00::/7",
)

func mustParseCIDRs(cidrs ...string) []*net.IPNet {
	out := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, network, err := net.ParseCIDR(c)
		if err != nil {
			panic(err)
		}
		out = append(out, network)
	}
	return out
}

func isPrivateIP(ip net.IP) bool {
	for _, network := range trustedProxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// resolveClientIP trusts X-Forwarded-For and X-Real-IP only when the direct
// peer is itself on a private network.
func resolveClientIP(remoteAddr, forwardedFor, realIP string) string {
	remoteIP := net.ParseIP(remoteAddr)
	if remoteIP == nil || !isPrivateIP(remoteIP) {
		return remoteAddr
	}

	for _, ip := range strings.Split(forwardedFor, ",") {
		parsed := net.ParseIP(strings.TrimSpace(ip))
		if parsed != nil && !isPrivateIP(parsed) {
			return parsed.String()
		}
	}

	if parsed := net.ParseIP(strings.TrimSpace(realIP)); parsed != nil && !isPrivateIP(parsed) {
		return parsed.String()
	}

	return remoteAddr
}

func ProxyIPMiddleware(ctx iris.Context) {
	ip := resolveClientIP(ctx.RemoteAddr(), ctx.GetHeader("X-Forwarded-For"), ctx.GetHeader("X-Real-IP"))
	ctx.Values().Set(clientIPKey, ip)
	ctx.Next()
}

func ClientIP(ctx iris.Context) string {
	return ctx.Values().GetString(clientIPKey)
}

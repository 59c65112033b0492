package domain

import (
	"net"
	"strings"
)

// RequestContext is what the access gate needs to know about an inbound call.
type RequestContext struct {
	RemoteIP string
	APIKey   string
}

// IsLoopback reports whether the call originates from the local host.
func (r RequestContext) IsLoopback() bool {
	host := strings.TrimSpace(r.RemoteIP)
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

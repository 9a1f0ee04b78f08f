package http

import (
	"net"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
)

const envProduction = "production"

// createUpgrader builds an upgrader whose origin check depends on the environment.
// Requests without an Origin header come from non-browser clients and are accepted.
func createUpgrader(cfg WSConfig, environment string) websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
	}

	permissive := environment != envProduction
	upgrader.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if isAllowedOrigin(origin, cfg.AllowedOrigins) {
			return true
		}
		return permissive && (isLocalhostOrigin(origin) || isPrivateOrigin(origin))
	}
	return upgrader
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func isLocalhostOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	hostname := u.Hostname()
	return hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1"
}

// isPrivateOrigin reports whether the origin host is an RFC 1918 or unique-local address.
func isPrivateOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	ip := net.ParseIP(u.Hostname())
	return ip != nil && ip.IsPrivate()
}

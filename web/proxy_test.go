package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		realIP    string
		want      string
	}{
		{"public peer ignores headers", "8.8.8.8", "1.2.3.4", "5.6.7.8", "8.8.8.8"},
		{"private peer uses first public forwarded", "10.0.0.2", "192.168.1.1, 1.2.3.4, 5.6.7.8", "", "1.2.3.4"},
		{"private peer falls back to real ip", "172.16.0.9", "10.1.1.1", "9.9.9.9", "9.9.9.9"},
		{"private peer with only private hops", "192.168.0.5", "10.0.0.1", "10.0.0.2", "192.168.0.5"},
		{"loopback peer is trusted", "127.0.0.1", "203.0.113.7", "", "203.0.113.7"},
		{"unparsable remote returned as is", "unix-socket", "1.2.3.4", "", "unix-socket"},
		{"garbage headers ignored", "10.0.0.2", "nope, also-nope", "???", "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveClientIP(tt.remote, tt.forwarded, tt.realIP))
		})
	}
}

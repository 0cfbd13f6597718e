// Package transport builds the HTTP client used to reach the reporting API.
//
// By default the client connects directly (honoring HTTPS_PROXY and
// friends, like any Go program). When a SOCKS5 proxy address is given,
// every connection is dialed through it instead; this is how hosts that
// may only egress through Tor or an SSH tunnel report abuse.
package transport

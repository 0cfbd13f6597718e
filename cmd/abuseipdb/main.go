// Package main provides the entry point for the abuseipdb CLI.
//
// abuseipdb reports an abusive IP address to AbuseIPDB. It is meant to be
// called from a fail2ban action:
//
//	abuseipdb <ip> <categories> <comment>
//
// See --help for all available options.
package main

func main() {
	Execute()
}

// Keystone bootstraps the market-data platform's configuration resource and
// resolves connection descriptors from it.
//
// Usage:
//
//	# Create or heal config.toml and publish it
//	keystone init
//
//	# Report missing sections without touching the file
//	keystone check --config /etc/tickline/config.toml
//
//	# Print the write-role analytics store descriptor
//	keystone resolve storage --role write
//
//	# Print the read-mode cache descriptor for the greeks slot, as JSON
//	keystone resolve cache --purpose greeks --mode read --output json
//
//	# Run every resolver and report what is not usable
//	keystone doctor
//
//	# Report edits to the resource until interrupted
//	keystone watch --listen :9464
package main

func main() {
	Execute()
}

/*
Package tls turns the certificate and key paths resolved from the [tls]
section into a usable server configuration.

	paths, err := resolver.TLS()
	if err != nil {
		return err
	}
	cfg, err := tls.ServerConfig(paths.CertPath, paths.KeyPath, tls.Options{})

ServerConfig defaults to TLS 1.3. The certificate must parse and be inside
its validity window. Inspect summarizes a certificate for diagnostics and
warns when it expires within 30 days.
*/
package tls

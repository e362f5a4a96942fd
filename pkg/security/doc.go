/*
Package security holds keystone's transport security helpers.

The tls subpackage turns the certificate and key paths resolved from the
[tls] section into a server configuration and reports certificate validity:

	paths, err := resolver.TLS()
	if err != nil {
		return err
	}
	cfg, err := tls.ServerConfig(paths.CertPath, paths.KeyPath, tls.Options{})
*/
package security

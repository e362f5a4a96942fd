package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/resolve"
	securitytls "tickline-hq/keystone/pkg/security/tls"
	"tickline-hq/keystone/pkg/telemetry/logging"
)

var resolveFlags struct {
	role        string
	purpose     string
	mode        string
	name        string
	inspect     bool
	showSecrets bool
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print a resolved connection descriptor",
	Long: `Bootstrap the configuration resource, then resolve one connection
descriptor from it. Passwords and API secrets are masked unless
--show-secrets is given.

Examples:
  keystone resolve storage --role write
  keystone resolve cache --purpose index --mode read --output json
  keystone resolve server --name realtime_stream
  keystone resolve tls --inspect
  keystone resolve messaging
  keystone resolve upstream --show-secrets`,
}

var resolveStorageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Analytics store descriptor for a role",
	Args:  cobra.NoArgs,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		role, err := resolve.ParseRole(resolveFlags.role)
		if err != nil {
			return err
		}
		r, err := bootstrapResolver(cmd, s)
		if err != nil {
			return err
		}
		conn, err := r.Storage(role)
		if err != nil {
			return cli.NewCommandError("resolve storage", err)
		}
		return s.print(cli.Fields{
			{Key: "role", Value: conn.Role.String()},
			{Key: "connection_string", Value: conn.ConnectionString()},
			{Key: "endpoint", Value: conn.Endpoint},
			{Key: "protocol", Value: conn.Protocol},
			{Key: "database", Value: conn.Database},
			{Key: "user", Value: conn.User},
			{Key: "password", Value: secret(conn.Password)},
		})
	}),
}

var resolveCacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Cache descriptor for a purpose and access mode",
	Args:  cobra.NoArgs,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		purpose, err := resolve.ParsePurpose(resolveFlags.purpose)
		if err != nil {
			return err
		}
		mode, err := resolve.ParseRole(resolveFlags.mode)
		if err != nil {
			return err
		}
		r, err := bootstrapResolver(cmd, s)
		if err != nil {
			return err
		}
		conn, err := r.Cache(purpose, mode)
		if err != nil {
			return cli.NewCommandError("resolve cache", err)
		}
		connStr := conn.RedactedConnectionString()
		if resolveFlags.showSecrets {
			connStr = conn.ConnectionString()
		}
		return s.print(cli.Fields{
			{Key: "purpose", Value: conn.Purpose.String()},
			{Key: "mode", Value: conn.Mode.String()},
			{Key: "connection_string", Value: connStr},
			{Key: "host", Value: conn.Host},
			{Key: "port", Value: conn.Port},
			{Key: "user", Value: conn.User},
			{Key: "password", Value: secret(conn.Password)},
			{Key: "slot", Value: conn.Slot},
		})
	}),
}

var resolveServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Host and port of a named internal server",
	Args:  cobra.NoArgs,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		name, err := resolve.ParseServerName(resolveFlags.name)
		if err != nil {
			return err
		}
		r, err := bootstrapResolver(cmd, s)
		if err != nil {
			return err
		}
		ep, err := r.Server(name)
		if err != nil {
			return cli.NewCommandError("resolve server", err)
		}
		return s.print(cli.Fields{
			{Key: "name", Value: ep.Name.String()},
			{Key: "address", Value: ep.Address()},
			{Key: "host", Value: ep.Host},
			{Key: "port", Value: ep.Port},
		})
	}),
}

var resolveTLSCmd = &cobra.Command{
	Use:   "tls",
	Short: "Certificate and key paths",
	Args:  cobra.NoArgs,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		r, err := bootstrapResolver(cmd, s)
		if err != nil {
			return err
		}
		paths, err := r.TLS()
		if err != nil {
			return cli.NewCommandError("resolve tls", err)
		}
		fields := cli.Fields{
			{Key: "cert_path", Value: paths.CertPath},
			{Key: "key_path", Value: paths.KeyPath},
		}
		if resolveFlags.inspect {
			info, warning, err := securitytls.Inspect(paths.CertPath, paths.KeyPath)
			if err != nil {
				return cli.NewCommandError("resolve tls", err)
			}
			fields = append(fields,
				cli.Field{Key: "subject", Value: info.Subject},
				cli.Field{Key: "issuer", Value: info.Issuer},
				cli.Field{Key: "not_after", Value: info.NotAfter},
				cli.Field{Key: "dns_names", Value: info.DNSNames},
			)
			if warning != "" {
				fields = append(fields, cli.Field{Key: "warning", Value: warning})
			}
		}
		return s.print(fields)
	}),
}

var resolveMessagingCmd = &cobra.Command{
	Use:   "messaging",
	Short: "Broker list and topic",
	Args:  cobra.NoArgs,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		r, err := bootstrapResolver(cmd, s)
		if err != nil {
			return err
		}
		conn, err := r.Messaging()
		if err != nil {
			return cli.NewCommandError("resolve messaging", err)
		}
		fields := cli.Fields{
			{Key: "brokers", Value: strings.Join(conn.Brokers, ",")},
			{Key: "topic", Value: conn.Topic},
		}
		if conn.GroupID != "" {
			fields = append(fields, cli.Field{Key: "group_id", Value: conn.GroupID})
		}
		return s.print(fields)
	}),
}

var resolveUpstreamCmd = &cobra.Command{
	Use:   "upstream",
	Short: "Upstream broker API credentials",
	Args:  cobra.NoArgs,
	RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
		r, err := bootstrapResolver(cmd, s)
		if err != nil {
			return err
		}
		creds, err := r.Upstream()
		if err != nil {
			return cli.NewCommandError("resolve upstream", err)
		}
		return s.print(cli.Fields{
			{Key: "user_name", Value: creds.UserName},
			{Key: "api_key", Value: creds.APIKey},
			{Key: "api_secret", Value: secret(creds.APISecret)},
		})
	}),
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.AddCommand(
		resolveStorageCmd,
		resolveCacheCmd,
		resolveServerCmd,
		resolveTLSCmd,
		resolveMessagingCmd,
		resolveUpstreamCmd,
	)

	resolveCmd.PersistentFlags().BoolVar(&resolveFlags.showSecrets, "show-secrets", false, "print passwords and API secrets")
	resolveStorageCmd.Flags().StringVar(&resolveFlags.role, "role", "read", "identity: read, write")
	resolveCacheCmd.Flags().StringVar(&resolveFlags.purpose, "purpose", "api", "routing slot: api, greeks, futures, index")
	resolveCacheCmd.Flags().StringVar(&resolveFlags.mode, "mode", "read", "access mode: read, write")
	resolveServerCmd.Flags().StringVar(&resolveFlags.name, "name", "", "server: auth, ingestion, analysis, realtime_stream")
	resolveTLSCmd.Flags().BoolVar(&resolveFlags.inspect, "inspect", false, "load the key pair and print certificate details")
	_ = resolveServerCmd.MarkFlagRequired("name")
}

func bootstrapResolver(cmd *cobra.Command, s *session) (*resolve.Resolver, error) {
	if _, err := s.bootstrap(cmd.Context()); err != nil {
		return nil, err
	}
	return s.resolver(), nil
}

func secret(value string) string {
	if value == "" || resolveFlags.showSecrets {
		return value
	}
	return logging.Masked
}

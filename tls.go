// File: argconf/tls.go
package argconf

// Names of the shared TLS options.
const (
	TLSKeystoreLocation   = "tls-keystore-location"
	TLSKeystorePassword   = "tls-keystore-password"
	TLSTruststoreLocation = "tls-truststore-location"
	TLSTruststorePassword = "tls-truststore-password"
	TLSEnabledCiphers     = "tls-enabled-ciphers"
	TLSEnabledProtocols   = "tls-enabled-protocols"
)

// TLSOptions is the option catalog common to components that secure their
// transport. Not all settings are always needed; without client
// authentication no keystore is necessary, for example. These are ordinary
// schema data, meant to be merged into an application Description alongside
// its own options.
func TLSOptions() []Option {
	return []Option{
		{
			Name:          TLSKeystoreLocation,
			TakesArgument: true,
			Help:          "The location of the keystore to use, in PKCS12 format.",
			Documentation: "Specify a file in PKCS12 format that should be used to obtain keys " +
				"used for encryption. The keystore can contain additional keys beside the " +
				"needed one, in that case the first suitable key that is found will be used.",
		},
		{
			Name:          TLSKeystorePassword,
			TakesArgument: true,
			Help:          "The password that is necessary to access the keystore, if one is required.",
			Documentation: "The password that is necessary to access the keystore, if one is required.",
		},
		{
			Name:          TLSTruststoreLocation,
			TakesArgument: true,
			Help:          "The location of the truststore to use.",
			Documentation: "Specify a file in PKCS12 format that should be used to check if " +
				"certificates are signed by a trusted authority. Any certificate that was " +
				"signed with the private key belonging to one of the public keys in this " +
				"truststore will be accepted as valid.",
		},
		{
			Name:          TLSTruststorePassword,
			TakesArgument: true,
			Help:          "The password that is necessary to access the truststore, if one is required.",
			Documentation: "The password that is necessary to access the truststore, if one is required.",
		},
		{
			Name:          TLSEnabledCiphers,
			TakesArgument: true,
			Repeatable:    true,
			Help:          "Cipher suites that are accepted when negotiating an encryption mode.",
			Documentation: "Whitelists the cipher suites that are acceptable when initiating a " +
				"secured connection. If not given, the TLS stack's default list is used.",
		},
		{
			Name:          TLSEnabledProtocols,
			TakesArgument: true,
			Repeatable:    true,
			Help:          "A list of acceptable protocol versions to use.",
			Documentation: "Defines the protocol versions that may be used. Any peer that does " +
				"not support one of the versions listed here will be rejected.",
		},
	}
}

// TLSConfig is the typed form of the TLS option set. It implements
// Configurable, so it can be resolved standalone or serve as the template for
// embedding the options into a larger application schema.
type TLSConfig struct {
	KeystoreLocation   string   `opt:"tls-keystore-location"`
	KeystorePassword   string   `opt:"tls-keystore-password"`
	TruststoreLocation string   `opt:"tls-truststore-location"`
	TruststorePassword string   `opt:"tls-truststore-password"`
	EnabledCiphers     []string `opt:"tls-enabled-ciphers"`
	EnabledProtocols   []string `opt:"tls-enabled-protocols"`
}

// ConfigDescription implements Configurable.
func (c *TLSConfig) ConfigDescription() Description {
	return Description{
		Name:    "tls",
		Version: "0.1",
		About:   "Library of TLS options to be merged into other configurations.",
		Options: TLSOptions(),
	}
}

// ParseValues implements Configurable.
func (c *TLSConfig) ParseValues(r *Resolved) error {
	return r.Scan(c)
}

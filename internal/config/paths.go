package config

const (
	AppName = "toggl-cli"

	// TokenEnvVarName short-circuits credential resolution entirely: when set
	// and non-empty, the keyring is neither read nor written.
	TokenEnvVarName = "TOGGL_API_TOKEN" // #nosec G101 -- environment variable name

	// CredentialsDirEnvVarName controls the credential storage root directory.
	// toggl-cli keyring files are stored under: <dir>/toggl-cli/keyring.
	CredentialsDirEnvVarName = "TOGGL_CREDENTIALS_DIR" // #nosec G101 -- environment variable name

	// KeyringPasswordEnvVarName provides the keyring file-backend password for
	// non-interactive environments.
	KeyringPasswordEnvVarName = "TOGGL_KEYRING_PASSWORD" // #nosec G101 -- environment variable name

	// KeyringBackendEnvVarName controls keyring backend selection. Supported
	// values: auto|default|file|keychain|wincred|secret-service.
	KeyringBackendEnvVarName = "TOGGL_KEYRING_BACKEND"
)

const (
	// KeyringService is the fixed service name under which the API token is
	// stored. Not user-configurable.
	KeyringService = "toggl-cli"

	// KeyringTokenKey is the fixed account identifier for the API token entry.
	KeyringTokenKey = "api_token" // #nosec G101
)

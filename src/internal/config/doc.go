// Package config loads the admin console configuration.
//
// Configuration is read from a TOML file and then overridden from the
// environment, using the same variable names as the dashboard's runtime
// config:
//
//	NUXT_API_CASAVA_BASE_URL    services.casava_base_url
//	NUXT_API_SMEDAN_BASE_URL    services.smedan_base_url
//	NUXT_GOOGLE_CLIENT_ID       auth.google_client_id
//	NUXT_GOOGLE_CLIENT_SECRET   auth.google_client_secret
//	NUXT_NEXTAUTH_URL           auth.nextauth_url
//	CASAVA_SESSION_TOKEN        auth.session_token
//
// Example file:
//
//	[services]
//	casava_base_url = "https://api.casava.test/v1"
//	smedan_base_url = "https://smedan.casava.test/api"
//
//	[auth]
//	nextauth_url = "https://admin.casava.test"
//
//	[http]
//	timeout_seconds = 30
//
// Without a file, Default values are used and the environment still applies.
package config

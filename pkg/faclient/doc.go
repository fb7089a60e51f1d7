// Package faclient provides the primary entry point for constructing a
// FusionAuth API client that implements the fusionauth.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the fusionauth package. Most applications
// should import faclient to build a client, then use the returned
// fusionauth.Client to access resource-specific clients, for example
// Users(), Applications(), JWT(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/fusionauth-client/pkg/faclient"
//	  "github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a base URL (anonymous endpoints only).
//	  cli, err := faclient.New(&fusionauth.Config{BaseURL: "https://auth.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an API key for authenticated endpoints:
//	  cli, err = faclient.New(&fusionauth.Config{
//	    BaseURL: "https://auth.example.com",
//	    APIKey:  "bf69486b-4733-4470-a592-f1bfce7af580",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the fusionauth.Client interface
//	  user, err := cli.Users().GetByEmail(ctx, "jane@example.com")
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// # Tenants
//
// A client built with Config.TenantID set sends the X-FusionAuth-TenantId
// header on every request, scoping it to that tenant. Use NewWithTenant as
// a shorthand.
//
// # Helpers
//
// The package also provides convenience constructors NewWithBaseURL,
// NewWithAPIKey, and NewWithTenant that wrap New with the appropriate
// configuration.
package faclient

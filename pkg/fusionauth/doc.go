// Package fusionauth defines the public surface of the FusionAuth API
// client: the Client interface, configuration, domain types, and error
// types, plus local helpers for JWT verification and two-factor codes.
//
// Create a client with github.com/fivetwenty-io/fusionauth-client/pkg/faclient:
//
//	client, err := faclient.New(&fusionauth.Config{
//		BaseURL: "https://auth.example.com",
//		APIKey:  os.Getenv("FUSIONAUTH_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Users().GetByEmail(ctx, "jared@piedpiper.com")
package fusionauth

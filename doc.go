// Package mailpit provides a Go client for the Mailpit email-testing
// server's HTTP API.
//
// The client covers messages, tags, send/release, diagnostic checks
// (HTML compatibility, link validation, SpamAssassin) and the Chaos
// fault-injection configuration. Every method performs exactly one HTTP
// round trip and is safe for concurrent use.
//
// Basic usage:
//
//	client, err := mailpit.New("http://localhost:8025")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	summary, err := client.ListMessages(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, msg := range summary.Messages {
//	    fmt.Println(msg.Subject)
//	}
package mailpit

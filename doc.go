// Package triggers provides a Go client SDK for the Triggers API, a
// remote event-ingestion service: submitting events, listing a paginated
// inbox, fetching event detail, and acknowledging or deleting events.
//
// Basic usage:
//
//	client, err := triggers.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	event, err := client.CreateEvent(ctx, triggers.CreateEventParams{
//	    Source:    "app",
//	    EventType: "user.created",
//	    Payload:   map[string]any{"id": "123"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Created event:", event.ID)
//
// Requests can optionally be signed with a shared secret
// (WithSigningSecret), letting the server verify authenticity and
// integrity without mutual TLS. Errors carry one of a closed set of kinds
// (Validation, Unauthorized, NotFound, Conflict, PayloadTooLarge,
// RateLimited, Internal, Network, Unknown) so callers can branch with a
// single switch, or use errors.Is with the package sentinels.
package triggers

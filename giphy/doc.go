// Package giphy provides a client for the Giphy REST API.
//
// The package turns typed method calls into correctly-formed HTTP requests,
// executes them asynchronously, and maps the JSON responses back into typed
// values or typed errors. It models the read-only API surface: search,
// trending, translate, random, lookup by ID, term suggestions and the
// category tree.
//
// # Architecture
//
//   - Endpoint: a closed set of operation types, each carrying the exact
//     parameters its request needs; BuildRequest resolves one into a
//     RequestSpec (method, absolute URL, headers, optional body)
//   - Operation: a single-shot asynchronous executor with cooperative
//     cancellation and an at-most-once completion callback
//   - mappers: pure functions converting the untyped JSON tree into typed
//     responses, failing on the first malformed field with no partial results
//   - Client: ties the three together behind typed per-operation methods
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := giphy.NewClient("your-api-key", logger,
//		giphy.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Search(ctx, "cats", giphy.MediaTypeGif, 0, 25, "g", "en")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, item := range resp.Data {
//		fmt.Println(item.Title, item.URL)
//	}
//
// # Error Handling
//
// Every failure is reported as exactly one of the disjoint error types:
//
//   - TransportError: no HTTP response was obtained
//   - ParseError: the body is not valid JSON
//   - ShapeError: the body parsed but the root is not an object
//   - HTTPError: a non-200 response; the API-reported meta.status and
//     meta.msg take precedence over the transport status when present
//   - MappingError: a required field is missing or has the wrong shape
//
// Errors are terminal for the call they occurred on. The client never
// retries, never substitutes defaults, and never returns a partially
// populated response.
package giphy

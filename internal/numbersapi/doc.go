// Package numbersapi fetches number trivia from a Numbers API compatible
// service. Requests are rate limited and retried on transient failures;
// the response body is returned as an opaque string.
package numbersapi

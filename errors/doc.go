/*
Package errors implements the coded errors used across the asset registry.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when necessary. Each root error carries a unique
numeric code, which allows the embedding environment to distinguish error
kinds without string matching.

If you want to register a custom error - use Register(code, description).
The registry package reserves codes 100~109 for its domain errors.

There is also support for stacktraces. Ensure you create the error using
Wrap/Wrapf at the point of creation so a stacktrace is attached. If you wrap
multiple times, only the first wrap records the stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more context
	%s is just the error message
	%+v is the full stack trace
*/
package errors

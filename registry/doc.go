/*

Package registry provides the mint/publish/transfer core of the asset
registry.

This package is a data container. Think of it as an implementation of a
document store where every document carries a globally unique identifier
and resides in exactly one per-owner collection at any observable point.
The payload type of an asset is supplied by the caller and stays opaque to
the registry.

The package does not authenticate signers and does not persist anything on
its own: it is meant to be embedded in an execution environment that
provides addressing, signer authentication and storage for each top level
call.

*/

package registry

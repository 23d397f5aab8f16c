/*

Package assetreg defines the core types used throughout the asset registry:
owner and creator addresses, and the key-value storage interfaces all
registry state is kept behind.

The mint/publish/transfer operations live in the registry subpackage,
identifier allocation in guid, and an in-memory storage backend suitable
for tests and embedding in store.

*/

package assetreg

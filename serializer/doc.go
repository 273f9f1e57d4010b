// Package serializer writes Go values into document trees using class
// metadata from a type catalog.
//
// The engine walks an object graph by address. Every value is compared
// against a default instance of its type; with KeepDefaults unset, values
// equal to their default are written as the explicit-default marker {} and
// members that are entirely default are left out of their parent object.
//
// Dispatch for a class runs an ordered list of steps and stops at the first
// that applies:
//
//	custom     a serializer registered for the exact type id
//	enum       the enum serializer, for classes with enum values
//	generic    a serializer registered for the class's generic type id
//	container  StoreContainer, for sequence and smart-pointer containers
//	class      StoreClass, writing the "$type" tag first when requested
//
// Pointer and interface elements pass through a resolver that dereferences
// the slot, looks up the dynamic type and decides whether a type tag is
// needed. A tag is written only when the dynamic type differs from the
// declared type and from the type of the default.
//
// Failures never abort a pass. Each failure is reported once through the
// reporting callback with its document path, e.g. ".list[1].x", and the
// combined result.Status is returned to the caller together with the
// best-effort document. Callers must not pass cyclic object graphs.
package serializer

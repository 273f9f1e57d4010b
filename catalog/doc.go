// Package catalog builds class metadata for Go types by reflection.
//
// A Catalog maps type ids to meta.ClassData and can allocate default
// instances. Types are registered recursively: registering a struct also
// registers the types of its fields.
//
// Mapping rules:
//
//   - bool, integers, floats and strings are scalar classes. A named scalar
//     such as "type Meters float64" records the basic type as its generic
//     type so scalar serializers apply to it.
//   - Structs become classes. Exported fields are elements in declaration
//     order; embedded structs are base classes whose members are written
//     into the enclosing object. The `doc` tag renames a field
//     (`doc:"name"`), drops it (`doc:"-"`) or disables default comparison
//     (`doc:",nodefault"`).
//   - *T and interface fields are pointer elements. Their dynamic type is
//     discovered through the class RTTI.
//   - Slices and arrays are sequence containers; maps are associative
//     containers; Ref[T] is a smart pointer holding at most one value.
//   - Complex numbers, channels, functions and unsafe pointers cannot be
//     registered.
//
// Type ids are UUIDv5 values derived from the package path and type name,
// so they are stable across processes.
package catalog

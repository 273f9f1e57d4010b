// Package meta describes type layouts for the document serializer.
//
// A ClassData is the read-only description of one type: its ordered
// elements (fields at byte offsets), an optional Container capability, an
// optional RTTI capability used to discover the dynamic type behind a
// pointer slot, and optional enum and event hooks. ClassData values are
// owned by a type catalog and must not change while a value is written.
package meta

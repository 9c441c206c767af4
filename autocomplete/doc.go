// Package autocomplete implements the `<>` inline autocomplete layered on top
// of the buffer document model.
//
// Everything here is pure over immutable buffer.Document values:
//
//   - Detect decides whether a just-typed rune opens a session.
//   - Extract recomputes the query between the trigger marker and the caret.
//   - Filter and Catalog narrow the suggestion list by case-insensitive prefix.
//   - Session is the Closed/Open navigation state machine.
//   - InsertEntity and RemoveEntity turn the marker and query into an atomic
//     AUTOCOMPLETE entity and take it out again as one unit.
//
// The editor package owns the Session, routes keys through KeyMap and pushes
// the returned documents into its buffer.
package autocomplete

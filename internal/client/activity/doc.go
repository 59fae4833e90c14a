// Package activity keeps the bounded log of completed uploads.
//
// The log itself (Log) owns the trimming rule: after every Append at most
// Max entries remain, oldest dropped first. Persistence is delegated to a
// Store with read-all / overwrite semantics; MemoryStore and the SQLite-backed
// SQLiteStore are provided.
package activity

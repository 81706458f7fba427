// Package models defines the core domain models for topten.
//
// # Aggregate
//
// TopTenList is the aggregate root. It exclusively owns its criteria, items,
// users and (through items) ratings. Child entities have no identity outside
// their parent list, and the whole list is always read and written as one
// document.
//
// # Ratings
//
// A Rating value is either a score in [1,5] or NoExperience (-1), an explicit
// abstention. A user who never rated a criterion has no Rating record at all,
// which is how "unrated" differs from "no experience".
//
// # Design Principles
//
//  1. **Whole-aggregate writes**: helpers here mutate the in-memory list only;
//     persisting is the caller's job.
//  2. **IDs, not pointers**: relationships use ID strings so the aggregate
//     serializes cleanly.
//  3. **Secrets stay server-side**: the owner secret is stored as a hash and
//     never leaves the package boundary in clear text.
package models

// Package bard scrapes a public archive of Shakespeare's plays and parses
// the semi-structured HTML of a play's single-page "entire play" view into
// a hierarchical model (acts, scenes, speeches, stage directions), with
// query and export operations on top.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/), with
// scraping orchestration in archive/.
package bard

// SPDX-License-Identifier: MIT
// Package ioutil provides the engine's external I/O surface: a CSV
// edge-list graph loader, a DOT writer, and a summary-statistics helper,
// supplementing spec.md §6 per SPEC_FULL.md's DOMAIN STACK.
//
// Grounded on project/graph_utils.py's load_graph/save_graph_dot (original
// source), expressed with the stdlib's encoding/csv (no pack repo owns a
// CSV library, so this is the one ambient concern in this module built on
// the standard library — see DESIGN.md for the justification).
package ioutil

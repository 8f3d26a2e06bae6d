// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved, and
// remediation suggestions. Issue cards pair well-known failure conditions
// (name not found, roster unreadable) with Markdown guidance rendered for the
// terminal.
package issue

// SPDX-License-Identifier: MPL-2.0

// skydir is the staff directory CLI.
//
// The root command looks up a staff member's favourite astronomical object;
// subcommands cover office lookup, roster listing, and configuration
// management.
package main

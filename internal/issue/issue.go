// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

// Id identifies a well-known failure condition with rendered guidance.
type Id int

const (
	NameNotFoundId Id = iota + 1
	RosterNotFoundId
	RosterParseErrorId
	ConfigLoadFailedId
)

// MarkdownMsg is Markdown text rendered to the terminal when an issue is shown.
type MarkdownMsg string

// Issue pairs a failure condition with Markdown guidance for the user.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render produces the terminal rendering of the issue's guidance using the
// given glamour style path ("auto", "dark", "light", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	nameNotFoundIssue = &Issue{
		id: NameNotFoundId,
		mdMsg: `
# Name not found!

The name you asked for has no entry in the staff directory.

## Things you can try:
- List everyone in the directory:
~~~
$ skydir list
~~~

- Check the spelling. Matching ignores case and extra spaces, but the
  letters themselves must match the roster entry.
- If the person is missing from the roster, add a line to your roster file
  and point skydir at it:
~~~
$ skydir --roster /path/to/staff.txt "Their Name"
~~~`,
	}

	rosterNotFoundIssue = &Issue{
		id: RosterNotFoundId,
		mdMsg: `
# Roster file not found!

A roster file was requested but could not be read.

## Things you can try:
- Check the path passed via --roster or set in your config file:
~~~
$ skydir config show
~~~

- Remove the roster_path setting to fall back to the built-in roster.

## Roster file format:
~~~
# name: favourite object[: office]
Edwin Hubble: M31: 100
Henrietta Leavitt: Delta Cephei
~~~`,
	}

	rosterParseErrorIssue = &Issue{
		id: RosterParseErrorId,
		mdMsg: `
# Failed to parse roster!

The roster file contains a line that does not match the expected format.

## Expected format (one entry per line):
~~~
Name: favourite object[: office]
~~~

Blank lines and lines starting with '#' are ignored.

## Common issues:
- A line without a ':' separator
- An entry whose name is empty
- Two entries that normalize to the same name`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the skydir configuration file.

## Configuration file locations:
- Linux: ~/.config/skydir/config.toml
- macOS: ~/Library/Application Support/skydir/config.toml
- Windows: %APPDATA%\skydir\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ skydir config init
~~~

- Check the TOML syntax, or remove the file to use defaults.

## Example configuration:
~~~toml
roster_path = "/srv/dept/staff.txt"

[ui]
color_scheme = "auto"
verbose = false
~~~`,
	}

	issues = map[Id]*Issue{
		nameNotFoundIssue.Id():     nameNotFoundIssue,
		rosterNotFoundIssue.Id():   rosterNotFoundIssue,
		rosterParseErrorIssue.Id(): rosterParseErrorIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

// Get returns the issue registered under id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

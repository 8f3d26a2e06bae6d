// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"skydir/internal/config"
	"skydir/internal/directory"
	"skydir/internal/issue"
)

// glamourStyle maps the configured color scheme to a glamour style path.
func glamourStyle() string {
	if appConfig == nil {
		return "auto"
	}
	switch appConfig.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// issueFor picks the guidance card matching a failure, keyed off the
// directory sentinels. The bool is false when no card applies.
func issueFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, directory.ErrNotFound):
		return issue.NameNotFoundId, true
	case errors.Is(err, directory.ErrMalformedLine), errors.Is(err, directory.ErrDuplicateName):
		return issue.RosterParseErrorId, true
	case errors.Is(err, os.ErrNotExist):
		return issue.RosterNotFoundId, true
	default:
		return 0, false
	}
}

// renderIssue writes the guidance card for id to w. Rendering problems are
// logged and swallowed: guidance must never mask the original failure.
func renderIssue(w io.Writer, id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}

	out, err := iss.Render(glamourStyle())
	if err != nil {
		logger.Debug("failed to render issue card", "id", id, "err", err)
		return
	}
	fmt.Fprintln(w, out)
}

package session

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/rvpanel/internal/model"
	"github.com/jmylchreest/rvpanel/internal/notify"
)

// LearnMore is the label of the affordance that expands the description.
const LearnMore = "Learn more"

const (
	issuesURL    = "http://github.com/livestyle/issues/issues"
	appURL       = "http://livestyle.io/"
	noResponse   = "No response from LiveStyle app"
	unavailTitle = "Remote View is not available"
)

// Link renders text as a terminal hyperlink to href.
func Link(href, text string) string {
	return ansi.SetHyperlink(href) + text + ansi.ResetHyperlink()
}

// Fixed notifications.
var (
	MessageUnavailable = notify.NewMessage(
		unavailTitle,
		"Remote View only works for web-sites with HTTP, HTTPS and FILE protocols. "+LearnMore,
	)

	MessageNoOrigin = notify.NewMessage(
		unavailTitle,
		"Unable to get URL origin for current page. Please "+
			Link(issuesURL, "report this issue")+" with URL of your page.",
	)

	MessageConnecting = notify.Message{
		Title: notify.Show(notify.Spinner{Label: "Connecting"}),
	}

	MessageNoApp = notify.NewMessage(
		"No LiveStyle App",
		"Make sure "+Link(appURL, "LiveStyle app")+" is running.",
	)

	MessageReset = notify.ResetMessage()
)

// SessionMessage announces a newly created session.
func SessionMessage(resp *model.Response, localURL string) notify.Message {
	return notify.NewMessage(
		Link(PublicHref(resp.PublicID, localURL), resp.PublicURL()),
		fmt.Sprintf("Use this URL to view %s in any internet-connected browser, "+
			"mobile device, virtual machine or share it with your friends and colleagues.",
			resp.LocalSite),
	)
}

// ConnectedMessage describes a session found when the panel opens.
func ConnectedMessage(resp *model.Response, localURL string) notify.Message {
	return notify.NewMessage(
		Link(PublicHref(resp.PublicID, localURL), resp.PublicURL()),
		"Connected to "+resp.LocalSite,
	)
}

// ErrorMessage classifies a failed handshake. A missing LiveStyle app gets a
// fixed message; anything else shows the error text and code.
func ErrorMessage(resp *model.Response) notify.Message {
	if resp == nil {
		return notify.NewMessage("Error", noResponse)
	}
	if resp.ErrorCode == model.ErrCodeNoConnection {
		return MessageNoApp
	}

	comment := resp.Error
	if resp.ErrorCode != "" {
		comment += fmt.Sprintf(" (%s)", resp.ErrorCode)
	}
	return notify.NewMessage("Error", comment)
}

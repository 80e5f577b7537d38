package tui

import "github.com/matheus3301/shorty/internal/shortcut"

// Events broadcast by the demo shortcuts.
const (
	EventGoToInbox    = "event_goToInbox"
	EventGoToContacts = "event_goToContacts"
	EventToggleHelp   = "event_toggleHelp"
	EventQuit         = "event_quit"
	EventNext         = "event_next"
	EventPrev         = "event_prev"
	EventRefresh      = "event_refresh"
	EventCompose      = "event_compose"
	EventNewContact   = "event_newContact"
	EventSend         = "event_send"
	EventCancel       = "event_cancel"
)

// Page names.
const (
	PageInbox    = "inbox"
	PageContacts = "contacts"
	PageHelp     = "help"
)

// PageGroups maps a page to the shortcut group it declares.
var PageGroups = map[string]string{
	PageInbox:    "Inbox",
	PageContacts: "Contacts",
}

// DeclareGlobal buffers the shortcuts that live as long as the app.
func DeclareGlobal(svc *shortcut.Service) *shortcut.Service {
	return svc.
		On("g i", EventGoToInbox, "Go to inbox", "Navigation").
		On("g c", EventGoToContacts, "Go to contacts", "Navigation").
		OnKeyDown("j", EventNext, "Next item", "List").
		OnKeyDown("k", EventPrev, "Previous item", "List").
		On("?", EventToggleHelp, "Toggle help", "").
		OnGlobal("ctrl+q", EventQuit, "Quit", "")
}

// DeclarePage buffers the shortcuts of a page. Unknown pages declare nothing.
func DeclarePage(svc *shortcut.Service, page string) *shortcut.Service {
	switch page {
	case PageInbox:
		svc.On("r", EventRefresh, "Refresh inbox", PageGroups[page]).
			On("c", EventCompose, "Compose message", PageGroups[page])
	case PageContacts:
		svc.On("n", EventNewContact, "New contact", PageGroups[page])
	}
	return svc
}

// DeclareComposer buffers the shortcuts of the message input. They are
// meant to be bound to the input element, which keeps them out of the
// registry.
func DeclareComposer(svc *shortcut.Service) *shortcut.Service {
	return svc.
		OnKeyPress("ctrl+s", EventSend, "Send message", "Composer").
		OnKeyPress("esc", EventCancel, "Leave composer", "Composer")
}

// DeclareAll buffers every registry-visible demo shortcut, for listing
// without a running UI.
func DeclareAll(svc *shortcut.Service) *shortcut.Service {
	DeclareGlobal(svc)
	DeclarePage(svc, PageInbox)
	return DeclarePage(svc, PageContacts)
}

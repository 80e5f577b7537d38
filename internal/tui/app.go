package tui

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matheus3301/shorty/internal/bus"
	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/scope"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/trap"
	"github.com/matheus3301/shorty/internal/tui/model"
	"github.com/matheus3301/shorty/internal/tui/ui"
	"github.com/matheus3301/shorty/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const flashDuration = 2 * time.Second

// App is the demo TUI. Every key goes through the trap manager; shortcuts
// are declared on the service and broadcast to scopes that follow the page
// lifecycle.
type App struct {
	app    *tview.Application
	pages  *ui.Pages
	svc    *shortcut.Service
	traps  *trap.Manager
	global *scope.Scope
	page   *scope.Scope
	bus    *bus.Bus
	fmt    *keyfmt.Formatter
	data   *model.Model
	logger *zap.Logger

	crumbs   *ui.Crumbs
	menu     *ui.Menu
	status   *views.StatusBar
	inbox    *views.ListView
	contacts *views.ListView
	composer *views.Composer
	help     *views.HelpView

	done     chan struct{}
	stopOnce sync.Once
}

// NewApp creates the TUI application and activates the app-wide and inbox
// shortcuts.
func NewApp(app *tview.Application, svc *shortcut.Service, traps *trap.Manager, root *scope.Scope, b *bus.Bus, f *keyfmt.Formatter, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := ui.DefaultTheme()

	a := &App{
		app:      app,
		pages:    ui.NewPages(),
		svc:      svc,
		traps:    traps,
		global:   root.New(),
		bus:      b,
		fmt:      f,
		data:     model.New(),
		logger:   logger,
		crumbs:   ui.NewCrumbs(theme),
		menu:     ui.NewMenu(theme),
		status:   views.NewStatusBar(theme),
		inbox:    views.NewListView(theme, "Inbox"),
		contacts: views.NewListView(theme, "Contacts"),
		composer: views.NewComposer(),
		help:     views.NewHelpView(theme, f, svc.Active()),
		done:     make(chan struct{}),
	}

	root.SetFlush(func() { a.app.Draw() })

	a.setupLayout()
	a.setupGlobal()
	a.show(PageInbox)

	return a
}

func (a *App) setupLayout() {
	a.inbox.SetItems(a.data.Messages())
	a.contacts.SetItems(a.data.Contacts())
	a.composer.SetOnSend(func(text string) {
		a.data.Send(text)
		a.inbox.SetItems(a.data.Messages())
		a.inbox.SetCurrentItem(-1)
	})

	inboxFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.inbox, 0, 1, true).
		AddItem(a.composer, 1, 0, false)

	a.pages.AddPage(PageInbox, inboxFlex, true, false)
	a.pages.AddPage(PageContacts, a.contacts, true, false)
	a.pages.AddPage(PageHelp, a.help, true, false)
	a.pages.SetOnChange(func(stack []string) {
		a.crumbs.Update(ui.CrumbsFor(stack, a.pageShortcuts))
		if len(stack) > 0 {
			a.status.SetPage(stack[len(stack)-1])
		}
	})

	body := tview.NewFlex().
		AddItem(a.pages, 0, 1, true).
		AddItem(a.menu, 32, 0, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.app.SetRoot(root, true)
	a.app.SetInputCapture(a.traps.Capture)
}

func (a *App) setupGlobal() {
	a.global.On(EventGoToInbox, func() { a.show(PageInbox) })
	a.global.On(EventGoToContacts, func() { a.show(PageContacts) })
	a.global.On(EventToggleHelp, a.toggleHelp)
	a.global.On(EventNext, func() { a.move(1) })
	a.global.On(EventPrev, func() { a.move(-1) })
	a.global.On(EventQuit, a.Stop)

	a.activate(DeclareGlobal(a.svc), a.global)
}

// show replaces the page scope: the old page's shortcuts are torn down
// with it and the new page declares its own.
func (a *App) show(page string) {
	if a.page != nil {
		a.page.Destroy()
	}
	a.page = a.global.New()

	switch page {
	case PageInbox:
		a.page.On(EventRefresh, a.refresh)
		a.page.On(EventCompose, func() { a.app.SetFocus(a.composer.InputField) })
		a.activate(DeclarePage(a.svc, page), a.page)

		input := a.page.New()
		input.On(EventSend, a.composer.Send)
		input.On(EventCancel, func() { a.app.SetFocus(a.inbox) })
		a.activate(DeclareComposer(a.svc).Within(a.composer.InputField), input)
	case PageContacts:
		a.page.On(EventNewContact, a.newContact)
		a.activate(DeclarePage(a.svc, page), a.page)
	}

	a.pages.Reset(page)
	a.app.SetFocus(a.list())
	a.refreshKeys()
	a.logger.Debug("page shown", zap.String("page", page), zap.Stringer("scope", a.page.ID()))
}

func (a *App) activate(svc *shortcut.Service, ctx *scope.Scope) {
	if err := svc.BroadcastTo(ctx).Err(); err != nil {
		a.logger.Error("activate shortcuts", zap.Error(err), zap.Int("discarded", svc.Pending()))
		svc.Discard()
	}
}

func (a *App) refreshKeys() {
	active := a.svc.Active()
	a.menu.Update(ui.HintsFor(slices.Collect(active.All()), a.fmt))
	a.help.Refresh()
	a.status.SetActive(active.Len())
}

// pageShortcuts counts the registry entries a page declares.
func (a *App) pageShortcuts(page string) int {
	group, ok := PageGroups[page]
	if !ok {
		return 0
	}
	return len(a.svc.ActiveShortcuts(group))
}

func (a *App) list() *views.ListView {
	if a.pages.Stack()[0] == PageContacts {
		return a.contacts
	}
	return a.inbox
}

func (a *App) move(delta int) {
	if a.pages.Current() == PageHelp {
		row, _ := a.help.GetScrollOffset()
		a.help.ScrollTo(max(row+delta, 0), 0)
		return
	}
	if delta > 0 {
		a.list().Next()
	} else {
		a.list().Prev()
	}
}

func (a *App) toggleHelp() {
	if a.pages.Toggle(PageHelp) {
		a.app.SetFocus(a.help)
		return
	}
	a.app.SetFocus(a.list())
}

func (a *App) refresh() {
	msg := a.data.Refresh()
	a.inbox.SetItems(a.data.Messages())
	a.logger.Info("inbox refreshed", zap.String("message", msg))
}

func (a *App) newContact() {
	name := a.data.AddContact()
	a.contacts.SetItems(a.data.Contacts())
	a.contacts.SetCurrentItem(-1)
	a.logger.Info("contact added", zap.String("name", name))
}

// watch mirrors fired shortcut events onto the status bar.
func (a *App) watch() {
	events, unsubscribe := a.bus.Subscribe(scope.KindPrefix, 16)
	go func() {
		defer unsubscribe()
		for {
			select {
			case evt := <-events:
				name := strings.TrimPrefix(evt.Kind, scope.KindPrefix)
				a.app.QueueUpdateDraw(func() {
					a.status.Flash(name, flashDuration)
				})
			case <-a.done:
				return
			}
		}
	}()
}

// Run starts the TUI application and blocks until it stops.
func (a *App) Run() error {
	a.watch()
	return a.app.Run()
}

// Stop tears down every shortcut scope and stops the application.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
		a.global.Destroy()
		a.app.Stop()
	})
}

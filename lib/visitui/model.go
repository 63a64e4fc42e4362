// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1111philo/htc-app/lib/schema"
	"github.com/1111philo/htc-app/lib/tui"
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusSearch means keystrokes go to the guest search input; the
	// option dropdown is navigated with up/down while it is visible.
	FocusSearch FocusRegion = iota
	// FocusServices means navigation keys move the service checklist
	// cursor and enter/space toggles entries.
	FocusServices
	// FocusNotifications means navigation keys move the notification
	// row cursor and t toggles the row's status.
	FocusNotifications
	// FocusGuestModal means the new-guest modal is active. All input
	// routes to its fields until submit or cancel.
	FocusGuestModal
	// FocusNoteModal means the notification text modal is active.
	FocusNoteModal
	// FocusConfirmDiscard means a y/n discard confirmation is showing
	// over a modal with unsaved input.
	FocusConfirmDiscard
)

const (
	// searchDebounce is the quiet period after the last keystroke
	// before a search request is issued.
	searchDebounce = 500 * time.Millisecond

	// maxGuestOptions caps how many search matches the dropdown shows.
	maxGuestOptions = 50

	// requestTimeout bounds every backend call issued by the TUI.
	requestTimeout = 15 * time.Second
)

// Feedback is the banner shown after an action completes.
type Feedback struct {
	Text    string
	IsError bool
}

// Messages delivered by tea.Cmd goroutines.

// searchDebounceMsg fires when a search quiet period elapses. The
// generation identifies which edit armed the timer; only the latest
// generation issues a request.
type searchDebounceMsg struct {
	generation int
}

// searchResultMsg carries the outcome of a guest search. Results for
// stale generations are discarded on arrival.
type searchResultMsg struct {
	generation int
	guests     []schema.Guest
	err        error
}

// notificationsMsg carries a guest's notification list, already
// filtered to Active. Fenced by generation like search results so a
// slow fetch for a previously selected guest cannot clobber the
// current one.
type notificationsMsg struct {
	generation    int
	guestID       int
	notifications []schema.GuestNotification
	err           error
}

// visitResultMsg carries the outcome of a visit submission.
type visitResultMsg struct {
	visitID int
	err     error
}

// guestCreatedMsg carries the outcome of the new-guest modal submit.
// On success the guest has its backend-assigned ID filled in.
type guestCreatedMsg struct {
	guest schema.Guest
	err   error
}

// notificationCreatedMsg carries the outcome of a notification submit.
type notificationCreatedMsg struct {
	err error
}

// toggleResultMsg carries the outcome of an optimistic status toggle.
// prior is the status before the toggle, for rollback on failure.
type toggleResultMsg struct {
	notificationID int
	prior          schema.NotificationStatus
	err            error
}

// Config assembles a visit-creation model.
type Config struct {
	// Backend performs the API calls. Required.
	Backend Backend

	// Catalog is the service catalog fetched before the TUI starts.
	Catalog []schema.ServiceType

	// DefaultService is the service name preselected on load and
	// after every successful submit.
	DefaultService string

	// Theme controls colors. Zero value means DefaultTheme.
	Theme *tui.Theme

	// Logger receives diagnostics for failed background fetches.
	// Optional; defaults to a discard logger.
	Logger *slog.Logger
}

// Model is the top-level bubbletea model for the visit-creation TUI.
type Model struct {
	backend Backend
	theme   tui.Theme
	keys    KeyMap
	logger  *slog.Logger

	catalog            []schema.ServiceType
	defaultServiceName string

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	focus FocusRegion

	// Guest search state. Each edit bumps searchGeneration and arms a
	// fresh debounce timer; both the timer message and the eventual
	// response carry the generation they were issued for. fetched holds
	// the raw server rows for the current generation; options is the
	// fuzzy-narrowed view of them, re-ranked on every keystroke between
	// debounce windows. optionMatches carries the matched label
	// positions per option for dropdown highlighting.
	searchInput      textinput.Model
	searchGeneration int
	fetched          []schema.Guest
	options          []schema.Guest
	optionMatches    [][]int
	optionCursor     int

	// Selection state.
	selectedGuest *schema.Guest
	services      *tui.MultiSelect

	// Notifications for the selected guest, Active only.
	notificationGeneration int
	notifications          []schema.GuestNotification
	notificationCursor     int

	// Submission state.
	submitting bool
	feedback   Feedback

	// Modals. Nil when closed.
	guestModal *guestModal
	noteModal  *tui.TextModal
	// discardTarget is the modal focus to return to when the user
	// answers "n" to the discard confirmation.
	discardTarget FocusRegion
}

// NewModel creates a Model over the given backend and service catalog.
func NewModel(config Config) Model {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	theme := tui.DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search guests (name, birthday, ID)"
	searchInput.Prompt = "? "
	searchInput.Focus()

	serviceOptions := make([]tui.DropdownOption, len(config.Catalog))
	for index, service := range config.Catalog {
		serviceOptions[index] = tui.DropdownOption{
			Label: service.Name,
			ID:    service.ServiceID,
		}
	}

	model := Model{
		backend:            config.Backend,
		theme:              theme,
		keys:               DefaultKeyMap,
		logger:             logger,
		catalog:            config.Catalog,
		defaultServiceName: config.DefaultService,
		searchInput:        searchInput,
		services:           tui.NewMultiSelect(serviceOptions),
	}
	model.applyDefaultService()
	return model
}

// applyDefaultService checks the configured default service, falling
// back to the first catalog entry, or nothing when the catalog is
// empty.
func (model *Model) applyDefaultService() {
	service := schema.DefaultServiceType(model.catalog, model.defaultServiceName)
	if service != nil {
		model.services.Check(service.ServiceID)
	}
}

// SubmitEnabled reports whether the visit can be logged: a guest is
// selected and at least one service is checked. Recomputed on every
// read, so it always reflects the current selections.
func (model Model) SubmitEnabled() bool {
	return model.selectedGuest != nil &&
		len(model.services.SelectedIDs()) >= 1 &&
		!model.submitting
}

// SelectedGuest returns the current guest selection, or nil.
func (model Model) SelectedGuest() *schema.Guest {
	return model.selectedGuest
}

// Notifications returns the displayed notification rows.
func (model Model) Notifications() []schema.GuestNotification {
	return model.notifications
}

// SelectedServiceIDs returns the checked service IDs in catalog order.
func (model Model) SelectedServiceIDs() []int {
	return model.services.SelectedIDs()
}

// FeedbackBanner returns the current feedback banner.
func (model Model) FeedbackBanner() Feedback {
	return model.feedback
}

// Options returns the current guest dropdown entries.
func (model Model) Options() []schema.Guest {
	return model.options
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and applies asynchronous results.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		switch model.focus {
		case FocusGuestModal:
			return model.handleGuestModalKeys(message)
		case FocusNoteModal:
			return model.handleNoteModalKeys(message)
		case FocusConfirmDiscard:
			return model.handleConfirmDiscardKeys(message)
		case FocusServices:
			return model.handleServiceKeys(message)
		case FocusNotifications:
			return model.handleNotificationKeys(message)
		default:
			return model.handleSearchKeys(message)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case searchDebounceMsg:
		return model.handleSearchDebounce(message)

	case searchResultMsg:
		return model.handleSearchResult(message)

	case notificationsMsg:
		return model.handleNotifications(message)

	case visitResultMsg:
		return model.handleVisitResult(message)

	case guestCreatedMsg:
		return model.handleGuestCreated(message)

	case notificationCreatedMsg:
		return model.handleNotificationCreated(message)

	case toggleResultMsg:
		return model.handleToggleResult(message)
	}
	return model, nil
}

// handleSearchKeys routes input while the search pane has focus.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.FocusNext):
		model.focus = FocusServices
		model.searchInput.Blur()
		return model, nil

	case key.Matches(message, model.keys.NewGuest):
		model.guestModal = newGuestModal(model.theme)
		model.focus = FocusGuestModal
		return model, nil

	case key.Matches(message, model.keys.AddNotification):
		return model.openNoteModal()

	case key.Matches(message, model.keys.Submit):
		return model.submitVisit()

	case key.Matches(message, model.keys.Up):
		if len(model.options) > 0 {
			model.optionCursor--
			if model.optionCursor < 0 {
				model.optionCursor = len(model.options) - 1
			}
		}
		return model, nil

	case key.Matches(message, model.keys.Down):
		if len(model.options) > 0 {
			model.optionCursor++
			if model.optionCursor >= len(model.options) {
				model.optionCursor = 0
			}
		}
		return model, nil

	case key.Matches(message, model.keys.Select):
		if len(model.options) > 0 {
			guest := model.options[model.optionCursor]
			cmd := model.selectGuest(guest)
			return model, cmd
		}
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		model.clearOptions()
		return model, nil
	}

	// Everything else edits the search input. A changed value arms a
	// fresh debounce timer; the bumped generation makes any pending
	// timer and any in-flight search stale. The already-fetched rows
	// are re-ranked immediately so the dropdown narrows while the new
	// request is still pending.
	previous := model.searchInput.Value()
	var cmd tea.Cmd
	model.searchInput, cmd = model.searchInput.Update(message)
	if model.searchInput.Value() != previous {
		model.searchGeneration++
		model.optionCursor = 0
		model.rankOptions()
		generation := model.searchGeneration
		debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{generation: generation}
		})
		return model, tea.Batch(cmd, debounce)
	}
	return model, cmd
}

// handleSearchDebounce issues the search when the quiet period
// belonging to the latest edit elapses. An empty (after trimming)
// query never reaches the backend.
func (model Model) handleSearchDebounce(message searchDebounceMsg) (tea.Model, tea.Cmd) {
	if message.generation != model.searchGeneration {
		return model, nil
	}
	query := strings.TrimSpace(model.searchInput.Value())
	if query == "" {
		model.clearOptions()
		return model, nil
	}
	return model, model.searchCmd(message.generation, query)
}

func (model Model) searchCmd(generation int, query string) tea.Cmd {
	backend := model.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		guests, err := backend.SearchGuests(ctx, query)
		return searchResultMsg{generation: generation, guests: guests, err: err}
	}
}

// handleSearchResult applies a search response unless a newer edit has
// superseded it.
func (model Model) handleSearchResult(message searchResultMsg) (tea.Model, tea.Cmd) {
	if message.generation != model.searchGeneration {
		return model, nil
	}
	if message.err != nil {
		model.logger.Warn("guest search failed", "error", message.err)
		model.clearOptions()
		return model, nil
	}
	fetched := message.guests
	if len(fetched) > maxGuestOptions {
		fetched = fetched[:maxGuestOptions]
	}
	model.fetched = fetched
	model.rankOptions()
	if model.optionCursor >= len(model.options) {
		model.optionCursor = 0
	}
	return model, nil
}

// rankOptions rebuilds the dropdown entries by fuzzy-matching the
// fetched rows against the live query. Matching rows come back ordered
// by score with their matched label positions kept for highlighting.
// The backend also matches fields the label does not show, so when no
// label matches the fetched rows are listed unranked rather than
// hidden.
func (model *Model) rankOptions() {
	if len(model.fetched) == 0 {
		model.options = nil
		model.optionMatches = nil
		return
	}
	query := strings.TrimSpace(model.searchInput.Value())
	if query == "" {
		model.options = model.fetched
		model.optionMatches = make([][]int, len(model.fetched))
		return
	}

	// The option ID carries the fetched index so ranked entries map
	// back to their guests.
	labels := make([]tui.DropdownOption, len(model.fetched))
	for index, guest := range model.fetched {
		labels[index] = tui.DropdownOption{Label: guest.OptionLabel(), ID: index}
	}
	ranked := tui.RankOptions(labels, query)
	if len(ranked) == 0 {
		model.options = model.fetched
		model.optionMatches = make([][]int, len(model.fetched))
		return
	}

	options := make([]schema.Guest, len(ranked))
	matches := make([][]int, len(ranked))
	for index, entry := range ranked {
		options[index] = model.fetched[entry.Option.ID]
		matches[index] = entry.Match.Positions
	}
	model.options = options
	model.optionMatches = matches
}

// clearOptions drops the dropdown and the fetched rows behind it.
func (model *Model) clearOptions() {
	model.fetched = nil
	model.options = nil
	model.optionMatches = nil
	model.optionCursor = 0
}

// selectGuest records the selection and starts the notification fetch
// for it. The bumped generation fences out any fetch still in flight
// for a previously selected guest.
func (model *Model) selectGuest(guest schema.Guest) tea.Cmd {
	selected := guest
	model.selectedGuest = &selected
	model.clearOptions()
	model.searchInput.SetValue(guest.OptionLabel())
	model.searchInput.CursorEnd()

	model.notifications = nil
	model.notificationCursor = 0
	model.notificationGeneration++
	return model.fetchNotificationsCmd(model.notificationGeneration, guest.GuestID)
}

func (model Model) fetchNotificationsCmd(generation, guestID int) tea.Cmd {
	backend := model.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		guest, err := backend.GetGuest(ctx, guestID)
		if err != nil {
			return notificationsMsg{generation: generation, guestID: guestID, err: err}
		}
		return notificationsMsg{
			generation:    generation,
			guestID:       guestID,
			notifications: guest.ActiveNotifications(),
		}
	}
}

// handleNotifications applies a notification fetch unless a newer
// selection has superseded it.
func (model Model) handleNotifications(message notificationsMsg) (tea.Model, tea.Cmd) {
	if message.generation != model.notificationGeneration {
		return model, nil
	}
	if message.err != nil {
		model.logger.Warn("notification fetch failed",
			"guest_id", message.guestID, "error", message.err)
		return model, nil
	}
	model.notifications = message.notifications
	if model.notificationCursor >= len(model.notifications) {
		model.notificationCursor = 0
	}
	return model, nil
}

// handleServiceKeys routes input while the service checklist has focus.
func (model Model) handleServiceKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.FocusNext):
		if len(model.notifications) > 0 {
			model.focus = FocusNotifications
		} else {
			model.focus = FocusSearch
			model.searchInput.Focus()
		}
	case key.Matches(message, model.keys.Up):
		model.services.MoveUp()
	case key.Matches(message, model.keys.Down):
		model.services.MoveDown()
	case key.Matches(message, model.keys.ToggleEntry):
		model.services.Toggle()
	case key.Matches(message, model.keys.Submit):
		return model.submitVisit()
	case key.Matches(message, model.keys.NewGuest):
		model.guestModal = newGuestModal(model.theme)
		model.focus = FocusGuestModal
	case key.Matches(message, model.keys.AddNotification):
		return model.openNoteModal()
	}
	return model, nil
}

// handleNotificationKeys routes input while the notification rows have
// focus.
func (model Model) handleNotificationKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.FocusNext):
		model.focus = FocusSearch
		model.searchInput.Focus()
	case key.Matches(message, model.keys.Up):
		if len(model.notifications) > 0 && model.notificationCursor > 0 {
			model.notificationCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.notificationCursor < len(model.notifications)-1 {
			model.notificationCursor++
		}
	case key.Matches(message, model.keys.ToggleStatus):
		return model.toggleNotification()
	case key.Matches(message, model.keys.AddNotification):
		return model.openNoteModal()
	case key.Matches(message, model.keys.Submit):
		return model.submitVisit()
	}
	return model, nil
}

// toggleNotification applies the status flip optimistically and asks
// the backend to confirm. The prior status rides along in the result
// message so a rejection can roll the row back.
func (model Model) toggleNotification() (tea.Model, tea.Cmd) {
	if len(model.notifications) == 0 {
		return model, nil
	}
	row := &model.notifications[model.notificationCursor]
	prior := row.Status
	row.Status = prior.Toggled()

	notificationID := row.NotificationID
	backend := model.backend
	return model, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := backend.ToggleGuestNotificationStatus(ctx, notificationID)
		return toggleResultMsg{notificationID: notificationID, prior: prior, err: err}
	}
}

// handleToggleResult rolls the optimistic flip back when the server
// rejected it. Successful toggles need no further state change.
func (model Model) handleToggleResult(message toggleResultMsg) (tea.Model, tea.Cmd) {
	if message.err == nil {
		return model, nil
	}
	model.logger.Warn("notification toggle failed",
		"notification_id", message.notificationID, "error", message.err)
	for index := range model.notifications {
		if model.notifications[index].NotificationID == message.notificationID {
			model.notifications[index].Status = message.prior
			break
		}
	}
	return model, nil
}

// submitVisit posts the visit when the selections allow it.
func (model Model) submitVisit() (tea.Model, tea.Cmd) {
	if !model.SubmitEnabled() {
		return model, nil
	}
	model.submitting = true
	visit := schema.Visit{
		GuestID:    model.selectedGuest.GuestID,
		ServiceIDs: model.services.SelectedIDs(),
	}
	backend := model.backend
	return model, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		visitID, err := backend.AddVisit(ctx, visit)
		return visitResultMsg{visitID: visitID, err: err}
	}
}

// handleVisitResult resets the whole form on success and preserves
// every selection on failure so the user can retry.
func (model Model) handleVisitResult(message visitResultMsg) (tea.Model, tea.Cmd) {
	model.submitting = false
	if message.err != nil || message.visitID == 0 {
		if message.err != nil {
			model.logger.Warn("visit creation failed", "error", message.err)
		}
		model.feedback = Feedback{
			Text:    "Failed to create the visit. Try again in a few.",
			IsError: true,
		}
		return model, nil
	}
	model.feedback = Feedback{
		Text: fmt.Sprintf("Visit created successfully! ID: %d", message.visitID),
	}
	model.resetForm()
	return model, nil
}

// resetForm restores the defaults: no guest, no notifications, the
// default service checked, focus back on search.
func (model *Model) resetForm() {
	model.selectedGuest = nil
	model.clearOptions()
	model.searchInput.SetValue("")
	model.searchGeneration++
	model.notifications = nil
	model.notificationCursor = 0
	model.notificationGeneration++
	model.services.Clear()
	model.applyDefaultService()
	model.focus = FocusSearch
	model.searchInput.Focus()
}

// handleGuestModalKeys routes input while the new-guest modal is open.
func (model Model) handleGuestModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Cancel):
		if model.guestModal.Dirty() {
			model.discardTarget = FocusGuestModal
			model.focus = FocusConfirmDiscard
			return model, nil
		}
		model.guestModal = nil
		model.focus = FocusSearch
		model.searchInput.Focus()
		return model, nil

	case message.Type == tea.KeyEnter:
		if !model.guestModal.OnLastField() {
			model.guestModal.NextField()
			return model, nil
		}
		guest := model.guestModal.Guest()
		guest.TrimStrings()
		backend := model.backend
		return model, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			guestID, err := backend.AddGuest(ctx, guest)
			if err != nil {
				return guestCreatedMsg{err: err}
			}
			guest.GuestID = guestID
			return guestCreatedMsg{guest: guest}
		}

	case key.Matches(message, model.keys.FocusNext):
		model.guestModal.NextField()
		return model, nil
	}

	model.guestModal.Update(message)
	return model, nil
}

// handleGuestCreated closes the modal and auto-selects the new guest,
// bypassing search. Failure keeps the modal (and its input) open.
func (model Model) handleGuestCreated(message guestCreatedMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		model.logger.Warn("guest creation failed", "error", message.err)
		model.feedback = Feedback{
			Text:    "Failed to create the guest. Try again in a few.",
			IsError: true,
		}
		return model, nil
	}
	model.guestModal = nil
	model.focus = FocusSearch
	model.searchInput.Focus()
	model.feedback = Feedback{
		Text: fmt.Sprintf("Guest created successfully! ID: %d", message.guest.GuestID),
	}
	cmd := model.selectGuest(message.guest)
	return model, cmd
}

// openNoteModal opens the notification modal, or surfaces the
// guest-required feedback when nothing is selected.
func (model Model) openNoteModal() (tea.Model, tea.Cmd) {
	if model.selectedGuest == nil {
		model.feedback = Feedback{
			Text:    "Notification must include a guest.",
			IsError: true,
		}
		return model, nil
	}
	modal := tui.NewTextModal(
		"New notification for "+model.selectedGuest.FullName(),
		schema.NotificationMessageMinLength,
		schema.NotificationMessageMaxLength,
		model.theme,
	)
	model.noteModal = &modal
	model.focus = FocusNoteModal
	return model, nil
}

// handleNoteModalKeys routes input while the notification modal is
// open. Ctrl+D submits, escape cancels (with a discard confirmation
// when text has been entered).
func (model Model) handleNoteModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Cancel):
		if model.noteModal.RuneCount() > 0 {
			model.discardTarget = FocusNoteModal
			model.focus = FocusConfirmDiscard
			return model, nil
		}
		model.noteModal = nil
		model.focus = FocusSearch
		model.searchInput.Focus()
		return model, nil

	case message.Type == tea.KeyCtrlD:
		if !model.noteModal.Submittable() {
			return model, nil
		}
		guestID := model.selectedGuest.GuestID
		messageText := model.noteModal.Value()
		backend := model.backend
		return model, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			return notificationCreatedMsg{
				err: backend.AddGuestNotification(ctx, guestID, messageText),
			}
		}
	}

	model.noteModal.Update(message)
	return model, nil
}

// handleNotificationCreated closes the modal and re-fetches the list
// from the server rather than appending locally, keeping the Active
// filter authoritative. Failure keeps the modal open for a retry.
func (model Model) handleNotificationCreated(message notificationCreatedMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		model.logger.Warn("notification creation failed", "error", message.err)
		model.feedback = Feedback{
			Text:    "Oops! The notification couldn't be created. Try again in a few.",
			IsError: true,
		}
		return model, nil
	}
	model.noteModal = nil
	model.focus = FocusSearch
	model.searchInput.Focus()
	if model.selectedGuest == nil {
		return model, nil
	}
	model.notificationGeneration++
	return model, model.fetchNotificationsCmd(
		model.notificationGeneration, model.selectedGuest.GuestID)
}

// handleConfirmDiscardKeys resolves the y/n discard confirmation.
func (model Model) handleConfirmDiscardKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(message.String()) {
	case "y":
		switch model.discardTarget {
		case FocusGuestModal:
			model.guestModal = nil
		case FocusNoteModal:
			model.noteModal = nil
		}
		model.focus = FocusSearch
		model.searchInput.Focus()
	case "n", "esc":
		model.focus = model.discardTarget
	}
	return model, nil
}

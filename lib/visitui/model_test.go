// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1111philo/htc-app/lib/schema"
	"github.com/1111philo/htc-app/lib/tui"
)

// fakeBackend records calls and serves canned responses. The bubbletea
// loop is single-threaded in these tests (commands are executed
// synchronously), so plain fields are fine.
type fakeBackend struct {
	searchQueries []string
	searchResults []schema.Guest
	searchErr     error

	guests map[int]*schema.Guest

	addGuestID  int
	addGuestErr error
	addedGuests []schema.Guest

	visitID          int
	visitErr         error
	visitGuestID     int
	visitServiceIDs  []int
	visitSubmissions int

	notificationErr      error
	notificationGuestID  int
	notificationMessages []string

	toggleErr     error
	toggledIDs    []int
	toggleFailFor map[int]bool
}

func (fake *fakeBackend) SearchGuests(_ context.Context, query string) ([]schema.Guest, error) {
	fake.searchQueries = append(fake.searchQueries, query)
	return fake.searchResults, fake.searchErr
}

func (fake *fakeBackend) AddGuest(_ context.Context, guest schema.Guest) (int, error) {
	fake.addedGuests = append(fake.addedGuests, guest)
	return fake.addGuestID, fake.addGuestErr
}

func (fake *fakeBackend) GetGuest(_ context.Context, guestID int) (*schema.Guest, error) {
	guest, ok := fake.guests[guestID]
	if !ok {
		return nil, errors.New("no such guest")
	}
	return guest, nil
}

func (fake *fakeBackend) AddVisit(_ context.Context, visit schema.Visit) (int, error) {
	fake.visitSubmissions++
	fake.visitGuestID = visit.GuestID
	fake.visitServiceIDs = visit.ServiceIDs
	return fake.visitID, fake.visitErr
}

func (fake *fakeBackend) AddGuestNotification(_ context.Context, guestID int, message string) error {
	fake.notificationGuestID = guestID
	fake.notificationMessages = append(fake.notificationMessages, message)
	return fake.notificationErr
}

func (fake *fakeBackend) ToggleGuestNotificationStatus(_ context.Context, notificationID int) error {
	fake.toggledIDs = append(fake.toggledIDs, notificationID)
	if fake.toggleFailFor[notificationID] {
		return errors.New("rejected")
	}
	return fake.toggleErr
}

var testCatalog = []schema.ServiceType{
	{ServiceID: 1, Name: "Courtyard"},
	{ServiceID: 2, Name: "Shower"},
	{ServiceID: 3, Name: "Laundry"},
}

func testModel(t *testing.T, backend Backend) Model {
	t.Helper()
	model := NewModel(Config{
		Backend:        backend,
		Catalog:        testCatalog,
		DefaultService: "Courtyard",
	})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func update(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	return updated.(Model), cmd
}

// run executes a command synchronously and feeds its message back.
func run(t *testing.T, model Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := model.Update(cmd())
	return updated.(Model)
}

func typeText(t *testing.T, model Model, text string) Model {
	t.Helper()
	for _, character := range text {
		model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
	return model
}

// selectTestGuest drives a guest into the selected state through the
// search result and enter paths.
func selectTestGuest(t *testing.T, model Model, guest schema.Guest) Model {
	t.Helper()
	model = typeText(t, model, guest.FirstName)
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests:     []schema.Guest{guest},
	})
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		model, _ = update(t, model, cmd())
	}
	return model
}

func TestEmptyQueryNeverSearches(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	model := testModel(t, backend)

	model = typeText(t, model, "   ")
	model, _ = update(t, model, searchDebounceMsg{generation: model.searchGeneration})

	if len(backend.searchQueries) != 0 {
		t.Errorf("whitespace-only query issued %d searches", len(backend.searchQueries))
	}
}

func TestDebounceCollapsesEdits(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	model := testModel(t, backend)

	// Three keystrokes inside the quiet window: each arms a timer with
	// its own generation, but only the last generation is current when
	// the timers fire.
	model = typeText(t, model, "jun")
	finalGeneration := model.searchGeneration

	model, _ = update(t, model, searchDebounceMsg{generation: finalGeneration - 2})
	model, _ = update(t, model, searchDebounceMsg{generation: finalGeneration - 1})
	if len(backend.searchQueries) != 0 {
		t.Fatalf("superseded timers issued %d searches", len(backend.searchQueries))
	}

	var cmd tea.Cmd
	model, cmd = update(t, model, searchDebounceMsg{generation: finalGeneration})
	model = run(t, model, cmd)

	if len(backend.searchQueries) != 1 {
		t.Fatalf("expected exactly one search, got %d", len(backend.searchQueries))
	}
	if backend.searchQueries[0] != "jun" {
		t.Errorf("search query = %q, want the final input", backend.searchQueries[0])
	}
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	model := testModel(t, backend)

	model = typeText(t, model, "a")
	staleGeneration := model.searchGeneration
	model = typeText(t, model, "b")

	// The newer response lands first.
	current := []schema.Guest{{GuestID: 2, FirstName: "Current"}}
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests:     current,
	})
	// The slow stale response must not clobber it.
	model, _ = update(t, model, searchResultMsg{
		generation: staleGeneration,
		guests:     []schema.Guest{{GuestID: 1, FirstName: "Stale"}},
	})

	options := model.Options()
	if len(options) != 1 || options[0].GuestID != 2 {
		t.Errorf("options = %+v, want only the current-generation guest", options)
	}
}

func TestSearchResultsCapped(t *testing.T) {
	t.Parallel()

	var manyGuests []schema.Guest
	for id := 1; id <= maxGuestOptions+10; id++ {
		manyGuests = append(manyGuests, schema.Guest{GuestID: id})
	}
	model := testModel(t, &fakeBackend{})
	model = typeText(t, model, "x")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests:     manyGuests,
	})

	if len(model.Options()) != maxGuestOptions {
		t.Errorf("options = %d, want cap of %d", len(model.Options()), maxGuestOptions)
	}
}

func TestTypingNarrowsFetchedOptions(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	model := testModel(t, backend)

	model = typeText(t, model, "j")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests: []schema.Guest{
			{GuestID: 1, FirstName: "June", LastName: "Okafor"},
			{GuestID: 2, FirstName: "Joan", LastName: "Park"},
		},
	})
	if len(model.Options()) != 2 {
		t.Fatalf("options = %d, want both fetched guests", len(model.Options()))
	}

	// Keystrokes inside the quiet window narrow the fetched rows
	// locally, before any new request goes out.
	model = typeText(t, model, "un")
	options := model.Options()
	if len(options) != 1 || options[0].GuestID != 1 {
		t.Fatalf("options after narrowing = %+v, want just June", options)
	}
	if len(backend.searchQueries) != 0 {
		t.Error("narrowing must not issue a backend request")
	}
}

func TestNoLabelMatchKeepsFetchedRows(t *testing.T) {
	t.Parallel()

	model := testModel(t, &fakeBackend{})
	// The backend matched something the label does not show; the row
	// must stay listed, just unranked and unhighlighted.
	model = typeText(t, model, "zzz")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests:     []schema.Guest{{GuestID: 4, FirstName: "June"}},
	})

	options := model.Options()
	if len(options) != 1 || options[0].GuestID != 4 {
		t.Errorf("options = %+v, want the fetched row despite no label match", options)
	}
}

func TestViewHighlightsQueryMatches(t *testing.T) {
	t.Parallel()

	model := testModel(t, &fakeBackend{})
	model = typeText(t, model, "june")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests: []schema.Guest{
			{GuestID: 7, FirstName: "June", LastName: "Okafor", DOB: "1987-01-01"},
		},
	})

	view := model.View()
	tint := "\x1b[48;5;" + string(tui.DefaultTheme.MatchHighlightBackground) + "m"
	if !strings.Contains(view, tint) {
		t.Error("dropdown rows missing the match highlight tint")
	}
}

func TestSelectGuestFetchesActiveNotificationsOnly(t *testing.T) {
	t.Parallel()

	guest := schema.Guest{GuestID: 7, FirstName: "June", LastName: "Okafor", DOB: "1987-01-01"}
	backend := &fakeBackend{guests: map[int]*schema.Guest{
		7: {
			GuestID: 7,
			Notifications: []schema.GuestNotification{
				{NotificationID: 1, Status: schema.NotificationActive, Message: "call caseworker"},
				{NotificationID: 2, Status: schema.NotificationArchived, Message: "old"},
				{NotificationID: 3, Status: schema.NotificationActive, Message: "mail waiting"},
			},
		},
	}}
	model := testModel(t, backend)

	model = selectTestGuest(t, model, guest)

	selected := model.SelectedGuest()
	if selected == nil || selected.GuestID != 7 {
		t.Fatalf("SelectedGuest = %+v", selected)
	}
	notifications := model.Notifications()
	if len(notifications) != 2 {
		t.Fatalf("expected 2 active notifications, got %d", len(notifications))
	}
	for _, notification := range notifications {
		if notification.Status != schema.NotificationActive {
			t.Errorf("notification %d has status %s after fetch",
				notification.NotificationID, notification.Status)
		}
	}
}

func TestStaleNotificationFetchDiscarded(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{guests: map[int]*schema.Guest{
		1: {GuestID: 1, Notifications: []schema.GuestNotification{
			{NotificationID: 10, Status: schema.NotificationActive},
		}},
		2: {GuestID: 2},
	}}
	model := testModel(t, backend)

	// Select guest 1 but hold its fetch; reselect guest 2 first.
	model = typeText(t, model, "a")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests:     []schema.Guest{{GuestID: 1}},
	})
	model, staleCmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	staleMsg := staleCmd()

	model = typeText(t, model, "b")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests:     []schema.Guest{{GuestID: 2}},
	})
	model, currentCmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = update(t, model, currentCmd())

	// The slow response for guest 1 arrives after guest 2 is selected.
	model, _ = update(t, model, staleMsg)

	if len(model.Notifications()) != 0 {
		t.Errorf("stale notification fetch applied: %+v", model.Notifications())
	}
}

func TestSubmitEnablement(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{guests: map[int]*schema.Guest{5: {GuestID: 5}}}
	model := testModel(t, backend)

	// Default service is preselected, but no guest yet.
	if model.SubmitEnabled() {
		t.Error("submit enabled with no guest selected")
	}

	model = selectTestGuest(t, model, schema.Guest{GuestID: 5, FirstName: "Sam"})
	if !model.SubmitEnabled() {
		t.Error("submit disabled with guest and default service selected")
	}

	// Unchecking every service disables submit again.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab}) // to services
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeySpace})
	if model.SubmitEnabled() {
		t.Error("submit enabled with zero services selected")
	}
}

func TestVisitSubmitSuccessResetsForm(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		visitID: 41,
		guests:  map[int]*schema.Guest{5: {GuestID: 5}},
	}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5, FirstName: "Sam"})

	// Check an extra service beyond the default.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeySpace})

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	model = run(t, model, cmd)

	if backend.visitGuestID != 5 {
		t.Errorf("visit guest = %d, want 5", backend.visitGuestID)
	}
	if len(backend.visitServiceIDs) != 2 {
		t.Errorf("visit services = %v, want 2 entries", backend.visitServiceIDs)
	}

	feedback := model.FeedbackBanner()
	if feedback.Text != "Visit created successfully! ID: 41" || feedback.IsError {
		t.Errorf("feedback = %+v", feedback)
	}

	// Full reset: no guest, no notifications, default service only.
	if model.SelectedGuest() != nil {
		t.Error("guest selection survived a successful submit")
	}
	if len(model.Notifications()) != 0 {
		t.Error("notifications survived a successful submit")
	}
	ids := model.SelectedServiceIDs()
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("services after reset = %v, want just the Courtyard default", ids)
	}
}

func TestVisitSubmitFailurePreservesSelections(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		visitErr: errors.New("backend down"),
		guests:   map[int]*schema.Guest{5: {GuestID: 5}},
	}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5, FirstName: "Sam"})

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	model = run(t, model, cmd)

	feedback := model.FeedbackBanner()
	if feedback.Text != "Failed to create the visit. Try again in a few." || !feedback.IsError {
		t.Errorf("feedback = %+v", feedback)
	}
	if model.SelectedGuest() == nil || model.SelectedGuest().GuestID != 5 {
		t.Error("guest selection lost after failed submit")
	}
	if len(model.SelectedServiceIDs()) != 1 {
		t.Error("service selection lost after failed submit")
	}
	if !model.SubmitEnabled() {
		t.Error("submit should be re-enabled for a retry")
	}
}

func TestVisitSubmitZeroIDIsFailure(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		visitID: 0,
		guests:  map[int]*schema.Guest{5: {GuestID: 5}},
	}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5})

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	model = run(t, model, cmd)

	if !model.FeedbackBanner().IsError {
		t.Error("zero visit ID should surface the failure feedback")
	}
	if model.SelectedGuest() == nil {
		t.Error("selections must survive a zero-ID response")
	}
}

func TestDefaultServiceSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog []schema.ServiceType
		want    []int
	}{
		{
			name:    "named default present",
			catalog: testCatalog,
			want:    []int{1},
		},
		{
			name:    "named default absent falls back to first",
			catalog: []schema.ServiceType{{ServiceID: 5, Name: "Other"}},
			want:    []int{5},
		},
		{
			name:    "empty catalog selects nothing",
			catalog: nil,
			want:    nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			model := NewModel(Config{
				Backend:        &fakeBackend{},
				Catalog:        test.catalog,
				DefaultService: "Courtyard",
			})
			got := model.SelectedServiceIDs()
			if len(got) != len(test.want) {
				t.Fatalf("SelectedServiceIDs = %v, want %v", got, test.want)
			}
			for index := range got {
				if got[index] != test.want[index] {
					t.Errorf("SelectedServiceIDs = %v, want %v", got, test.want)
				}
			}
		})
	}
}

func TestOptimisticToggleRollback(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		toggleFailFor: map[int]bool{10: true},
		guests: map[int]*schema.Guest{5: {GuestID: 5, Notifications: []schema.GuestNotification{
			{NotificationID: 10, Status: schema.NotificationActive, Message: "call"},
		}}},
	}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5})

	// Focus the notification rows: search -> services -> notifications.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	// The flip is visible immediately, before the server answers.
	if model.Notifications()[0].Status != schema.NotificationArchived {
		t.Fatal("toggle was not applied optimistically")
	}

	model = run(t, model, cmd)
	if model.Notifications()[0].Status != schema.NotificationActive {
		t.Error("rejected toggle was not rolled back")
	}
}

func TestOptimisticToggleSuccessSticks(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		guests: map[int]*schema.Guest{5: {GuestID: 5, Notifications: []schema.GuestNotification{
			{NotificationID: 10, Status: schema.NotificationActive},
		}}},
	}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	model = run(t, model, cmd)

	if model.Notifications()[0].Status != schema.NotificationArchived {
		t.Error("confirmed toggle should stay applied")
	}
	if len(backend.toggledIDs) != 1 || backend.toggledIDs[0] != 10 {
		t.Errorf("toggledIDs = %v", backend.toggledIDs)
	}
}

func TestAddNotificationRequiresGuest(t *testing.T) {
	t.Parallel()

	model := testModel(t, &fakeBackend{})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlT})

	feedback := model.FeedbackBanner()
	if feedback.Text != "Notification must include a guest." || !feedback.IsError {
		t.Errorf("feedback = %+v", feedback)
	}
}

func TestNotificationModalEnforcesLength(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{guests: map[int]*schema.Guest{5: {GuestID: 5}}}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5})

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlT})
	model = typeText(t, model, "hey")

	// Below the 5-rune minimum: ctrl+d must not submit.
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd != nil {
		t.Fatal("submit command issued for an undersized message")
	}
	if len(backend.notificationMessages) != 0 {
		t.Fatal("undersized message reached the backend")
	}

	model = typeText(t, model, " there")
	model, cmd = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlD})
	model = run(t, model, cmd)

	if len(backend.notificationMessages) != 1 || backend.notificationMessages[0] != "hey there" {
		t.Errorf("notification messages = %v", backend.notificationMessages)
	}
	if backend.notificationGuestID != 5 {
		t.Errorf("notification guest = %d, want 5", backend.notificationGuestID)
	}
}

func TestNotificationCreateFailureFeedback(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		notificationErr: errors.New("backend down"),
		guests:          map[int]*schema.Guest{5: {GuestID: 5}},
	}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5})

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlT})
	model = typeText(t, model, "please hold mail")
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlD})
	model = run(t, model, cmd)

	feedback := model.FeedbackBanner()
	if feedback.Text != "Oops! The notification couldn't be created. Try again in a few." || !feedback.IsError {
		t.Errorf("feedback = %+v", feedback)
	}
	// The modal stays open so the user can retry without retyping.
	if model.noteModal == nil {
		t.Error("modal closed on failure")
	}
}

func TestNotificationCreateRefetchesList(t *testing.T) {
	t.Parallel()

	guest := &schema.Guest{GuestID: 5}
	backend := &fakeBackend{guests: map[int]*schema.Guest{5: guest}}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5})

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlT})
	model = typeText(t, model, "mail waiting at the desk")
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlD})

	// Simulate the server storing it before the re-fetch lands.
	guest.Notifications = append(guest.Notifications, schema.GuestNotification{
		NotificationID: 99, Status: schema.NotificationActive, Message: "mail waiting at the desk",
	})

	model, refetch := update(t, model, cmd())
	model = run(t, model, refetch)

	if model.noteModal != nil {
		t.Error("modal should close on success")
	}
	notifications := model.Notifications()
	if len(notifications) != 1 || notifications[0].NotificationID != 99 {
		t.Errorf("notifications after re-fetch = %+v", notifications)
	}
}

func TestNewGuestModalCreatesAndAutoSelects(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		addGuestID: 12,
		guests:     map[int]*schema.Guest{12: {GuestID: 12}},
	}
	model := testModel(t, backend)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlG})
	model = typeText(t, model, "  June ")
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = typeText(t, model, "Okafor")
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = typeText(t, model, "1987-01-01")
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	model, selectCmd := update(t, model, cmd())
	if len(backend.addedGuests) != 1 {
		t.Fatalf("AddGuest called %d times", len(backend.addedGuests))
	}
	if backend.addedGuests[0].FirstName != "June" {
		t.Errorf("first name not trimmed: %q", backend.addedGuests[0].FirstName)
	}

	feedback := model.FeedbackBanner()
	if feedback.Text != "Guest created successfully! ID: 12" || feedback.IsError {
		t.Errorf("feedback = %+v", feedback)
	}

	selected := model.SelectedGuest()
	if selected == nil || selected.GuestID != 12 {
		t.Fatalf("new guest not auto-selected: %+v", selected)
	}
	// The auto-selection also kicks off the notification fetch.
	model = run(t, model, selectCmd)
	if model.guestModal != nil {
		t.Error("guest modal should close on success")
	}
}

func TestGuestModalDiscardConfirmation(t *testing.T) {
	t.Parallel()

	model := testModel(t, &fakeBackend{})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlG})
	model = typeText(t, model, "J")

	// Escape with data entered asks for confirmation.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.focus != FocusConfirmDiscard {
		t.Fatal("expected discard confirmation")
	}

	// "n" returns to the modal with the input intact.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if model.focus != FocusGuestModal || model.guestModal == nil {
		t.Fatal("answering n should return to the modal")
	}
	if model.guestModal.Guest().FirstName != "J" {
		t.Error("modal input lost across the confirmation")
	}

	// "y" discards.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if model.guestModal != nil || model.focus != FocusSearch {
		t.Error("answering y should discard the modal")
	}
}

func TestGuestModalCleanCloseSkipsConfirmation(t *testing.T) {
	t.Parallel()

	model := testModel(t, &fakeBackend{})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlG})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	if model.guestModal != nil || model.focus != FocusSearch {
		t.Error("closing an untouched modal should not ask for confirmation")
	}
}

func TestSearchOptionLabels(t *testing.T) {
	t.Parallel()

	model := testModel(t, &fakeBackend{})
	model = typeText(t, model, "1987-01-01")
	model, _ = update(t, model, searchResultMsg{
		generation: model.searchGeneration,
		guests: []schema.Guest{
			{GuestID: 7, FirstName: "June", LastName: "Okafor", DOB: "1987-01-01"},
		},
	})

	options := model.guestOptions()
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Label != "7 : June Okafor : 1987-01-01" {
		t.Errorf("label = %q", options[0].Label)
	}
}

func TestViewRendersFeedbackAndNotifications(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	backend := &fakeBackend{guests: map[int]*schema.Guest{5: {
		GuestID: 5,
		Notifications: []schema.GuestNotification{
			{NotificationID: 1, Status: schema.NotificationActive, Message: "call caseworker", CreatedAt: now},
		},
	}}}
	model := testModel(t, backend)
	model = selectTestGuest(t, model, schema.Guest{GuestID: 5, FirstName: "Sam", LastName: "Lee", DOB: "1990-05-05"})

	view := model.View()
	for _, want := range []string{
		"Log Visit",
		"5 : Sam Lee : 1990-05-05",
		"call caseworker",
		schema.ReadableDateTime(now),
		"Courtyard",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

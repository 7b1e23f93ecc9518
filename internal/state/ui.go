package state

import (
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/jobscout/jobscout/internal/events"
	"github.com/samber/lo"
)

const maxSearchHistory = 10

type NotificationSettings struct {
	Enabled            bool
	JobAlerts          bool
	ApplicationUpdates bool
}

// UIState is process-wide ephemeral state. It is never persisted by the
// slice itself; a collaborator may store it under the app_settings key.
type UIState struct {
	IsLoading      bool
	Error          string
	SuccessMessage string
	ActiveTab      string
	SearchHistory  []string
	Notifications  NotificationSettings
	Theme          string
	Language       string
}

func initialUIState() UIState {
	return UIState{
		ActiveTab: "JobList",
		Notifications: NotificationSettings{
			Enabled:            true,
			JobAlerts:          true,
			ApplicationUpdates: true,
		},
		Theme:    "light",
		Language: "en",
	}
}

func reduceSearchHistory(st UIState, query string) UIState {
	query = strings.TrimSpace(query)
	if query == "" || lo.Contains(st.SearchHistory, query) {
		return st
	}
	history := append([]string{query}, st.SearchHistory...)
	if len(history) > maxSearchHistory {
		history = history[:maxSearchHistory]
	}
	st.SearchHistory = history
	return st
}

type UISlice struct {
	mu    sync.Mutex
	state UIState
}

func NewUISlice(bus EventBus.Bus) (*UISlice, error) {
	s := &UISlice{state: initialUIState()}
	if err := bus.Subscribe(events.SearchPerformedTopic, s.onSearchPerformed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *UISlice) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UISlice) commit(reduce func(UIState) UIState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state)
}

func (s *UISlice) SetLoading(loading bool) {
	s.commit(func(st UIState) UIState {
		st.IsLoading = loading
		return st
	})
}

// SetError also stops any loading indicator, so an error screen never
// keeps a spinner.
func (s *UISlice) SetError(message string) {
	s.commit(func(st UIState) UIState {
		st.Error = message
		st.IsLoading = false
		return st
	})
}

func (s *UISlice) SetSuccessMessage(message string) {
	s.commit(func(st UIState) UIState {
		st.SuccessMessage = message
		return st
	})
}

func (s *UISlice) ClearMessages() {
	s.commit(func(st UIState) UIState {
		st.Error = ""
		st.SuccessMessage = ""
		return st
	})
}

func (s *UISlice) SetActiveTab(tab string) {
	s.commit(func(st UIState) UIState {
		st.ActiveTab = tab
		return st
	})
}

func (s *UISlice) AddSearchHistory(query string) {
	s.commit(func(st UIState) UIState {
		return reduceSearchHistory(st, query)
	})
}

func (s *UISlice) ClearSearchHistory() {
	s.commit(func(st UIState) UIState {
		st.SearchHistory = nil
		return st
	})
}

func (s *UISlice) UpdateNotificationSettings(settings NotificationSettings) {
	s.commit(func(st UIState) UIState {
		st.Notifications = settings
		return st
	})
}

func (s *UISlice) SetTheme(theme string) {
	s.commit(func(st UIState) UIState {
		st.Theme = theme
		return st
	})
}

func (s *UISlice) SetLanguage(language string) {
	s.commit(func(st UIState) UIState {
		st.Language = language
		return st
	})
}

func (s *UISlice) onSearchPerformed(event events.SearchPerformed) {
	s.AddSearchHistory(event.Query)
}

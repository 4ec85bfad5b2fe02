package state

import (
	"context"
	"log/slog"
	"time"

	"curator/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ToastKind is the severity of a toast.
type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// maxToasts caps the visible queue; the oldest toast is dropped first.
const maxToasts = 5

// Toast is a transient message.
type Toast struct {
	ID        string    `json:"id"`
	Kind      ToastKind `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type UIState struct {
	Status
	SidebarCollapsed bool    `json:"sidebar_collapsed"`
	Toasts           []Toast `json:"toasts"`
	ActiveModal      string  `json:"active_modal"`
}

func initialUIState() UIState {
	return UIState{Toasts: []Toast{}}
}

// UISlice holds presentation flags. Only SidebarCollapsed is persisted.
type UISlice struct {
	*Slice[UIState]

	prefs  repository.PreferenceStorage
	logger *slog.Logger
	now    func() time.Time
}

func NewUISlice(prefs repository.PreferenceStorage, logger *slog.Logger) *UISlice {
	return &UISlice{
		Slice: NewSlice("ui", initialUIState, func(s *UIState) *Status {
			return &s.Status
		}),
		prefs:  prefs,
		logger: logger,
		now:    time.Now,
	}
}

// Reset clears transient UI state but keeps the persisted sidebar flag.
func (s *UISlice) Reset() {
	collapsed := s.State().SidebarCollapsed
	s.Slice.Reset()
	s.Update(func(st *UIState) {
		st.SidebarCollapsed = collapsed
	})
}

// LoadPreferences restores the sidebar flag. A flag that was never saved
// keeps the default.
func (s *UISlice) LoadPreferences(ctx context.Context) error {
	_, err := Run(ctx, s.Slice, Reducers[UIState, *bool]{
		Fulfilled: func(st *UIState, collapsed *bool) {
			if collapsed != nil {
				st.SidebarCollapsed = *collapsed
			}
		},
		Fallback: "Failed to load preferences",
	}, func(ctx context.Context) (*bool, error) {
		collapsed, err := s.prefs.LoadSidebarCollapsed(ctx)
		if errors.Is(err, repository.ErrNotStored) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		return ptr(collapsed), nil
	})

	return err
}

// ToggleSidebar flips the sidebar and persists the new value.
func (s *UISlice) ToggleSidebar(ctx context.Context) (bool, error) {
	var collapsed bool
	s.Update(func(st *UIState) {
		st.SidebarCollapsed = !st.SidebarCollapsed
		collapsed = st.SidebarCollapsed
	})

	return collapsed, s.persist(ctx, collapsed)
}

// SetSidebarCollapsed sets and persists the sidebar flag.
func (s *UISlice) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	s.Update(func(st *UIState) {
		st.SidebarCollapsed = collapsed
	})

	return s.persist(ctx, collapsed)
}

func (s *UISlice) persist(ctx context.Context, collapsed bool) error {
	if err := s.prefs.SaveSidebarCollapsed(ctx, collapsed); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist sidebar preference", slog.Any("error", err))

		return errors.Wrap(err, "save sidebar preference")
	}

	return nil
}

// ShowToast queues a toast and returns its ID.
func (s *UISlice) ShowToast(kind ToastKind, message string) string {
	toast := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: s.now(),
	}
	s.Update(func(st *UIState) {
		toasts := append(append([]Toast{}, st.Toasts...), toast)
		if len(toasts) > maxToasts {
			toasts = toasts[len(toasts)-maxToasts:]
		}
		st.Toasts = toasts
	})

	return toast.ID
}

func (s *UISlice) DismissToast(id string) {
	s.Update(func(st *UIState) {
		st.Toasts = removeByID(st.Toasts, id, toastID)
	})
}

func (s *UISlice) OpenModal(name string) {
	s.Update(func(st *UIState) {
		st.ActiveModal = name
	})
}

func (s *UISlice) CloseModal() {
	s.Update(func(st *UIState) {
		st.ActiveModal = ""
	})
}

package view

import "time"

// Event is anything the model reacts to: a key action of the user or the outcome of an effect.
type Event interface {
	event()
}

type (
	ShowRegister      struct{}
	ShowResetPassword struct{}
	BackToLogin       struct{}
	ToggleEdit        struct{}
	Logout            struct{}
	RequestDelete     struct{}
	ConfirmDelete     struct{ Yes bool }

	SubmitLogin struct {
		Email    string
		Password string
	}
	SubmitRegister struct {
		Name     string
		Email    string
		Password string
	}
	SubmitReset struct {
		Email string
	}
	SubmitEdit struct {
		Name     string
		Email    string
		Password string
	}

	LoginSucceeded struct{ Token string }
	LoginFailed    struct{ Err string }
	ProfileLoaded  struct{ Profile Profile }
	// ProfileFailed reports a failed profile fetch. SessionInvalid means the stored token is no longer accepted.
	ProfileFailed struct {
		Err            string
		SessionInvalid bool
	}
	RegisterSucceeded struct{}
	RegisterFailed    struct{ Err string }
	RecoverSucceeded  struct{}
	RecoverFailed     struct{ Err string }
	ProfileSaved      struct {
		Token   string
		Profile Profile
	}
	SaveFailed     struct{ Err string }
	AccountDeleted struct{}
	DeleteFailed   struct{ Err string }

	Startup        struct{ HasToken bool }
	MessageExpired struct{ ID int }
)

func (ShowRegister) event()      {}
func (ShowResetPassword) event() {}
func (BackToLogin) event()       {}
func (ToggleEdit) event()        {}
func (Logout) event()            {}
func (RequestDelete) event()     {}
func (ConfirmDelete) event()     {}
func (SubmitLogin) event()       {}
func (SubmitRegister) event()    {}
func (SubmitReset) event()       {}
func (SubmitEdit) event()        {}
func (LoginSucceeded) event()    {}
func (LoginFailed) event()       {}
func (ProfileLoaded) event()     {}
func (ProfileFailed) event()     {}
func (RegisterSucceeded) event() {}
func (RegisterFailed) event()    {}
func (RecoverSucceeded) event()  {}
func (RecoverFailed) event()     {}
func (ProfileSaved) event()      {}
func (SaveFailed) event()        {}
func (AccountDeleted) event()    {}
func (DeleteFailed) event()      {}
func (Startup) event()           {}
func (MessageExpired) event()    {}

// Effect is work the model asks its runtime to do. Results come back as events.
type Effect interface {
	effect()
}

type (
	LoginRequest struct {
		Email    string
		Password string
	}
	RegisterRequest struct {
		Name     string
		Email    string
		Password string
	}
	RecoverRequest struct{ Email string }
	FetchProfile   struct{}
	UpdateRequest  struct {
		Name     string
		Email    string
		Password string
	}
	DeleteRequest struct{}
	StoreToken    struct{ Token string }
	ClearToken    struct{}
	// ScheduleClear asks for a MessageExpired{ID} after the delay.
	ScheduleClear struct {
		ID    int
		After time.Duration
	}
)

func (LoginRequest) effect()    {}
func (RegisterRequest) effect() {}
func (RecoverRequest) effect()  {}
func (FetchProfile) effect()    {}
func (UpdateRequest) effect()   {}
func (DeleteRequest) effect()   {}
func (StoreToken) effect()      {}
func (ClearToken) effect()      {}
func (ScheduleClear) effect()   {}

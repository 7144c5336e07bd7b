package types

type RegisterRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type AskRequest struct {
	Question   string `json:"question"`
	IsPaidUser bool   `json:"is_paid_user"`
	// SaveHistory defaults to true when omitted.
	SaveHistory *bool `json:"save_history"`
}

func (r AskRequest) ShouldSave() bool {
	return r.SaveHistory == nil || *r.SaveHistory
}

type SaveQuestionRequest struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	SaveHistory *bool  `json:"save_history"`
}

func (r SaveQuestionRequest) ShouldSave() bool {
	return r.SaveHistory == nil || *r.SaveHistory
}

type UpdatePlanRequest struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

type UpdateSettingRequest struct {
	MicEnabled *bool   `json:"mic_enabled"`
	FontSize   *string `json:"font_size"`
}

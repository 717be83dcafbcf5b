package preview

// TranscriptEntry is one side of the demo exchange as shown in the
// phone-frame preview.
type TranscriptEntry struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// TranscriptState is what gets cached per tenant: the synthetic phone
// number pins the demo to one upstream conversation across turns.
type TranscriptState struct {
	Phone   string            `json:"phone"`
	Entries []TranscriptEntry `json:"entries"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ChatResponse struct {
	Reply      string            `json:"reply"`
	Transcript []TranscriptEntry `json:"transcript"`
}

type TranscriptResponse struct {
	Transcript []TranscriptEntry `json:"transcript"`
}

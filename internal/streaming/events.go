package streaming

// Outbound events are a closed set: one payload type per event, wrapped in a
// {type, data} envelope on the wire.

type EventType string

const (
	EventSessionCreated       EventType = "session:created"
	EventSessionStarted       EventType = "session:started"
	EventTranscriptionPartial EventType = "transcription:partial"
	EventTranscriptionFinal   EventType = "transcription:final"
	EventSessionEnded         EventType = "session:ended"
	EventTranscriptionError   EventType = "transcription:error"
)

type EventData interface {
	eventData()
}

type Event struct {
	Type EventType `json:"type"`
	Data EventData `json:"data"`
}

type SessionCreatedData struct {
	SessionID string `json:"sessionId"`
}

type SessionStartedData struct {
	Status    Status `json:"status"`
	SessionID string `json:"sessionId"`
}

type PartialData struct {
	Partial   string `json:"partial"`
	SessionID string `json:"sessionId"`
}

type FinalData struct {
	Transcription string `json:"transcription"`
	SessionID     string `json:"sessionId"`
}

type SessionEndedData struct {
	Status        Status `json:"status"`
	SessionID     string `json:"sessionId"`
	Transcription string `json:"transcription"`
}

type ErrorData struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

func (SessionCreatedData) eventData() {}
func (SessionStartedData) eventData() {}
func (PartialData) eventData()        {}
func (FinalData) eventData()          {}
func (SessionEndedData) eventData()   {}
func (ErrorData) eventData()          {}

func sessionCreated(sessionID string) Event {
	return Event{Type: EventSessionCreated, Data: SessionCreatedData{SessionID: sessionID}}
}

func sessionStarted(sessionID string) Event {
	return Event{Type: EventSessionStarted, Data: SessionStartedData{Status: StatusActive, SessionID: sessionID}}
}

func transcriptionPartial(sessionID, partial string) Event {
	return Event{Type: EventTranscriptionPartial, Data: PartialData{Partial: partial, SessionID: sessionID}}
}

func transcriptionFinal(sessionID, transcription string) Event {
	return Event{Type: EventTranscriptionFinal, Data: FinalData{Transcription: transcription, SessionID: sessionID}}
}

func sessionEnded(sessionID string, status Status, transcription string) Event {
	return Event{Type: EventSessionEnded, Data: SessionEndedData{Status: status, SessionID: sessionID, Transcription: transcription}}
}

func transcriptionError(sessionID, message string) Event {
	return Event{Type: EventTranscriptionError, Data: ErrorData{Message: message, SessionID: sessionID}}
}

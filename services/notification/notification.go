package notification

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Service pushes realtime messages to connected clients.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// AnnouncementMessage is the wire shape of a broadcast push.
type AnnouncementMessage struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// BuildAnnouncement renders the realtime payload for an admin broadcast.
func BuildAnnouncement(title, message, sender string) string {
	payload, err := json.Marshal(AnnouncementMessage{
		Type:    "announcement",
		Title:   title,
		Message: message,
		Sender:  sender,
	})
	if err != nil {
		return fmt.Sprintf(`{"type":"announcement","title":%q}`, title)
	}
	return string(payload)
}

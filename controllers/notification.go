package controllers

import (
	"github.com/Jahid-Hassan-Noor/food-now/services/logger"
	"github.com/Jahid-Hassan-Noor/food-now/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// NotificationObserver receives realtime pushes for one connection.
type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
	userID  uint
}

func NewMelodyObserver(session *melody.Session, userID uint) *MelodyObserver {
	return &MelodyObserver{
		session: session,
		userID:  userID,
	}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

// NotificationController owns the websocket fan-out for announcements
// and per-user pushes.
type NotificationController struct {
	db        *gorm.DB
	logger    logger.Logger
	melody    *melody.Melody
	observers map[uint][]NotificationObserver
}

type NotificationControllerOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewNotificationController(opts NotificationControllerOptions, m *melody.Melody) *NotificationController {
	return &NotificationController{
		db:        opts.DB,
		logger:    opts.Logger,
		melody:    m,
		observers: make(map[uint][]NotificationObserver),
	}
}

// Broadcast pushes a rendered message to every connected client.
func (c *NotificationController) Broadcast(message string) error {
	return notification.NewMelodyService(c.melody).SendMessage(message)
}

// NotifyUser pushes a message to one user's registered connections.
func (c *NotificationController) NotifyUser(userID uint, message string) {
	for _, observer := range c.observers[userID] {
		if err := observer.Notify(message); err != nil {
			c.logger.Error("websocket push to user %d failed: %v", userID, err)
		}
	}
}

func (c *NotificationController) RegisterObserver(session *melody.Session, userID uint) {
	observer := NewMelodyObserver(session, userID)
	c.observers[userID] = append(c.observers[userID], observer)
	c.logger.Debug("observer registered for user %d", userID)
}

func (c *NotificationController) RemoveObserver(session *melody.Session, userID uint) {
	observers := c.observers[userID]
	for i, obs := range observers {
		if obs.(*MelodyObserver).session == session {
			c.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	c.logger.Debug("observer removed for user %d", userID)
}

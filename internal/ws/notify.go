package ws

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	EventApplicationsUpdated = "applications_updated"
	EventCatalogUpdated      = "catalog_updated"
)

type ApplicationsUpdatedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type CatalogUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Listings  int    `json:"listings"`
	Timestamp string `json:"timestamp"`
}

// NotifyApplicationsUpdated tells the user's open sessions to refetch their
// applications and analytics.
func (h *Hub) NotifyApplicationsUpdated(userID, action string) {
	userID = strings.TrimSpace(userID)
	if h == nil || userID == "" {
		return
	}
	h.sendJSON(userID, ApplicationsUpdatedEvent{
		Type:      EventApplicationsUpdated,
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) NotifyCatalogUpdated(source string, listings int) {
	if h == nil || listings <= 0 {
		return
	}
	h.sendJSON("", CatalogUpdatedEvent{
		Type:      EventCatalogUpdated,
		Source:    source,
		Listings:  listings,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Hub) sendJSON(userID string, evt any) {
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Printf("ws=notify status=error err=%v", err)
		return
	}
	h.Send(userID, b)
}

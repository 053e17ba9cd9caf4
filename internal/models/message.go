package models

import "time"

// Message is a contact form submission. Create-only from the public side;
// admins may read and delete but never update, so there is no update carrier.
type Message struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func MessageFromDoc(id string, data map[string]interface{}) *Message {
	return &Message{
		ID:        id,
		Name:      asString(data["name"]),
		Email:     asString(data["email"]),
		Message:   asString(data["message"]),
		CreatedAt: asTime(data["createdAt"]),
	}
}

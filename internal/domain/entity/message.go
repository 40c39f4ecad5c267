package entity

import "time"

// Message mensaje del centro de comunicaciones.
// TerritoryZone nil = difusión general, visible en todas las zonas.
// Los mensajes nunca se eliminan; la única mutación permitida es marcar lectura.
type Message struct {
	ID             string
	SenderID       string
	SenderName     string
	SenderRole     Role
	Content        string
	TerritoryZone  *Zone
	IsUrgent       bool
	IsConfidential bool
	CreatedAt      time.Time
	ReadBy         []string // ids de usuario, cada uno a lo sumo una vez
}

// IsBroadcast reporta si el mensaje es de difusión general (sin zona).
func (m *Message) IsBroadcast() bool {
	return m.TerritoryZone == nil
}

// IsReadBy reporta si el usuario ya marcó el mensaje como leído.
func (m *Message) IsReadBy(userID string) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
